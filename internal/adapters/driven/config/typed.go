// Package config holds helpers shared by the ConfigStore adapters.
package config

// Typed derives the typed getters of driven.ConfigStore from a raw lookup.
// Stores embed it and supply their own Get. Values decoded from TOML arrive
// as int64, float64 and []any, so each getter accepts those shapes as well
// as the native Go types written by Set. Mistyped values read as zero.
type Typed struct {
	Lookup func(key string) (any, bool)
}

func (t Typed) raw(key string) any {
	if t.Lookup == nil {
		return nil
	}
	v, _ := t.Lookup(key)
	return v
}

func (t Typed) GetString(key string) string {
	s, _ := t.raw(key).(string)
	return s
}

func (t Typed) GetBool(key string) bool {
	b, _ := t.raw(key).(bool)
	return b
}

func (t Typed) GetInt(key string) int {
	switch v := t.raw(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return 0
}

// GetFloat also accepts integers, since "2" and "2.0" are distinct TOML types.
func (t Typed) GetFloat(key string) float64 {
	switch v := t.raw(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// GetStringSlice drops non-string array elements.
func (t Typed) GetStringSlice(key string) []string {
	switch v := t.raw(key).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
