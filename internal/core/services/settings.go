package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySourceKind        = "source.kind"
	keySourceLocation    = "source.location"
	keySourceManifest    = "source.manifest"
	keySourceFileList    = "source.file_list"
	keySourcePatterns    = "source.patterns"
	keySourceConcurrency = "source.concurrency"
	keySourceRate        = "source.requests_per_second"
	keySourceTimeout     = "source.timeout"
	keySourceRetries     = "source.retries"
	keySourceWatch       = "source.watch"
	keyFilterPreserve    = "filter.preserve_selection"
	keyFilterDuplicates  = "filter.duplicates"
	keySearchDebounce    = "search.debounce"
	keySearchTopics      = "search.include_topics"
	keySearchPositions   = "search.include_positions"
	keySearchDecisions   = "search.include_decisions"
	keySearchContext     = "search.include_context"
	keySearchReasoning   = "search.include_reasoning"
)

// SettingsService reads and writes AppSettings through a ConfigStore.
// Missing or invalid stored values fall back to the defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Source: domain.SourceSettings{
			Kind:              s.getSourceKind(defaults.Source.Kind),
			Location:          s.getString(keySourceLocation, defaults.Source.Location),
			Manifest:          s.getOptionalString(keySourceManifest, defaults.Source.Manifest),
			FileList:          s.getOptionalString(keySourceFileList, defaults.Source.FileList),
			Patterns:          s.getStringSlice(keySourcePatterns, defaults.Source.Patterns),
			Concurrency:       s.getInt(keySourceConcurrency, defaults.Source.Concurrency),
			RequestsPerSecond: s.getFloat(keySourceRate, defaults.Source.RequestsPerSecond),
			Timeout:           s.getDuration(keySourceTimeout, defaults.Source.Timeout),
			Retries:           s.getInt(keySourceRetries, defaults.Source.Retries),
			Watch:             s.getBool(keySourceWatch, defaults.Source.Watch),
		},
		Filter: domain.FilterSettings{
			PreserveSelection: s.getBool(keyFilterPreserve, defaults.Filter.PreserveSelection),
			Duplicates:        s.getDuplicatePolicy(defaults.Filter.Duplicates),
		},
		Search: domain.SearchSettings{
			Debounce: s.getDuration(keySearchDebounce, defaults.Search.Debounce),
			Defaults: domain.SearchFilter{
				IncludeTopics:    s.getBool(keySearchTopics, defaults.Search.Defaults.IncludeTopics),
				IncludePositions: s.getBool(keySearchPositions, defaults.Search.Defaults.IncludePositions),
				IncludeDecisions: s.getBool(keySearchDecisions, defaults.Search.Defaults.IncludeDecisions),
				IncludeContext:   s.getBool(keySearchContext, defaults.Search.Defaults.IncludeContext),
				IncludeReasoning: s.getBool(keySearchReasoning, defaults.Search.Defaults.IncludeReasoning),
			},
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keySourceKind, settings.Source.Kind.String()},
		{keySourceLocation, settings.Source.Location},
		{keySourceManifest, settings.Source.Manifest},
		{keySourceFileList, settings.Source.FileList},
		{keySourcePatterns, settings.Source.Patterns},
		{keySourceConcurrency, settings.Source.Concurrency},
		{keySourceRate, settings.Source.RequestsPerSecond},
		{keySourceTimeout, settings.Source.Timeout.String()},
		{keySourceRetries, settings.Source.Retries},
		{keySourceWatch, settings.Source.Watch},
		{keyFilterPreserve, settings.Filter.PreserveSelection},
		{keyFilterDuplicates, settings.Filter.Duplicates.String()},
		{keySearchDebounce, settings.Search.Debounce.String()},
		{keySearchTopics, settings.Search.Defaults.IncludeTopics},
		{keySearchPositions, settings.Search.Defaults.IncludePositions},
		{keySearchDecisions, settings.Search.Defaults.IncludeDecisions},
		{keySearchContext, settings.Search.Defaults.IncludeContext},
		{keySearchReasoning, settings.Search.Defaults.IncludeReasoning},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates it and stores it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)
	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the supported setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keySourceKind, keySourceLocation, keySourceManifest, keySourceFileList,
		keySourcePatterns, keySourceConcurrency, keySourceRate, keySourceTimeout,
		keySourceRetries, keySourceWatch, keyFilterPreserve, keyFilterDuplicates,
		keySearchDebounce, keySearchTopics, keySearchPositions, keySearchDecisions,
		keySearchContext, keySearchReasoning,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath reports the backing store's location.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func parseSetting(key, value string) (any, error) {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %s=%q: %w", domain.ErrInvalidInput, key, value, err)
	}

	switch key {
	case keySourceKind:
		if kind := domain.SourceKind(value); !kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown source kind %q", domain.ErrInvalidInput, value)
		}
		return value, nil
	case keyFilterDuplicates:
		if policy := domain.DuplicatePolicy(value); !policy.IsValid() {
			return nil, fmt.Errorf("%w: unknown duplicate policy %q", domain.ErrInvalidInput, value)
		}
		return value, nil
	case keySourceLocation:
		if value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return value, nil
	case keySourceManifest, keySourceFileList:
		return value, nil
	case keySourcePatterns:
		return splitList(value), nil
	case keySourceConcurrency, keySourceRetries:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, invalid(err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
		return n, nil
	case keySourceRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, invalid(err)
		}
		if f < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
		return f, nil
	case keySourceTimeout, keySearchDebounce:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, invalid(err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
		return d.String(), nil
	case keySourceWatch, keyFilterPreserve, keySearchTopics, keySearchPositions,
		keySearchDecisions, keySearchContext, keySearchReasoning:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid(err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getOptionalString allows an explicitly stored empty value to disable a resource.
func (s *SettingsService) getOptionalString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return append([]string(nil), defaultVal...)
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	if val := s.configStore.GetInt(key); val >= 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	if val := s.configStore.GetFloat(key); val >= 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getSourceKind(defaultVal domain.SourceKind) domain.SourceKind {
	kind := domain.SourceKind(s.configStore.GetString(keySourceKind))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getDuplicatePolicy(defaultVal domain.DuplicatePolicy) domain.DuplicatePolicy {
	policy := domain.DuplicatePolicy(s.configStore.GetString(keyFilterDuplicates))
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}
