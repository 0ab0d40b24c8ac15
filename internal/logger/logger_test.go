package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects log output to a buffer for the duration of the test.
func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		log   func()
		level string
		text  string
	}{
		{"debug", func() { Debug("loaded %d files", 3) }, "DEBU", "loaded 3 files"},
		{"info", func() { Info("watching %s", "/summaries") }, "INFO", "watching /summaries"},
		{"warn", func() { Warn("skipped %s", "readme.json") }, "WARN", "skipped readme.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" verbose", func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.text)
		})
		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log()
			assert.Zero(t, buf.Len())
		})
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Discovery")

	assert.Equal(t, "\n=== Discovery ===\n", buf.String())
}

func TestWith_BindsKeyValues(t *testing.T) {
	buf := capture(t, false)
	scoped := With("file", "readme.json")

	scoped.Warn("excluded")
	assert.Zero(t, buf.Len())

	SetVerbose(true)
	scoped.Warn("excluded", "reason", "pattern")
	scoped.Debug("parsed")

	out := buf.String()
	for _, want := range []string{"excluded", "file=readme.json", "reason=pattern", "parsed"} {
		assert.Contains(t, out, want)
	}
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(i%2 == 0)
			Debug("worker %d", i)
			With("worker", i).Debug("done")
			_ = IsVerbose()
		}()
	}
	wg.Wait()
}
