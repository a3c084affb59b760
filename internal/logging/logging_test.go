package logging

import (
	"bytes"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want charmlog.Level
	}{
		{"debug", charmlog.DebugLevel},
		{"WARN", charmlog.WarnLevel},
		{"warning", charmlog.WarnLevel},
		{" error ", charmlog.ErrorLevel},
		{"info", charmlog.InfoLevel},
		{"", charmlog.InfoLevel},
		{"verbose", charmlog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown", "key", "pets")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=pets")
}

func TestInit_ReplacesDefault(t *testing.T) {
	before := Default()
	t.Cleanup(func() { defaultLogger.Store(before) })

	var buf bytes.Buffer
	logger := Init(Config{Level: "debug", JSON: true, Output: &buf})
	assert.Same(t, logger, Default())

	Default().Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
