package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})
	l.Info("hidden")
	l.Warn("shown", "x", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "x=3")
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})
	l.Debug("merged", "areas", 2)
	assert.Contains(t, buf.String(), `"msg":"merged"`)
	assert.Contains(t, buf.String(), `"areas":2`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, DefaultLevel, ParseLevel("verbose"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, DefaultLogger, OrDefault(nil))
	assert.Equal(t, Discard, OrDefault(Discard))
}
