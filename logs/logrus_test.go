package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valueLoggable struct {
	value int
}

func (v valueLoggable) Log(fields Fields) {
	fields.Add("value", v.value)
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogrusLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.DebugLevel,
		Output: &buf,
		JSON:   true,
	}).ForClass("playground", "Session")

	ctx := WithTraceID(context.Background(), 42)
	logger.Info(ctx, "insert", valueLoggable{value: 5}, MapFields{"kind": "avl"})

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "insert", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(42), entry["trace_id"])
	assert.Equal(t, float64(5), entry["value"])
	assert.Equal(t, "avl", entry["kind"])
	assert.Equal(t, "playground", entry["package"])
	assert.Equal(t, "Session", entry["class"])
}

func TestLogrusLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.WarnLevel,
		Output: &buf,
	})

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetTraceID(t *testing.T) {
	assert.Equal(t, int64(0), GetTraceID(context.Background()))
	assert.Equal(t, int64(7), GetTraceID(WithTraceID(context.Background(), 7)))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
