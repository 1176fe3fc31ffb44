package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceContext_KeepsCallerIDs(t *testing.T) {
	trace := NewTraceContext("trace-abc", "req-123")

	assert.Equal(t, "trace-abc", trace.TraceID)
	assert.Equal(t, "req-123", trace.RequestID)
	assert.Len(t, trace.SpanID, spanIDLength)
}

func TestNewTraceContext_FillsBlankIDs(t *testing.T) {
	trace := NewTraceContext("", "")

	assert.NotEmpty(t, trace.TraceID)
	assert.NotEmpty(t, trace.RequestID)
	assert.NotEqual(t, trace.TraceID, trace.RequestID)
}

func TestTraceRoundTrip(t *testing.T) {
	trace := NewTraceContext("trace-abc", "req-123")
	ctx := WithTrace(context.Background(), trace)

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, trace, got)

	assert.Nil(t, GetTrace(context.Background()))
}
