package context

import (
	"context"

	"github.com/google/uuid"
)

const spanIDLength = 16

// TraceContext identifies one request as it moves through the service.
// TraceID groups every log line produced for the request, SpanID marks
// this hop, and RequestID echoes the caller-supplied correlation header.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

// NewTraceContext builds the trace for an incoming request. Blank IDs
// are filled with fresh UUIDs so a request with no tracing headers is
// still correlatable across its log lines.
func NewTraceContext(traceID, requestID string) *TraceContext {
	if traceID == "" {
		traceID = uuid.NewString()
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &TraceContext{
		TraceID:   traceID,
		SpanID:    uuid.NewString()[:spanIDLength],
		RequestID: requestID,
	}
}

type traceKey struct{}

// WithTrace attaches the trace to ctx.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, trace)
}

// GetTrace returns the trace attached to ctx, or nil outside a request.
func GetTrace(ctx context.Context) *TraceContext {
	trace, _ := ctx.Value(traceKey{}).(*TraceContext)
	return trace
}
