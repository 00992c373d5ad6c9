// Package tracer is the console's small tracing abstraction. Backend calls open one span
// each; OTelTracer bridges to OpenTelemetry and NoopTracer keeps tests free of it.
package tracer

import "context"

// Span is an active trace span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }
func Int(key string, value int) Attribute { return Attribute{Key: key, Value: value} }

// Span and attribute names used by the backend client.
const (
	SpanBackendCall = "backend.call"

	AttrEndpoint   = "backend.endpoint"
	AttrMethod     = "http.method"
	AttrStatusCode = "http.status_code"
)

// NoopTracer does nothing.
type NoopTracer struct{}

func NewNoop() *NoopTracer { return &NoopTracer{} }

func (t *NoopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error)                 {}
func (noopSpan) SetAttributes(...Attribute) {}

var (
	_ Tracer = (*NoopTracer)(nil)
	_ Span   = noopSpan{}
)
