package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestOTelTracer_WrapsSpans(t *testing.T) {
	tr := NewOTel(noop.NewTracerProvider().Tracer("test"))

	ctx, span := tr.Start(context.Background(), SpanBackendCall, String(AttrEndpoint, "pending_applicants"), Int(AttrStatusCode, 200))
	assert.NotNil(t, ctx)
	span.SetAttributes(String(AttrMethod, "GET"))
	span.End(errors.New("boom"))
}

func TestToOTelAttributes(t *testing.T) {
	assert.Nil(t, toOTelAttributes(nil))
	got := toOTelAttributes([]Attribute{String("a", "b"), Int("c", 1), {Key: "skip", Value: 1.5}})
	assert.Len(t, got, 2)
}
