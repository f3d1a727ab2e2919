package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotelbooking/infras/otel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder(t *testing.T) (otel.Otel, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return otel.NewFromProvider(provider), recorder
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestScope_Attributes(t *testing.T) {
	tracer, recorder := newRecorder(t)

	_, scope := tracer.NewScope(context.Background(), "service", "service.booking.Create")
	scope.SetAttribute("booking.guests", 3)
	scope.SetAttribute("booking.total", decimal.RequireFromString("600.00"))
	scope.SetAttributes(map[string]any{
		"booking.confirmed": false,
		"booking.room":      "room-1",
		"booking.nights":    int64(3),
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Create", spans[0].Name())

	attrs := attributes(spans[0])
	assert.Equal(t, int64(3), attrs["booking.guests"].AsInt64())
	assert.Equal(t, "600", attrs["booking.total"].AsString())
	assert.False(t, attrs["booking.confirmed"].AsBool())
	assert.Equal(t, "room-1", attrs["booking.room"].AsString())
	assert.Equal(t, int64(3), attrs["booking.nights"].AsInt64())
}

func TestScope_TraceError(t *testing.T) {
	tracer, recorder := newRecorder(t)

	_, scope := tracer.NewScope(context.Background(), "repository", "repository.room.Get")
	scope.TraceIfError(nil)
	scope.AddEvent("room.lookup")
	scope.TraceError(errors.New("connection reset"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "connection reset", spans[0].Status().Description)

	names := []string{}
	for _, event := range spans[0].Events() {
		names = append(names, event.Name)
	}

	assert.Equal(t, []string{"room.lookup", "exception"}, names)
}

func TestScope_NilErrorLeavesStatusUnset(t *testing.T) {
	tracer, recorder := newRecorder(t)

	_, scope := tracer.NewScope(context.Background(), "handler", "handler.hotel.Get")
	scope.TraceError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
}
