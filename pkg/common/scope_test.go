package common

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMakeTraceID(t *testing.T) {
	id := MakeTraceID("Cry", "handler")
	if !strings.HasPrefix(id, "Cry_handler_") {
		t.Errorf("MakeTraceID() = %s, expected Cry_handler_ prefix", id)
	}
	if id == MakeTraceID("Cry", "handler") {
		t.Error("expected distinct trace ids")
	}
	if len(MakeTraceID()) != 12 {
		t.Errorf("expected bare id of 12 chars, got %q", MakeTraceID())
	}
}

func TestScope_NoopProvider(t *testing.T) {
	scope := GetScopeFromContext(context.Background(), "GetCompanion")
	defer scope.Finish()

	if !strings.HasPrefix(scope.TraceID, "GetCompanion_") {
		t.Errorf("expected generated trace id, got %s", scope.TraceID)
	}
	if scope.Log.Data[traceIdLogField] != scope.TraceID {
		t.Errorf("expected log entry to carry the trace id, got %v", scope.Log.Data)
	}
}

func TestScope_SDKProvider(t *testing.T) {
	provider := sdktrace.NewTracerProvider()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	defer func() {
		otel.SetTracerProvider(previous)
		provider.Shutdown(context.Background())
	}()

	scope := GetScopeFromContext(context.Background(), "RecordSteps")
	defer scope.Finish()

	if len(scope.TraceID) != 32 || strings.Contains(scope.TraceID, "_") {
		t.Errorf("expected otel trace id, got %s", scope.TraceID)
	}

	child := scope.NewChildScope("Submit")
	defer child.Finish()
	if child.TraceID != scope.TraceID {
		t.Errorf("child trace id = %s, expected %s", child.TraceID, scope.TraceID)
	}

	scope.SetAttributes("steps", 1050)
	scope.TraceError(errors.New("negative counter"))

	logger := logrus.New()
	scope.SetLogger(logrus.NewEntry(logger))
	if scope.Log.Logger != logger {
		t.Error("expected SetLogger to replace the logger")
	}
}

func TestScope_TraceEventAndTags(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	defer func() {
		otel.SetTracerProvider(previous)
		provider.Shutdown(context.Background())
	}()

	scope := GetScopeFromContext(context.Background(), "GetCompanion")
	scope.TraceEvent("step sample queued")
	scope.TraceTag("species_id", "004")
	scope.AddBaggage("sprite", "charmander")
	spanID := scope.GetSpanContextString()
	scope.Finish()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(spans))
	}
	span := spans[0]

	if spanID != span.SpanContext().SpanID().String() || len(spanID) != 16 {
		t.Errorf("GetSpanContextString() = %s, expected span id %s", spanID, span.SpanContext().SpanID())
	}

	events := span.Events()
	if len(events) != 1 || events[0].Name != "step sample queued" {
		t.Errorf("Expected one 'step sample queued' event, got %+v", events)
	}

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	if attrs["species_id"] != "004" {
		t.Errorf("species_id attribute = %q, expected 004", attrs["species_id"])
	}
	if attrs["sprite"] != "charmander" {
		t.Errorf("sprite attribute = %q, expected charmander", attrs["sprite"])
	}
}
