package signal

import (
	"testing"
	"time"
)

func TestBaseSignal(t *testing.T) {
	timestamp := time.Now()
	metadata := map[string]interface{}{
		"test_key": "test_value",
	}

	signal := NewBaseSignal("test_type", timestamp, metadata)

	if signal.Type() != "test_type" {
		t.Errorf("Expected type 'test_type', got '%s'", signal.Type())
	}

	if !signal.Timestamp().Equal(timestamp) {
		t.Errorf("Expected timestamp %v, got %v", timestamp, signal.Timestamp())
	}

	if signal.Metadata()["test_key"] != "test_value" {
		t.Errorf("Expected metadata test_key='test_value', got '%v'", signal.Metadata()["test_key"])
	}
}

func TestBaseSignal_NilMetadata(t *testing.T) {
	signal := NewBaseSignal("test", time.Now(), nil)

	if signal.Metadata() == nil {
		t.Error("Expected non-nil metadata map")
	}
}

func TestSignalTypes(t *testing.T) {
	now := time.Date(2026, time.May, 1, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		sig      Signal
		wantType string
	}{
		{name: "tick", sig: NewTickSignal(now), wantType: TypeTick},
		{name: "step", sig: NewStepSignal(now, 4200), wantType: TypeStep},
		{name: "tap", sig: NewTapSignal(now), wantType: TypeTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sig.Type() != tt.wantType {
				t.Errorf("Type() = %s, expected %s", tt.sig.Type(), tt.wantType)
			}
			if !tt.sig.Timestamp().Equal(now) {
				t.Errorf("Timestamp() = %v, expected %v", tt.sig.Timestamp(), now)
			}
		})
	}

	step := NewStepSignal(now, 4200)
	if step.Cumulative != 4200 || step.Metadata()["cumulative"] != 4200 {
		t.Errorf("Expected cumulative 4200, got %d / %v", step.Cumulative, step.Metadata()["cumulative"])
	}
}
