package circuitbreaker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          20 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
	if cb.IsOpen() {
		t.Error("expected new breaker to be closed")
	}
}

func TestGeneratorConfig(t *testing.T) {
	cfg := GeneratorConfig("claude-api")

	if cfg.Name != "claude-api" {
		t.Errorf("expected name='claude-api', got %q", cfg.Name)
	}
	if cfg.MaxRequests != 1 || cfg.MinRequests != 3 {
		t.Errorf("unexpected request thresholds: %+v", cfg)
	}
	if cfg.FailureThreshold != 0.6 {
		t.Errorf("expected failure threshold 0.6, got %v", cfg.FailureThreshold)
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(testConfig())

	result, err := cb.Execute(func() (interface{}, error) {
		return "briefing", nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "briefing" {
		t.Errorf("expected result='briefing', got %v", result)
	}
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := New(testConfig())
	providerErr := errors.New("provider down")

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (interface{}, error) {
			return nil, providerErr
		})
		if !errors.Is(err, providerErr) {
			t.Fatalf("call %d: expected provider error, got %v", i, err)
		}
	}

	if !cb.IsOpen() {
		t.Fatalf("expected breaker to be open, got %v", cb.State())
	}

	called := false
	_, err := cb.Execute(func() (interface{}, error) {
		called = true
		return "unreachable", nil
	})
	if called {
		t.Error("expected open breaker to reject without calling the function")
	}
	if !IsRejection(err) {
		t.Errorf("expected rejection error, got %v", err)
	}
}

func TestCircuitBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("fail")
		})
	}

	if cb.IsOpen() {
		t.Error("expected breaker to stay closed below MinRequests")
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"open state", gobreaker.ErrOpenState, true},
		{"too many requests", gobreaker.ErrTooManyRequests, true},
		{"wrapped open state", fmt.Errorf("generate: %w", gobreaker.ErrOpenState), true},
		{"provider error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRejection(tt.err); got != tt.want {
				t.Errorf("IsRejection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
