package storage

import (
	"errors"
	"testing"
	"time"
)

func TestBreakerDefaults(t *testing.T) {
	config := DefaultBreakerConfig()

	if config.MaxFailures != 5 {
		t.Errorf("Expected MaxFailures 5, got %d", config.MaxFailures)
	}
	if config.Cooldown != 30*time.Second {
		t.Errorf("Expected Cooldown 30s, got %v", config.Cooldown)
	}
	if config.MaxProbes != 3 {
		t.Errorf("Expected MaxProbes 3, got %d", config.MaxProbes)
	}
}

func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	b := NewBreaker(nil)

	for i := 0; i < 10; i++ {
		if err := b.Execute(func() error { return nil }); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if b.State() != "closed" {
		t.Errorf("Expected closed state, got %s", b.State())
	}
}

func TestBreakerOpensAfterMaxFailures(t *testing.T) {
	b := NewBreaker(&BreakerConfig{MaxFailures: 3, Cooldown: time.Minute, MaxProbes: 1})
	fault := errors.New("redis down")

	for i := 0; i < 3; i++ {
		b.Execute(func() error { return fault })
	}

	if b.State() != "open" {
		t.Fatalf("Expected open state, got %s", b.State())
	}

	err := b.Execute(func() error { return nil })
	if !errors.Is(err, ErrBreakerOpen) {
		t.Errorf("Expected ErrBreakerOpen while open, got %v", err)
	}
}

func TestBreakerRecoversAfterCooldown(t *testing.T) {
	b := NewBreaker(&BreakerConfig{MaxFailures: 1, Cooldown: 10 * time.Millisecond, MaxProbes: 1})

	b.Execute(func() error { return errors.New("fault") })
	if b.State() != "open" {
		t.Fatalf("Expected open state, got %s", b.State())
	}

	time.Sleep(20 * time.Millisecond)

	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("Expected probe call to run, got %v", err)
	}

	if b.State() != "closed" {
		t.Errorf("Expected closed state after successful probes, got %s", b.State())
	}
}

func TestBreakerReopensOnProbeFailure(t *testing.T) {
	b := NewBreaker(&BreakerConfig{MaxFailures: 1, Cooldown: 10 * time.Millisecond, MaxProbes: 2})

	b.Execute(func() error { return errors.New("fault") })
	time.Sleep(20 * time.Millisecond)

	b.Execute(func() error { return errors.New("still down") })

	if b.State() != "open" {
		t.Errorf("Expected open state after failed probe, got %s", b.State())
	}
}

func TestBreakerFailureCountResetsOnSuccess(t *testing.T) {
	b := NewBreaker(&BreakerConfig{MaxFailures: 2, Cooldown: time.Minute, MaxProbes: 1})
	fault := errors.New("fault")

	b.Execute(func() error { return fault })
	b.Execute(func() error { return nil })
	b.Execute(func() error { return fault })

	if b.State() != "closed" {
		t.Errorf("Expected closed state, interleaved successes should reset the count, got %s", b.State())
	}
}
