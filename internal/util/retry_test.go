// ABOUTME: Tests for the exponential backoff helper
// ABOUTME: Validates growth, caps and jitter bounds
package util

import (
	"testing"
	"time"
)

func TestBackoffZeroAndNegativeAttempts(t *testing.T) {
	for _, attempt := range []int{0, -1, -50} {
		if d := Backoff(time.Second, attempt); d != 0 {
			t.Errorf("attempt %d: expected 0, got %v", attempt, d)
		}
	}
}

func TestBackoffGrowsExponentially(t *testing.T) {
	baseDelay := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		expected := baseDelay * time.Duration(1<<uint(attempt))
		lo := expected * 3 / 4
		hi := expected * 5 / 4

		d := Backoff(baseDelay, attempt)
		if d < lo || d > hi {
			t.Errorf("attempt %d: expected between %v and %v, got %v", attempt, lo, hi, d)
		}
	}
}

func TestBackoffCapsAt30Seconds(t *testing.T) {
	// 2^10 seconds without the cap
	d := Backoff(time.Second, 10)
	if d > 37500*time.Millisecond {
		t.Errorf("expected backoff capped near 30s, got %v", d)
	}
}

func TestBackoffSurvivesHugeAttemptCounts(t *testing.T) {
	d := Backoff(time.Millisecond, 1000)
	if d < 0 {
		t.Errorf("backoff must never be negative, got %v", d)
	}
	if d > 37500*time.Millisecond {
		t.Errorf("expected backoff capped near 30s, got %v", d)
	}
}

func TestBackoffJitterVaries(t *testing.T) {
	var results []time.Duration
	for i := 0; i < 100; i++ {
		results = append(results, Backoff(time.Second, 2))
	}

	allSame := true
	for _, r := range results[1:] {
		if r != results[0] {
			allSame = false
		}
		// 4s base with 25% jitter either way
		if r < 3*time.Second || r > 5*time.Second {
			t.Errorf("expected between 3s and 5s, got %v", r)
		}
	}
	if allSame {
		t.Error("expected jitter to vary across samples")
	}
}
