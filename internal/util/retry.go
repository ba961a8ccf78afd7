// ABOUTME: Exponential backoff helper for outbound API calls
// ABOUTME: Used by the OpenAI client between embedding and chat retries
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns the delay before the given retry attempt. The base delay
// doubles each attempt, capped at 30 seconds, with up to 25% random jitter
// either way so concurrent retries spread out.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}

	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}

	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
