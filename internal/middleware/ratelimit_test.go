package middleware

import "testing"

func TestRateLimiter_Allow(t *testing.T) {
	// 60/min → burst of 6 immediate requests per source.
	rl := newRateLimiter(60)

	for i := 0; i < 6; i++ {
		if err := rl.Allow("1.2.3.4"); err != nil {
			t.Fatalf("request %d within burst should pass: %v", i, err)
		}
	}

	if err := rl.Allow("1.2.3.4"); err == nil {
		t.Error("request beyond burst should be limited")
	}

	// Other sources keep their own bucket.
	if err := rl.Allow("5.6.7.8"); err != nil {
		t.Errorf("independent source should pass: %v", err)
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := newRateLimiter(0)
	if err := rl.Allow("1.2.3.4"); err != nil {
		t.Errorf("default limiter should allow the first request: %v", err)
	}

	// Tiny configured rates still allow at least one request.
	rl = newRateLimiter(5)
	if err := rl.Allow("1.2.3.4"); err != nil {
		t.Errorf("burst floor should allow one request: %v", err)
	}
	if err := rl.Allow("1.2.3.4"); err == nil {
		t.Error("second immediate request should exceed the burst floor")
	}
}
