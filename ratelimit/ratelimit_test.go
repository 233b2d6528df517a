package ratelimit

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAllowWithinQuota(t *testing.T) {
	limiter := New(Quota{Max: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		if ok, _ := limiter.Allow("1.2.3.4"); !ok {
			t.Fatalf("Request %d unexpectedly denied", i+1)
		}
	}

	ok, quota := limiter.Allow("1.2.3.4")
	if ok {
		t.Fatal("Request over quota was allowed")
	}
	if quota.String() != "3 per 1m0s" {
		t.Errorf("Violated quota = %q, want %q", quota.String(), "3 per 1m0s")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	limiter := New(Quota{Max: 1, Window: time.Minute})

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("First client's first request denied")
	}
	if ok, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Fatal("Second client's first request denied")
	}
	if ok, _ := limiter.Allow("10.0.0.1"); ok {
		t.Fatal("First client's second request allowed")
	}
}

func TestWindowReset(t *testing.T) {
	now := time.Now()
	limiter := New(Quota{Max: 1, Window: time.Minute})
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("1.2.3.4"); !ok {
		t.Fatal("First request denied")
	}
	if ok, _ := limiter.Allow("1.2.3.4"); ok {
		t.Fatal("Second request in window allowed")
	}

	now = now.Add(time.Minute)
	if ok, _ := limiter.Allow("1.2.3.4"); !ok {
		t.Fatal("Request after window reset denied")
	}
}

func TestAllQuotasApply(t *testing.T) {
	now := time.Now()
	limiter := New(
		Quota{Max: 2, Window: time.Minute},
		Quota{Max: 5, Window: time.Hour},
	)
	limiter.now = func() time.Time { return now }

	// Exhaust the hour quota with allowed requests only, two per
	// minute window.
	for i := 0; i < 5; i++ {
		if i > 0 && i%2 == 0 {
			now = now.Add(time.Minute)
		}
		if ok, _ := limiter.Allow("1.2.3.4"); !ok {
			t.Fatalf("Request %d unexpectedly denied", i+1)
		}
	}

	if ok, quota := limiter.Allow("1.2.3.4"); ok || quota.Window != time.Hour {
		t.Fatalf("Expected hour quota violation, got ok=%v quota=%v", ok, quota)
	}
}

func TestDeniedRequestsStillCount(t *testing.T) {
	now := time.Now()
	limiter := New(
		Quota{Max: 2, Window: time.Minute},
		Quota{Max: 3, Window: time.Hour},
	)
	limiter.now = func() time.Time { return now }

	limiter.Allow("1.2.3.4")
	limiter.Allow("1.2.3.4")
	if ok, quota := limiter.Allow("1.2.3.4"); ok || quota.Window != time.Minute {
		t.Fatalf("Expected minute quota violation, got ok=%v quota=%v", ok, quota)
	}

	// The denied request consumed the last hour slot, so a fresh
	// minute window does not help.
	now = now.Add(time.Minute)
	if ok, quota := limiter.Allow("1.2.3.4"); ok || quota.Window != time.Hour {
		t.Fatalf("Expected hour quota violation, got ok=%v quota=%v", ok, quota)
	}
}

func TestTrackedClientsAreBounded(t *testing.T) {
	now := time.Now()
	limiter := New(Quota{Max: 1, Window: time.Minute})
	limiter.now = func() time.Time { return now }

	// Fill the map with distinct clients, none idle long enough to
	// prune, each seen slightly later than the previous one.
	for i := 0; i < maxTrackedClients; i++ {
		limiter.Allow("client-" + strconv.Itoa(i))
		now = now.Add(time.Millisecond)
	}
	if len(limiter.clients) != maxTrackedClients {
		t.Fatalf("Expected %d tracked clients, got %d", maxTrackedClients, len(limiter.clients))
	}

	if ok, _ := limiter.Allow("fresh-client"); !ok {
		t.Fatal("Fresh client's first request denied")
	}

	if len(limiter.clients) > maxTrackedClients {
		t.Errorf("Tracked clients grew to %d, cap is %d", len(limiter.clients), maxTrackedClients)
	}
	if _, ok := limiter.clients["fresh-client"]; !ok {
		t.Error("Fresh client is not tracked")
	}
	if _, ok := limiter.clients["client-0"]; ok {
		t.Error("Least-recently-seen client was not evicted")
	}
}

func TestConcurrentSameClient(t *testing.T) {
	limiter := New(Quota{Max: 5, Window: time.Minute})

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("1.2.3.4"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 5 {
		t.Errorf("Expected exactly 5 allowed requests, got %d", got)
	}
}
