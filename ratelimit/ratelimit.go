package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Quota bounds the number of requests a single client may make within a
// fixed time window.
type Quota struct {
	Max    int
	Window time.Duration
}

func (q Quota) String() string {
	return fmt.Sprintf("%d per %s", q.Max, q.Window)
}

type window struct {
	start time.Time
	count int
}

type client struct {
	windows  []window
	lastSeen time.Time
}

// Limiter counts requests per client key across one or more fixed
// windows. Counters are mutated on every request regardless of outcome
// and hold no state beyond requests seen per key per window.
type Limiter struct {
	mu      sync.Mutex
	quotas  []Quota
	clients map[string]*client
	now     func() time.Time
}

// New creates a limiter enforcing all of the given quotas.
func New(quotas ...Quota) *Limiter {
	return &Limiter{
		quotas:  quotas,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it is within
// every quota. When denied, the violated quota is returned so its
// description can be surfaced to the client. The increment and the
// check happen under one lock so concurrent requests from the same
// client cannot both claim a single remaining slot.
func (l *Limiter) Allow(key string) (bool, Quota) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	c, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= maxTrackedClients {
			l.prune(now)
			if len(l.clients) >= maxTrackedClients {
				l.evictOldest()
			}
		}
		c = &client{windows: make([]window, len(l.quotas))}
		l.clients[key] = c
	}
	c.lastSeen = now

	allowed := true
	var violated Quota
	for i, q := range l.quotas {
		w := &c.windows[i]
		if now.Sub(w.start) >= q.Window {
			w.start = now
			w.count = 0
		}
		w.count++
		if allowed && w.count > q.Max {
			allowed = false
			violated = q
		}
	}
	return allowed, violated
}

const maxTrackedClients = 10000

// prune drops clients idle for longer than the largest window. Called
// with the lock held.
func (l *Limiter) prune(now time.Time) {
	var maxWindow time.Duration
	for _, q := range l.quotas {
		if q.Window > maxWindow {
			maxWindow = q.Window
		}
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= maxWindow {
			delete(l.clients, key)
		}
	}
}

// evictOldest drops the least-recently-seen client so the tracked-client
// cap holds even when nothing is idle enough to prune. Called with the
// lock held.
func (l *Limiter) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, c := range l.clients {
		if oldestKey == "" || c.lastSeen.Before(oldest) {
			oldestKey = key
			oldest = c.lastSeen
		}
	}
	if oldestKey != "" {
		delete(l.clients, oldestKey)
	}
}
