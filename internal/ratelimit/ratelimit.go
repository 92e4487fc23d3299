package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces per-client sliding windows over contact submissions.
// The public inquiry form is the only unauthenticated write on the site,
// so it gets a throttle keyed by client address.
type Limiter struct {
	perMinute int
	perHour   int

	mu      sync.Mutex
	clients map[string]*windows
}

type windows struct {
	minute   []time.Time
	hour     []time.Time
	lastSeen time.Time
}

// NewLimiter creates a limiter allowing perMinute and perHour submissions
// per client. A limit of 0 disables that window.
func NewLimiter(perMinute, perHour int) *Limiter {
	return &Limiter{
		perMinute: perMinute,
		perHour:   perHour,
		clients:   make(map[string]*windows),
	}
}

// Allow reports whether the client may submit now and, if so, records the
// submission.
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.prune(now)

	w, ok := l.clients[client]
	if !ok {
		w = &windows{}
		l.clients[client] = w
	}
	w.lastSeen = now
	w.minute = filterTimes(w.minute, now.Add(-time.Minute))
	w.hour = filterTimes(w.hour, now.Add(-time.Hour))

	if l.perMinute > 0 && len(w.minute) >= l.perMinute {
		return false
	}
	if l.perHour > 0 && len(w.hour) >= l.perHour {
		return false
	}

	w.minute = append(w.minute, now)
	w.hour = append(w.hour, now)
	return true
}

// prune drops clients idle for longer than the widest window so the map
// does not grow without bound.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-time.Hour)
	for client, w := range l.clients {
		if w.lastSeen.Before(cutoff) {
			delete(l.clients, client)
		}
	}
}

// filterTimes keeps only times after the cutoff.
func filterTimes(times []time.Time, cutoff time.Time) []time.Time {
	result := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}
