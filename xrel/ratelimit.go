package xrel

import (
	"net/http"
	"strconv"
	"sync/atomic"
)

// Rate-limit response headers sent by the xREL API.
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimit is a point-in-time view of the tracker. A value of -1 means
// the corresponding figure is unknown, either because no call completed
// yet or because the last response did not carry the header.
type RateLimit struct {
	// Limit is the number of requests allowed per hour.
	Limit int64
	// Remaining is the number of requests left in the current window.
	Remaining int64
	// Reset is the epoch second at which the current window resets.
	Reset int64
	// LastStatus is the HTTP status code of the most recent response.
	LastStatus int64
}

// RateLimitTracker records the rate-limit headers and status code of the
// most recently completed call. Each Client owns one by default; a shared
// tracker can be injected with WithRateLimitTracker.
//
// Fields are written atomically but not as a unit: when calls complete
// concurrently, a snapshot may mix fields from different responses
// (last write per field wins). Callers needing exact per-response values
// must not share a tracker across concurrent calls.
type RateLimitTracker struct {
	limit      atomic.Int64
	remaining  atomic.Int64
	reset      atomic.Int64
	lastStatus atomic.Int64
}

// NewRateLimitTracker returns a tracker with every field unknown (-1).
func NewRateLimitTracker() *RateLimitTracker {
	t := &RateLimitTracker{}
	t.limit.Store(StatusUnknown)
	t.remaining.Store(StatusUnknown)
	t.reset.Store(StatusUnknown)
	t.lastStatus.Store(StatusUnknown)
	return t
}

// record overwrites the tracker from a completed response. A header absent
// from the response resets its field to -1 rather than keeping the previous
// value; unauthenticated endpoints do not carry rate-limit headers and that
// absence is meaningful.
func (t *RateLimitTracker) record(statusCode int, header http.Header) {
	t.limit.Store(headerInt(header, headerRateLimitLimit))
	t.remaining.Store(headerInt(header, headerRateLimitRemaining))
	t.reset.Store(headerInt(header, headerRateLimitReset))
	t.lastStatus.Store(int64(statusCode))
}

// Snapshot returns the current values. It has no side effects.
func (t *RateLimitTracker) Snapshot() RateLimit {
	return RateLimit{
		Limit:      t.limit.Load(),
		Remaining:  t.remaining.Load(),
		Reset:      t.reset.Load(),
		LastStatus: t.lastStatus.Load(),
	}
}

func headerInt(header http.Header, name string) int64 {
	v := header.Get(name)
	if v == "" {
		return StatusUnknown
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return StatusUnknown
	}
	return n
}
