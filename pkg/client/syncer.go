package client

import (
	"net/url"
	"sync"
	"time"
)

const (
	defaultDebounce = 500 * time.Millisecond
	burstWindow     = time.Second
	burstLimit      = 10
)

// QuerySyncer mirrors filter state into a query string with a debounce, the
// way the transactions view syncs its filters into the URL. Rapid updates
// collapse into one publish; bursts beyond burstLimit per second are dropped
// outright until the window passes.
type QuerySyncer struct {
	publish  func(url.Values)
	debounce time.Duration

	mu          sync.Mutex
	pending     url.Values
	timer       *time.Timer
	windowStart time.Time
	windowCount int
	stopped     bool
}

// NewQuerySyncer creates a syncer that calls publish with the latest values
// once updates settle. publish runs on a timer goroutine.
func NewQuerySyncer(publish func(url.Values)) *QuerySyncer {
	return &QuerySyncer{
		publish:  publish,
		debounce: defaultDebounce,
	}
}

// Update schedules values for publishing. Consecutive calls within the
// debounce window replace the pending values and restart the timer. Calls
// beyond the per-second burst limit are discarded.
func (s *QuerySyncer) Update(values url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	now := time.Now()
	if now.Sub(s.windowStart) >= burstWindow {
		s.windowStart = now
		s.windowCount = 0
	}
	s.windowCount++
	if s.windowCount > burstLimit {
		return
	}

	s.pending = values
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// Flush publishes any pending values immediately, canceling the timer.
func (s *QuerySyncer) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

// Stop cancels any pending publish. The syncer accepts no further updates.
func (s *QuerySyncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

func (s *QuerySyncer) flush() {
	s.mu.Lock()
	values := s.pending
	s.pending = nil
	stopped := s.stopped
	s.mu.Unlock()

	if values != nil && !stopped {
		s.publish(values)
	}
}
