package app

import (
	"time"
)

// QueueScheduler is a FrameScheduler driven by the host loop: requests made
// during one tick run on the next call to RunPending.
type QueueScheduler struct {
	Now func() time.Time

	pending []func(time.Time)
}

func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{Now: time.Now}
}

func (s *QueueScheduler) RequestFrame(fn func(now time.Time)) {
	s.pending = append(s.pending, fn)
}

// RunPending runs the callbacks queued so far and reports how many ran.
// Callbacks queued while running wait for the next call.
func (s *QueueScheduler) RunPending() int {
	if len(s.pending) == 0 {
		return 0
	}
	queued := s.pending
	s.pending = nil
	now := s.Now()
	for _, fn := range queued {
		fn(now)
	}
	return len(queued)
}

func (s *QueueScheduler) Pending() int {
	return len(s.pending)
}
