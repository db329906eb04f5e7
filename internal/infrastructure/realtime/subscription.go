package realtime

import "sync"

// Handle is an explicit live-query handle. The owning screen must call
// Unsubscribe when it stops listening; the stop function is run exactly once.
type Handle struct {
	once sync.Once
	stop func()
}

func NewHandle(stop func()) *Handle {
	return &Handle{stop: stop}
}

func (h *Handle) Unsubscribe() {
	h.once.Do(h.stop)
}
