package shared

import "sync"

// Notice represents a one-time user-facing notification.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives user-visible notifications. Failures in the session
// store and table engine are reported here instead of being thrown across
// a guard boundary.
type Notifier interface {
	Notify(Notice)
}

// NoticeRecorder buffers notices until the rendering layer drains them.
type NoticeRecorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify appends a notice to the buffer.
func (r *NoticeRecorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Drain returns all buffered notices and clears the buffer.
func (r *NoticeRecorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}
