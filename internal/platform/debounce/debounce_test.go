package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	fired []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = append(r.fired, v)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.fired))
	copy(out, r.fired)
	return out
}

// A burst of rapid Set calls fires exactly once with the final value.
func TestBurstFiresOnceWithLastValue(t *testing.T) {
	rec := &recorder{}
	v := New(50*time.Millisecond, rec.record)

	for _, s := range []string{"a", "ab", "abc", "abcd"} {
		v.Set(s)
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(rec.values()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"abcd"}, rec.values())

	// Quiet period after the fire must not produce a second fire.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"abcd"}, rec.values())
}

func TestSetRestartsWindow(t *testing.T) {
	rec := &recorder{}
	v := New(60*time.Millisecond, rec.record)

	v.Set("first")
	time.Sleep(40 * time.Millisecond)
	v.Set("second")
	time.Sleep(40 * time.Millisecond)

	// 80ms after the first Set, but only 40ms after the second: the
	// restarted window means nothing has fired yet.
	assert.Empty(t, rec.values())

	require.Eventually(t, func() bool {
		return len(rec.values()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"second"}, rec.values())
}

func TestFlushFiresImmediately(t *testing.T) {
	rec := &recorder{}
	v := New(time.Hour, rec.record)

	v.Set("pending")
	v.Flush()

	assert.Equal(t, []string{"pending"}, rec.values())

	// Flush with nothing pending is a no-op.
	v.Flush()
	assert.Equal(t, []string{"pending"}, rec.values())
}

func TestCancelDiscardsPending(t *testing.T) {
	rec := &recorder{}
	v := New(30*time.Millisecond, rec.record)

	v.Set("doomed")
	v.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.values())
}

func TestZeroWindowFallsBackToDefault(t *testing.T) {
	v := New[int](0, func(int) {})
	assert.Equal(t, DefaultWindow, v.window)
}
