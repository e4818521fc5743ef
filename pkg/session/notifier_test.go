package session

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

// fakeClock fires scheduled callbacks when Advance moves past their deadline.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) afterFunc(d time.Duration, fn func()) timer {
	t := &fakeTimer{at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			t.fn()
		}
	}
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func newTestNotifier(cb Clipboard) (*Notifier, *fakeClock) {
	clock := &fakeClock{}
	n := NewNotifier(cb, 2*time.Second)
	n.afterFunc = clock.afterFunc
	return n, clock
}

func TestNotifierCopySetsAndClearsLabel(t *testing.T) {
	cb := &fakeClipboard{}
	n, clock := newTestNotifier(cb)

	require.NoError(t, n.Copy("x", "a"))
	assert.Equal(t, "a", n.Label())
	assert.Equal(t, []string{"x"}, cb.written)

	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, "a", n.Label())

	clock.Advance(time.Millisecond)
	assert.Equal(t, "", n.Label())
}

func TestNotifierSecondCopyRestartsDelay(t *testing.T) {
	n, clock := newTestNotifier(&fakeClipboard{})

	require.NoError(t, n.Copy("x", "a"))
	clock.Advance(1500 * time.Millisecond)
	require.NoError(t, n.Copy("y", "b"))
	assert.Equal(t, 1, clock.pending(), "only one clear may be pending")

	// Past the first copy's deadline but before the second's.
	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, "b", n.Label())

	clock.Advance(time.Millisecond)
	assert.Equal(t, "", n.Label())
}

func TestNotifierStaleTimerDoesNotClear(t *testing.T) {
	n, clock := newTestNotifier(&fakeClipboard{})

	require.NoError(t, n.Copy("x", "a"))
	stale := clock.timers[0]
	require.NoError(t, n.Copy("y", "b"))

	// A timer that raced past Stop must not clear the newer label.
	stale.fn()
	assert.Equal(t, "b", n.Label())
}

func TestNotifierWriteFailureKeepsLabel(t *testing.T) {
	cb := &fakeClipboard{}
	n, clock := newTestNotifier(cb)

	require.NoError(t, n.Copy("x", "a"))
	cb.err = errors.New("no clipboard")

	err := n.Copy("y", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard")
	assert.Equal(t, "a", n.Label())
	assert.Equal(t, 1, clock.pending())
}

func TestNotifierOnChange(t *testing.T) {
	n, clock := newTestNotifier(&fakeClipboard{})

	var changes []string
	n.OnChange(func(label string) { changes = append(changes, label) })

	require.NoError(t, n.Copy("x", "markdown"))
	clock.Advance(2 * time.Second)
	assert.Equal(t, []string{"markdown", ""}, changes)
}

func TestNotifierStop(t *testing.T) {
	n, clock := newTestNotifier(&fakeClipboard{})

	require.NoError(t, n.Copy("x", "a"))
	n.Stop()
	assert.Equal(t, 0, clock.pending())
	clock.Advance(time.Hour)
	assert.Equal(t, "a", n.Label())
}

func TestNotifierDefaultDelay(t *testing.T) {
	n := NewNotifier(&fakeClipboard{}, 0)
	assert.Equal(t, DefaultClearAfter, n.delay)
}

func TestNotifierRealTimer(t *testing.T) {
	n := NewNotifier(&fakeClipboard{}, 20*time.Millisecond)

	var mu sync.Mutex
	cleared := false
	n.OnChange(func(label string) {
		if label == "" {
			mu.Lock()
			cleared = true
			mu.Unlock()
		}
	})

	require.NoError(t, n.Copy("x", "a"))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return cleared && n.Label() == ""
	}, time.Second, 5*time.Millisecond)
}
