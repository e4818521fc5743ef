package session

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// DefaultClearAfter is how long a "copied" marker stays visible.
const DefaultClearAfter = 2 * time.Second

// Clipboard is the write-only system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy or
// the Windows API, whichever is available).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard not supported on this platform")
	}
	return clipboard.WriteAll(text)
}

type timer interface {
	Stop() bool
}

// Notifier copies text to the clipboard and remembers which output was
// copied last. The marker clears itself after a delay; every new copy
// restarts that delay, so at most one clear is ever pending.
type Notifier struct {
	mu         sync.Mutex
	clipboard  Clipboard
	delay      time.Duration
	afterFunc  func(time.Duration, func()) timer
	label      string
	pending    timer
	generation uint64
	onChange   func(label string)
}

// NewNotifier returns a notifier writing to cb. A non-positive delay means
// DefaultClearAfter.
func NewNotifier(cb Clipboard, delay time.Duration) *Notifier {
	if delay <= 0 {
		delay = DefaultClearAfter
	}
	return &Notifier{
		clipboard: cb,
		delay:     delay,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
	}
}

// OnChange registers fn to be called whenever the marker changes. fn may run
// on the timer goroutine.
func (n *Notifier) OnChange(fn func(label string)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Copy writes text to the clipboard and marks label as copied. When the
// write fails the marker is left alone and the error is returned.
func (n *Notifier) Copy(text, label string) error {
	if err := n.clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "failed to write clipboard")
	}

	n.mu.Lock()
	if n.pending != nil {
		n.pending.Stop()
	}
	n.generation++
	gen := n.generation
	n.label = label
	n.pending = n.afterFunc(n.delay, func() { n.expire(gen) })
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(label)
	}
	return nil
}

// expire clears the marker unless a newer copy replaced the timer that fired.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.generation {
		n.mu.Unlock()
		return
	}
	n.label = ""
	n.pending = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange("")
	}
}

// Label returns the label of the last copy, or "" once it expired.
func (n *Notifier) Label() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.label
}

// Stop cancels a pending clear. The marker stays as it is.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
	n.generation++
}
