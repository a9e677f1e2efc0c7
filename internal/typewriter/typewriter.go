// Package typewriter reveals text one rune at a time.
package typewriter

import (
	"sync"
	"time"
)

// DefaultInterval is the delay between revealed runes
const DefaultInterval = 70 * time.Millisecond

// Option configures a Typewriter
type Option func(*Typewriter)

// WithDispatcher runs callbacks through d, e.g. fyne.Do
func WithDispatcher(d func(func())) Option {
	return func(t *Typewriter) {
		if d != nil {
			t.dispatch = d
		}
	}
}

// Typewriter runs at most one reveal sequence at a time. Starting a new
// sequence supersedes the previous one; a superseded or stopped sequence
// never calls its callbacks again.
type Typewriter struct {
	interval time.Duration
	dispatch func(func())

	mu   sync.Mutex
	gen  uint64
	stop chan struct{}
}

// New creates a Typewriter. A non-positive interval uses DefaultInterval.
func New(interval time.Duration, opts ...Option) *Typewriter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Typewriter{
		interval: interval,
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interval returns the delay between runes
func (t *Typewriter) Interval() time.Duration {
	return t.interval
}

// Start reveals text, calling onStep with each growing prefix and onDone
// once after the full text was shown. Either callback may be nil.
func (t *Typewriter) Start(text string, onStep func(shown string), onDone func()) {
	t.mu.Lock()
	t.cancelLocked()
	t.gen++
	gen := t.gen
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go t.run(gen, stop, []rune(text), onStep, onDone)
}

// Stop cancels the running sequence, if any
func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.gen++
}

func (t *Typewriter) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Typewriter) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen == gen
}

func (t *Typewriter) run(gen uint64, stop <-chan struct{}, runes []rune, onStep func(string), onDone func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for i := 1; i <= len(runes); i++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		shown := string(runes[:i])
		t.dispatch(func() {
			if onStep != nil && t.current(gen) {
				onStep(shown)
			}
		})
	}

	select {
	case <-stop:
		return
	default:
	}

	t.dispatch(func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		// consume the generation so onDone cannot fire twice
		t.gen++
		t.stop = nil
		t.mu.Unlock()

		if onDone != nil {
			onDone()
		}
	})
}
