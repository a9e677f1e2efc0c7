package state

import (
	"sync"
	"sync/atomic"

	"github.com/ytget/inspiration/internal/model"
)

// Snapshot is an immutable copy of the presentation state
type Snapshot struct {
	RunID string
	Phase model.Phase

	// IsLoading is true only while the image chain runs
	IsLoading bool

	Photo           *model.Photo
	IsUnsplashImage bool

	Quote               string
	TranslatedQuote     string
	ShowTranslatedQuote bool

	WeatherText  string
	LocationText string

	version uint64
}

// TranslationVisible reports whether the translated line should be drawn
func (s Snapshot) TranslationVisible() bool {
	return s.ShowTranslatedQuote && s.TranslatedQuote != ""
}

// Dispatcher runs fn on the execution context listeners expect
type Dispatcher func(fn func())

// Direct calls fn on the calling goroutine
func Direct(fn func()) { fn() }

// Option configures a Store
type Option func(*Store)

// WithDispatcher sets how listeners are invoked
func WithDispatcher(d Dispatcher) Option {
	return func(s *Store) {
		if d != nil {
			s.dispatch = d
		}
	}
}

type listener struct {
	fn   func(Snapshot)
	seen atomic.Uint64
}

// deliver drops snapshots older than one already delivered, since
// concurrent updates may reach the dispatcher out of order.
func (l *listener) deliver(snap Snapshot) {
	for {
		seen := l.seen.Load()
		if snap.version <= seen {
			return
		}
		if l.seen.CompareAndSwap(seen, snap.version) {
			break
		}
	}
	l.fn(snap)
}

// Store is the single owner of presentation state
type Store struct {
	mu        sync.Mutex
	snap      Snapshot
	listeners map[int]*listener
	nextID    int
	dispatch  Dispatcher
}

// New creates a Store in the idle phase with the weather placeholder shown
func New(opts ...Option) *Store {
	s := &Store{
		snap: Snapshot{
			Phase:       model.PhaseIdle,
			WeatherText: model.WeatherPlaceholder,
		},
		listeners: make(map[int]*listener),
		dispatch:  Direct,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers fn for every accepted change. The returned func
// removes the listener.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = &listener{fn: fn}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// BeginRun starts a new acquisition run, superseding any previous one.
// Quote, translation and photo are cleared; weather is kept.
func (s *Store) BeginRun(runID string) {
	s.update(func(st *Snapshot) bool {
		st.RunID = runID
		st.Phase = model.PhaseLoadingImage
		st.IsLoading = true
		st.Photo = nil
		st.IsUnsplashImage = false
		st.Quote = ""
		st.TranslatedQuote = ""
		st.ShowTranslatedQuote = false
		return true
	})
}

// CommitPhoto stores the result of the image chain. A nil photo is the
// no-image state. Loading is always cleared.
func (s *Store) CommitPhoto(runID string, photo *model.Photo) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if st.Phase != model.PhaseLoadingImage {
			return false
		}
		st.Photo = photo
		st.IsUnsplashImage = photo != nil && photo.IsRemote
		st.IsLoading = false
		st.Phase = model.PhaseImageReady
		return true
	})
}

// BeginQuote marks the quote request as in flight. It requires a committed
// photo for the run.
func (s *Store) BeginQuote(runID string) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if st.Phase != model.PhaseImageReady || st.Photo == nil {
			return false
		}
		st.Phase = model.PhaseLoadingQuote
		return true
	})
}

// CommitQuote stores the display string for q
func (s *Store) CommitQuote(runID string, q model.Quote) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if st.Phase != model.PhaseLoadingQuote {
			return false
		}
		st.Quote = q.Display()
		st.Phase = model.PhaseQuoteReady
		return true
	})
}

// FailQuote records that no quote will be shown for the run
func (s *Store) FailQuote(runID string) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if st.Phase != model.PhaseLoadingQuote {
			return false
		}
		st.IsLoading = false
		st.Phase = model.PhaseImageReady
		return true
	})
}

// StartTyping marks the quote reveal as running
func (s *Store) StartTyping(runID string) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		// A completion already recorded for this run must stand.
		if st.Phase != model.PhaseQuoteReady || st.ShowTranslatedQuote {
			return false
		}
		st.Phase = model.PhaseTyping
		return true
	})
}

// FinishTyping records that the reveal for the run completed. Only from
// here on may the translated line become visible.
func (s *Store) FinishTyping(runID string) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if st.Phase != model.PhaseTyping && st.Phase != model.PhaseQuoteReady {
			return false
		}
		st.ShowTranslatedQuote = true
		if st.TranslatedQuote != "" {
			st.Phase = model.PhaseTranslationReady
		} else {
			st.Phase = model.PhaseQuoteReady
		}
		return true
	})
}

// CommitTranslation stores the translated text. It stays hidden until
// FinishTyping for the same run.
func (s *Store) CommitTranslation(runID, text string) bool {
	return s.updateRun(runID, func(st *Snapshot) bool {
		if !st.Phase.HasQuote() || st.Quote == "" || text == "" {
			return false
		}
		st.TranslatedQuote = text
		if st.ShowTranslatedQuote {
			st.Phase = model.PhaseTranslationReady
		}
		return true
	})
}

// SetWeather replaces the weather line. It is not tied to a run.
func (s *Store) SetWeather(text string) {
	s.update(func(st *Snapshot) bool {
		if st.WeatherText == text {
			return false
		}
		st.WeatherText = text
		return true
	})
}

// SetLocation replaces the resolved location line
func (s *Store) SetLocation(text string) {
	s.update(func(st *Snapshot) bool {
		if st.LocationText == text {
			return false
		}
		st.LocationText = text
		return true
	})
}

func (s *Store) updateRun(runID string, fn func(*Snapshot) bool) bool {
	return s.update(func(st *Snapshot) bool {
		if runID == "" || st.RunID != runID {
			return false
		}
		return fn(st)
	})
}

func (s *Store) update(fn func(*Snapshot) bool) bool {
	s.mu.Lock()
	if !fn(&s.snap) {
		s.mu.Unlock()
		return false
	}
	s.snap.version++
	snap := s.snap
	listeners := make([]*listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	dispatch := s.dispatch
	s.mu.Unlock()

	for _, l := range listeners {
		l := l
		dispatch(func() { l.deliver(snap) })
	}
	return true
}
