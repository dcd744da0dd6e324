package session

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long a file must be quiet before a change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Event reports that a watched file changed.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the last fsnotify operation seen before the file settled.
	Op fsnotify.Op

	// Time is when that operation was seen.
	Time time.Time
}

// Watcher reports changes to a single file. It watches the file's
// directory so editors that replace a file by rename are still seen.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      zerolog.Logger

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a change is reported. Zero
// reports every matching event immediately.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(logger zerolog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = logger
	}
}

// NewWatcher starts watching path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		debounce: DefaultDebounce,
		log:      zerolog.Nop(),
		events:   make(chan Event, 1),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, &PathError{Op: "watch", Path: path, Err: err}
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	w.log.Debug().Str("path", absPath).Dur("debounce", w.debounce).Msg("watching")
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the change channel. Changes that arrive while an event is
// still unread are folded into it.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.fsw.Close()
}

// processLoop filters fsnotify events and delivers them after the debounce
// period.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var (
		pending *Event
		timer   *time.Timer
		timerC  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}

			pending = &Event{Path: w.path, Op: ev.Op, Time: time.Now()}
			if w.debounce == 0 {
				w.emit(*pending)
				pending = nil
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if pending != nil {
				w.emit(*pending)
				pending = nil
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("path", w.path).Msg("watch error")
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// matches reports whether ev is a content change to the watched file.
func (w *Watcher) matches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}

// emit delivers ev unless an undelivered event is already queued.
func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
		w.log.Debug().Str("path", ev.Path).Str("op", ev.Op.String()).Msg("file changed")
	default:
	}
}
