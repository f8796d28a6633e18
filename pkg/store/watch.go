package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a storage change notification.
type EventType int

const (
	// EventChanged means the storage file was written or replaced.
	EventChanged EventType = iota
	// EventRemoved means the storage file is gone.
	EventRemoved
)

func (t EventType) String() string {
	switch t {
	case EventChanged:
		return "changed"
	case EventRemoved:
		return "removed"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is emitted by Watch when the storage file changes.
type Event struct {
	Type EventType
	Path string
}

// DefaultThrottle coalesces the burst of events a single Write produces.
const DefaultThrottle = 100 * time.Millisecond

// Watch streams change events for the storage file at path until ctx is
// cancelled. The parent directory is watched rather than the file because
// Write replaces the file by rename. Callers should drain the channel; events
// are dropped when the consumer falls behind.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure %s: %w", ErrIO, dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: create watcher: %w", ErrIO, err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("%w: watch %s: %w", ErrIO, dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(DefaultThrottle)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("watcher error", "path", abs, "err", err)
				// Report a change so the consumer re-reads instead of going stale.
				throttle.Enqueue(Event{Type: EventChanged, Path: abs}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				typ := EventChanged
				if evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) {
					if _, err := os.Stat(abs); err != nil {
						typ = EventRemoved
					}
				}
				throttle.Enqueue(Event{Type: typ, Path: abs}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle holds the latest event of a burst and delivers it once the
// burst has been quiet for delay. Nothing is sent once Stop has returned.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending = &ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends under the lock so a concurrent Stop cannot return while a send
// is in flight. send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	if t.stopped || pending == nil {
		return
	}
	send(*pending)
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
