package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells the host what to reload.
type ChangeKind uint8

const (
	ChangeTuning ChangeKind = iota
	ChangeScript
)

// Change is one debounced edit under a watched directory.
type Change struct {
	Path string
	Kind ChangeKind
}

// Editors often write a file several times per save; a change is reported
// once the file has been quiet for this long.
const debounce = 100 * time.Millisecond

// Watcher reports edits to tuning files and scripts. Changes queue on Events
// until the game polls them; when the queue is full further edits are dropped.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan Change
	Errors chan error

	settle    *settler
	closeOnce sync.Once
	done      chan struct{}
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:     fw,
		Events: make(chan Change, 16),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	w.settle = newSettler(debounce, w.Events)
	go w.run()
	return w, nil
}

// Close stops watching and closes Events and Errors.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
		<-w.done
	})
	return err
}

// Poll drains pending changes without blocking. A nil watcher has none.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		w.settle.stop()
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	events, errs := w.fs.Events, w.fs.Errors
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if kind, ok := classify(ev.Name); ok {
				w.settle.touch(Change{Path: ev.Name, Kind: kind})
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// settler holds back a change until its path has seen no new event for the
// settle delay, then sends the last change for that path.
type settler struct {
	delay time.Duration
	out   chan<- Change

	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

func newSettler(delay time.Duration, out chan<- Change) *settler {
	return &settler{delay: delay, out: out, pending: make(map[string]*time.Timer)}
}

func (s *settler) touch(c Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if t, ok := s.pending[c.Path]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A timer that lost the race with a newer touch still runs.
		if s.stopped || s.pending[c.Path] != t {
			return
		}
		delete(s.pending, c.Path)
		select {
		case s.out <- c:
		default:
		}
	})
	s.pending[c.Path] = t
}

// stop cancels pending changes. Nothing is sent after it returns.
func (s *settler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for path, t := range s.pending {
		t.Stop()
		delete(s.pending, path)
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeTuning, true
	case ".tengo":
		return ChangeScript, true
	}
	return 0, false
}
