// Package watch notifies about changes to a single file.
//
// The watcher monitors the file's directory rather than the file
// itself, so editors that save by renaming a temporary file over the
// target keep delivering events. Rapid changes within the debounce
// window are coalesced into one event with the operations combined.
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String names the operations, pipe-separated when coalesced.
func (op Op) String() string {
	if op == 0 {
		return "NONE"
	}
	names := make([]string, 0, len(opNames))
	for _, e := range opNames {
		if op.Has(e.op) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is the operation, possibly several coalesced together.
	Op Op

	// Timestamp is when the last contributing change occurred.
	Timestamp time.Time
}

// Option configures a FileWatcher.
type Option func(*options)

type options struct {
	delay      time.Duration
	bufferSize int
}

// WithDebounce sets the coalescing window. Changes arriving within the
// window extend it and merge into the pending event.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// WithBufferSize sets the event and error channel buffer size.
func WithBufferSize(size int) Option {
	return func(o *options) {
		o.bufferSize = size
	}
}

// FileWatcher watches one file for changes.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string

	delay  time.Duration
	events chan Event
	errors chan error

	pending *pendingEvent

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// pendingEvent tracks the event being debounced.
type pendingEvent struct {
	event Event
	timer *time.Timer
	ops   Op
}

// NewFileWatcher watches the file at path. The file must exist.
func NewFileWatcher(path string, opts ...Option) (*FileWatcher, error) {
	o := options{
		delay:      100 * time.Millisecond,
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.delay <= 0 {
		o.delay = 100 * time.Millisecond
	}
	if o.bufferSize <= 0 {
		o.bufferSize = 16
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		path:    absPath,
		delay:   o.delay,
		events:  make(chan Event, o.bufferSize),
		errors:  make(chan error, o.bufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Events returns the channel of coalesced file change events.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources.
// After Close, the Events and Errors channels are closed.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.timer.Stop()
		w.pending = nil
	}
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// handleFSEvent filters directory events down to the watched file and
// schedules delivery.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}
	w.coalesce(Event{
		Path:      w.path,
		Op:        op,
		Timestamp: time.Now(),
	})
}

// coalesce merges the event into the pending one, or starts a new
// debounce window.
func (w *FileWatcher) coalesce(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if p := w.pending; p != nil {
		p.ops |= event.Op
		p.event.Op = p.ops
		p.event.Timestamp = event.Timestamp
		p.timer.Reset(w.delay)
		return
	}

	p := &pendingEvent{event: event, ops: event.Op}
	p.timer = time.AfterFunc(w.delay, w.fire)
	w.pending = p
}

// fire delivers the pending event. Holding the lock while sending keeps
// the buffered, non-blocking send ordered before Close can close the
// channel.
func (w *FileWatcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := w.pending
	w.pending = nil
	if p == nil || w.closed {
		return
	}

	select {
	case w.events <- p.event:
	default:
		// Channel full, drop event
	}
}

// sendError sends an error to the output channel.
func (w *FileWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.closeCh:
	default:
		// Channel full, drop error
	}
}

// convertOp converts fsnotify.Op to watch.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
