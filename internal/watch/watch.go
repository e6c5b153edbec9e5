// Package watch wraps fsnotify for the rexast-watch tool: it watches
// individual pattern files and delivers coalesced change events.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bitmask of the operations observed on a watched path.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Changed reports whether the event carries new content worth
// re-reading (a create or a write).
func (o Op) Changed() bool {
	return o&(OpCreate|OpWrite) != 0
}

// Gone reports whether the watched path disappeared.
func (o Op) Gone() bool {
	return o&(OpRemove|OpRename) != 0
}

// Event is one observed change on a watched path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers filesystem events for registered paths over
// channels until closed.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan Event
	errs   chan error
}

// New creates a watcher backed by OS-native notifications.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:     fw,
		events: make(chan Event, 64),
		errs:   make(chan error, 1),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				close(w.events)
				return
			}
			w.events <- Event{Path: ev.Name, Op: mapOp(ev.Op)}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.errs <- err
		}
	}
}

func mapOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}
	return out
}

// Events returns the channel of observed changes.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Add registers a path with the watcher.
func (w *Watcher) Add(path string) error { return w.fw.Add(path) }

// Remove unregisters a path.
func (w *Watcher) Remove(path string) error { return w.fw.Remove(path) }

// Close shuts the watcher down and closes the event channel.
func (w *Watcher) Close() error { return w.fw.Close() }
