/*
Package project tracks the files of a project and their dependencies.

A Tracker maintains a versioned catalogue of project files. The
catalogue is held in an immutable sorted map, so handing out a snapshot
is a constant-time operation and readers of old snapshots never block
updates. Changes are broadcast to subscribers, and transitive
dependency closures are memoized per catalogue generation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package project

import (
	"errors"
	"slices"
	"sync"

	"github.com/guiguan/caster"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/sortedmap"
)

// File is the catalogue entry for one project file.
type File struct {
	Path    string   // project-relative path, the catalogue key
	Version uint64   // bumped on every upsert of this path
	Hash    string   // content hash, opaque to the tracker
	Deps    []string // paths this file directly depends on
}

// EventKind discriminates tracker change events.
type EventKind int

const (
	FileUpserted EventKind = iota + 1
	FileRemoved
)

func (k EventKind) String() string {
	switch k {
	case FileUpserted:
		return "upserted"
	case FileRemoved:
		return "removed"
	}
	return "unknown"
}

// Event describes one catalogue change. Events are broadcast to all
// subscribers after the change has been applied.
type Event struct {
	Kind       EventKind
	Path       string
	Generation uint64
}

// Snapshot is a frozen view of the catalogue. Snapshots are values and
// stay valid independently of later tracker updates.
type Snapshot struct {
	Files      sortedmap.Map[string, File]
	Generation uint64
}

// Options configures a Tracker. The zero value selects defaults.
type Options struct {
	ClosureCacheSize int  // entries in the closure memo cache, default 512
	EventBuffer      uint // capacity of subscriber channels, default 16
}

func (o Options) normalized() Options {
	if o.ClosureCacheSize <= 0 {
		o.ClosureCacheSize = 512
	}
	if o.EventBuffer == 0 {
		o.EventBuffer = 16
	}
	return o
}

type closureKey struct {
	path string
	gen  uint64
}

// Tracker is a concurrency-safe catalogue of project files.
//
// All methods may be called from multiple goroutines. Updates are
// serialized; reads work on immutable map versions and never see a
// half-applied update.
type Tracker struct {
	mu          sync.Mutex
	files       sortedmap.Map[string, File]
	gen         uint64
	closures    *lru.Cache[closureKey, []string]
	cast        *caster.Caster
	eventBuffer uint
	closed      bool
}

// ErrTrackerClosed is returned for operations on a closed tracker.
var ErrTrackerClosed = errors.New("project: tracker has been closed")

// NewTracker creates an empty tracker.
func NewTracker(opts Options) (*Tracker, error) {
	opts = opts.normalized()
	closures, err := lru.New[closureKey, []string](opts.ClosureCacheSize)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		files:       sortedmap.New[string, File](),
		closures:    closures,
		cast:        caster.New(nil),
		eventBuffer: opts.EventBuffer,
	}, nil
}

// Upsert records a file, assigning it the next version for its path,
// and notifies subscribers.
func (t *Tracker) Upsert(path string, hash string, deps []string) (File, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return File{}, ErrTrackerClosed
	}
	f := File{
		Path:    path,
		Version: 1,
		Hash:    hash,
		Deps:    slices.Clone(deps),
	}
	if prev, ok := t.files.Get(path); ok {
		f.Version = prev.Version + 1
	}
	t.files = t.files.Set(path, f)
	t.gen++
	ev := Event{Kind: FileUpserted, Path: path, Generation: t.gen}
	t.mu.Unlock()
	t.cast.Pub(ev)
	return f, nil
}

// Remove drops a file from the catalogue. Removing an unknown path is
// a no-op and does not advance the generation.
func (t *Tracker) Remove(path string) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrTrackerClosed
	}
	if !t.files.Contains(path) {
		t.mu.Unlock()
		return nil
	}
	t.files = t.files.Delete(path)
	t.gen++
	ev := Event{Kind: FileRemoved, Path: path, Generation: t.gen}
	t.mu.Unlock()
	t.cast.Pub(ev)
	return nil
}

// Snapshot returns a frozen view of the current catalogue.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{Files: t.files, Generation: t.gen}
}

// Dependents returns the paths of all files that directly depend on
// path, in ascending order.
func (t *Tracker) Dependents(path string) []string {
	snap := t.Snapshot()
	var dependents []string
	snap.Files.Each(func(p string, f File) bool {
		if slices.Contains(f.Deps, path) {
			dependents = append(dependents, p)
		}
		return true
	})
	return dependents
}

// Closure returns the transitive dependency closure of path, including
// path itself, in ascending order. Dependencies on unknown paths are
// included as given. Closures are memoized per catalogue generation.
func (t *Tracker) Closure(path string) []string {
	snap := t.Snapshot()
	key := closureKey{path: path, gen: snap.Generation}
	if c, ok := t.closures.Get(key); ok {
		return c
	}
	seen := sortedmap.New[string, struct{}]()
	worklist := []string{path}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if seen.Contains(p) {
			continue
		}
		seen = seen.Set(p, struct{}{})
		if f, ok := snap.Files.Get(p); ok {
			worklist = append(worklist, f.Deps...)
		}
	}
	closure := seen.Keys()
	t.closures.Add(key, closure)
	return closure
}

// Subscribe registers a channel for change events. The second return
// value is false if the tracker has already been closed. Subscribers
// should drain their channel promptly; the channel capacity is set by
// Options.EventBuffer.
func (t *Tracker) Subscribe() (chan interface{}, bool) {
	return t.cast.Sub(nil, t.eventBuffer)
}

// Unsubscribe deregisters a channel obtained from Subscribe.
func (t *Tracker) Unsubscribe(ch chan interface{}) {
	t.cast.Unsub(ch)
}

// Close shuts down event broadcasting. The catalogue itself stays
// readable; updates fail with ErrTrackerClosed.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()
	t.cast.Close()
}
