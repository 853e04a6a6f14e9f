// Package transform provides the frame-transform lookup the planner uses to
// locate the robot in the reference frame. Transforms arrive over the bus
// and are buffered per directed frame pair; lookups never block.
package transform

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
)

var (
	// ErrUnknownFrame means one of the requested frames has never been seen.
	ErrUnknownFrame = errors.New("unknown transform frame")
	// ErrNoPath means both frames are known but no edge connects them.
	ErrNoPath = errors.New("no transform path between frames")
	// ErrStaleTransform means the buffered transform is outside the
	// acceptable age for the requested time.
	ErrStaleTransform = errors.New("transform outside buffered time range")
)

// Source resolves the pose of a child frame within a parent frame. A zero
// `at` requests the most recent transform available.
type Source interface {
	Lookup(parent, child string, at time.Time) (geometry.Pose, error)
}

type edgeKey struct {
	parent string
	child  string
}

type edge struct {
	pose  geometry.Pose
	stamp time.Time
}

// Buffer keeps the latest transform per directed frame pair. The bus
// subscriber writes; the control loop reads.
type Buffer struct {
	mu     sync.RWMutex
	edges  map[edgeKey]edge
	frames map[string]struct{}
	maxAge time.Duration

	now func() time.Time // swapped out in tests
}

// NewBuffer creates a buffer that rejects transforms older than maxAge
// relative to the requested time.
func NewBuffer(maxAge time.Duration) *Buffer {
	return &Buffer{
		edges:  make(map[edgeKey]edge),
		frames: make(map[string]struct{}),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Update stores the latest transform for the parent->child pair.
func (b *Buffer) Update(parent, child string, pose geometry.Pose, stamp time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.edges[edgeKey{parent, child}] = edge{pose: pose, stamp: stamp}
	b.frames[parent] = struct{}{}
	b.frames[child] = struct{}{}
}

// Lookup returns the buffered parent->child transform. A zero `at` means
// "latest", bounded by the buffer's max age against the current time.
func (b *Buffer) Lookup(parent, child string, at time.Time) (geometry.Pose, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.frames[parent]; !ok {
		return geometry.Pose{}, fmt.Errorf("%w: '%s'", ErrUnknownFrame, parent)
	}
	if _, ok := b.frames[child]; !ok {
		return geometry.Pose{}, fmt.Errorf("%w: '%s'", ErrUnknownFrame, child)
	}

	e, ok := b.edges[edgeKey{parent, child}]
	if !ok {
		return geometry.Pose{}, fmt.Errorf("%w: '%s' -> '%s'", ErrNoPath, parent, child)
	}

	ref := at
	if ref.IsZero() {
		ref = b.now()
	}
	age := ref.Sub(e.stamp)
	if age < 0 {
		age = -age
	}
	if age > b.maxAge {
		return geometry.Pose{}, fmt.Errorf("%w: '%s' -> '%s' is %s old", ErrStaleTransform, parent, child, age)
	}

	return e.pose, nil
}
