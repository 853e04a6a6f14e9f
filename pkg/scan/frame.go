// Package scan holds the range-sensor frame type, the shared slot the bus
// publishes frames into, and the preprocessing that turns a raw sweep into
// the fixed-length model input.
package scan

import (
	"sync/atomic"
	"time"
)

// Frame is one sweep of the range sensor. A Frame is immutable once
// published: producers build a fresh Frame per message and swap it into a
// Latest slot whole, so readers never see a partial update.
type Frame struct {
	Stamp          time.Time
	FrameID        string
	AngleMin       float64
	AngleMax       float64
	AngleIncrement float64
	RangeMin       float64
	RangeMax       float64
	Ranges         []float64
}

// Latest is a single-writer slot holding the most recent Frame. The bus
// subscriber stores, the control loop loads; neither blocks the other.
type Latest struct {
	ptr atomic.Pointer[Frame]
}

// Store publishes a new frame, replacing any previous one.
func (l *Latest) Store(f *Frame) {
	l.ptr.Store(f)
}

// Load returns the most recently published frame, or false if no frame has
// ever arrived.
func (l *Latest) Load() (*Frame, bool) {
	f := l.ptr.Load()
	return f, f != nil
}
