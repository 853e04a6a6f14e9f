package zeromq

import (
	"testing"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
)

type scanRecorder struct {
	frames []*scan.Frame
}

func (r *scanRecorder) Store(f *scan.Frame) { r.frames = append(r.frames, f) }

// newTestSubscriber builds a subscriber without a socket; handle never
// touches it.
func newTestSubscriber() *Subscriber {
	return &Subscriber{
		topics: config.TopicsConfig{
			Scan:      "nav.sensor.scan",
			Transform: "nav.sensor.transform",
			Goal:      "nav.goal.pose",
		},
		logger: log.NewNopLogger(),
	}
}

func TestHandleDispatchesScan(t *testing.T) {
	s := newTestSubscriber()
	store := &scanRecorder{}
	s.SetScanStore(store)

	b := flatbuffers.NewBuilder(256)
	payload := EncodeLaserScan(b, &scan.Frame{
		Stamp:   time.Unix(10, 0),
		FrameID: "laser",
		Ranges:  []float64{1.5, 2.5},
	})
	s.handle([][]byte{[]byte("nav.sensor.scan"), payload})

	require.Len(t, store.frames, 1)
	assert.Equal(t, "laser", store.frames[0].FrameID)
	assert.Equal(t, []float64{1.5, 2.5}, store.frames[0].Ranges)
	assert.Equal(t, int64(1), s.GetStats().ScansReceived)
}

func TestHandleSurvivesTruncatedPayloads(t *testing.T) {
	s := newTestSubscriber()
	store := &scanRecorder{}
	s.SetScanStore(store)

	// Two bytes cannot hold a flatbuffer root offset; each of these must be
	// dropped without taking down the receive loop.
	garbage := []byte{0x04, 0x00}
	for _, topic := range []string{"nav.sensor.scan", "nav.sensor.transform", "nav.goal.pose"} {
		assert.NotPanics(t, func() {
			s.handle([][]byte{[]byte(topic), garbage})
		})
	}

	assert.Empty(t, store.frames)
	stats := s.GetStats()
	assert.Equal(t, int64(3), stats.Malformed)
	assert.Equal(t, int64(0), stats.ScansReceived)
}

func TestHandleCountsUnexpectedShapes(t *testing.T) {
	s := newTestSubscriber()

	s.handle([][]byte{[]byte("nav.sensor.scan")})
	s.handle([][]byte{[]byte("nav.other"), []byte("x")})

	assert.Equal(t, int64(2), s.GetStats().Malformed)
}
