package transform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
)

func fixedBuffer(t *testing.T, maxAge time.Duration, now time.Time) *Buffer {
	t.Helper()
	b := NewBuffer(maxAge)
	b.now = func() time.Time { return now }
	return b
}

func TestBufferLookupLatest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := fixedBuffer(t, 500*time.Millisecond, now)

	pose := geometry.Pose{
		Position:    geometry.Vector3{X: 1.5, Y: -2},
		Orientation: geometry.QuaternionFromYaw(0.3),
	}
	b.Update("map", "base_link", pose, now.Add(-100*time.Millisecond))

	got, err := b.Lookup("map", "base_link", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, pose, got)
}

func TestBufferLookupAtTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := fixedBuffer(t, 500*time.Millisecond, now)

	pose := geometry.Pose{Position: geometry.Vector3{X: 7}}
	stamp := now.Add(-2 * time.Second)
	b.Update("map", "base_link", pose, stamp)

	// Explicit time near the stamp is fine even though "latest" would be stale.
	got, err := b.Lookup("map", "base_link", stamp.Add(200*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, pose, got)

	_, err = b.Lookup("map", "base_link", time.Time{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStaleTransform), "latest lookup should be stale, got %v", err)
}

func TestBufferUnknownFrame(t *testing.T) {
	now := time.Now()
	b := fixedBuffer(t, time.Second, now)
	b.Update("map", "base_link", geometry.Pose{}, now)

	_, err := b.Lookup("map", "gripper", time.Time{})
	assert.True(t, errors.Is(err, ErrUnknownFrame), "got %v", err)

	_, err = b.Lookup("odom", "base_link", time.Time{})
	assert.True(t, errors.Is(err, ErrUnknownFrame), "got %v", err)
}

func TestBufferNoPath(t *testing.T) {
	now := time.Now()
	b := fixedBuffer(t, time.Second, now)
	b.Update("map", "base_link", geometry.Pose{}, now)

	// Both frames exist, but only the forward edge was ever published.
	_, err := b.Lookup("base_link", "map", time.Time{})
	assert.True(t, errors.Is(err, ErrNoPath), "got %v", err)
}

func TestBufferStale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := fixedBuffer(t, 500*time.Millisecond, now)
	b.Update("map", "base_link", geometry.Pose{}, now.Add(-time.Minute))

	_, err := b.Lookup("map", "base_link", time.Time{})
	assert.True(t, errors.Is(err, ErrStaleTransform), "got %v", err)
}

func TestBufferUpdateReplaces(t *testing.T) {
	now := time.Now()
	b := fixedBuffer(t, time.Second, now)

	b.Update("map", "base_link", geometry.Pose{Position: geometry.Vector3{X: 1}}, now.Add(-time.Hour))
	b.Update("map", "base_link", geometry.Pose{Position: geometry.Vector3{X: 2}}, now)

	got, err := b.Lookup("map", "base_link", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Position.X)
}
