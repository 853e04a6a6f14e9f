package zeromq

import (
	"testing"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/go-cmp/cmp"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
)

func TestLaserScanRoundTrip(t *testing.T) {
	in := &scan.Frame{
		Stamp:          time.Unix(12, 345678000),
		FrameID:        "laser",
		AngleMin:       -2.356,
		AngleMax:       2.356,
		AngleIncrement: 0.004363,
		RangeMin:       0.05,
		RangeMax:       30,
		Ranges:         []float64{0.5, 1.25, 2.0, 29.9},
	}

	b := flatbuffers.NewBuilder(1024)
	out := DecodeLaserScan(EncodeLaserScan(b, in))

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("laser scan round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformStampedRoundTrip(t *testing.T) {
	pose := geometry.Pose{
		Position:    geometry.Vector3{X: 1.5, Y: -2.25, Z: 0.1},
		Orientation: geometry.QuaternionFromYaw(0.75),
	}
	stamp := time.Unix(99, 1000)

	b := flatbuffers.NewBuilder(1024)
	payload := EncodeTransformStamped(b, "map", "base_link", pose, stamp)
	parent, child, gotPose, gotStamp := DecodeTransformStamped(payload)

	if parent != "map" || child != "base_link" {
		t.Errorf("frames = %q -> %q, want map -> base_link", parent, child)
	}
	if !gotStamp.Equal(stamp) {
		t.Errorf("stamp = %v, want %v", gotStamp, stamp)
	}
	if diff := cmp.Diff(pose, gotPose); diff != "" {
		t.Errorf("pose round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTwistRoundTrip(t *testing.T) {
	in := geometry.Command(0.35, -0.8)

	b := flatbuffers.NewBuilder(256)
	out := DecodeTwist(EncodeTwist(b, in))

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("twist round trip mismatch (-want +got):\n%s", diff)
	}
}
