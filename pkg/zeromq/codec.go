package zeromq

import (
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	msg "github.com/IhabMohamed/deep-motion-planning/pkg/flatbuffers/deep_motion_planning/msg"
	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
)

// The data-plane codecs below bridge flatbuffer wire types and the planner's
// domain types. Encoders reset the builder, so the returned slice is only
// valid until the builder's next use.

// EncodeLaserScan serializes a sensor frame.
func EncodeLaserScan(b *flatbuffers.Builder, f *scan.Frame) []byte {
	b.Reset()
	frameID := b.CreateString(f.FrameID)

	msg.LaserScanStartRangesVector(b, len(f.Ranges))
	for i := len(f.Ranges) - 1; i >= 0; i-- {
		b.PrependFloat64(f.Ranges[i])
	}
	ranges := b.EndVector(len(f.Ranges))

	msg.LaserScanStart(b)
	msg.LaserScanAddStampNs(b, f.Stamp.UnixNano())
	msg.LaserScanAddFrameId(b, frameID)
	msg.LaserScanAddAngleMin(b, f.AngleMin)
	msg.LaserScanAddAngleMax(b, f.AngleMax)
	msg.LaserScanAddAngleIncrement(b, f.AngleIncrement)
	msg.LaserScanAddRangeMin(b, f.RangeMin)
	msg.LaserScanAddRangeMax(b, f.RangeMax)
	msg.LaserScanAddRanges(b, ranges)
	b.Finish(msg.LaserScanEnd(b))
	return b.FinishedBytes()
}

// DecodeLaserScan deserializes a sensor frame. The returned frame owns its
// ranges slice; nothing references the wire buffer afterwards.
func DecodeLaserScan(data []byte) *scan.Frame {
	ls := msg.GetRootAsLaserScan(data, 0)

	ranges := make([]float64, ls.RangesLength())
	for i := range ranges {
		ranges[i] = ls.Ranges(i)
	}

	return &scan.Frame{
		Stamp:          time.Unix(0, ls.StampNs()),
		FrameID:        string(ls.FrameId()),
		AngleMin:       ls.AngleMin(),
		AngleMax:       ls.AngleMax(),
		AngleIncrement: ls.AngleIncrement(),
		RangeMin:       ls.RangeMin(),
		RangeMax:       ls.RangeMax(),
		Ranges:         ranges,
	}
}

// EncodeTransformStamped serializes one parent→child transform sample.
func EncodeTransformStamped(b *flatbuffers.Builder, parent, child string, pose geometry.Pose, stamp time.Time) []byte {
	b.Reset()
	parentOff := b.CreateString(parent)
	childOff := b.CreateString(child)

	msg.TransformStampedStart(b)
	msg.TransformStampedAddStampNs(b, stamp.UnixNano())
	msg.TransformStampedAddFrameId(b, parentOff)
	msg.TransformStampedAddChildFrameId(b, childOff)
	msg.TransformStampedAddX(b, pose.Position.X)
	msg.TransformStampedAddY(b, pose.Position.Y)
	msg.TransformStampedAddZ(b, pose.Position.Z)
	msg.TransformStampedAddQx(b, pose.Orientation.X)
	msg.TransformStampedAddQy(b, pose.Orientation.Y)
	msg.TransformStampedAddQz(b, pose.Orientation.Z)
	msg.TransformStampedAddQw(b, pose.Orientation.W)
	b.Finish(msg.TransformStampedEnd(b))
	return b.FinishedBytes()
}

// DecodeTransformStamped deserializes one transform sample.
func DecodeTransformStamped(data []byte) (parent, child string, pose geometry.Pose, stamp time.Time) {
	tf := msg.GetRootAsTransformStamped(data, 0)

	pose = geometry.Pose{
		Position: geometry.Vector3{X: tf.X(), Y: tf.Y(), Z: tf.Z()},
		Orientation: geometry.Quaternion{
			X: tf.Qx(), Y: tf.Qy(), Z: tf.Qz(), W: tf.Qw(),
		},
	}
	return string(tf.FrameId()), string(tf.ChildFrameId()), pose, time.Unix(0, tf.StampNs())
}

// EncodePoseStamped serializes a pose in a named frame.
func EncodePoseStamped(b *flatbuffers.Builder, frameID string, pose geometry.Pose, stamp time.Time) []byte {
	b.Reset()
	frameOff := b.CreateString(frameID)

	msg.PoseStampedStart(b)
	msg.PoseStampedAddStampNs(b, stamp.UnixNano())
	msg.PoseStampedAddFrameId(b, frameOff)
	msg.PoseStampedAddX(b, pose.Position.X)
	msg.PoseStampedAddY(b, pose.Position.Y)
	msg.PoseStampedAddZ(b, pose.Position.Z)
	msg.PoseStampedAddQx(b, pose.Orientation.X)
	msg.PoseStampedAddQy(b, pose.Orientation.Y)
	msg.PoseStampedAddQz(b, pose.Orientation.Z)
	msg.PoseStampedAddQw(b, pose.Orientation.W)
	b.Finish(msg.PoseStampedEnd(b))
	return b.FinishedBytes()
}

// DecodePoseStamped deserializes a pose in a named frame.
func DecodePoseStamped(data []byte) (frameID string, pose geometry.Pose, stamp time.Time) {
	ps := msg.GetRootAsPoseStamped(data, 0)

	pose = geometry.Pose{
		Position: geometry.Vector3{X: ps.X(), Y: ps.Y(), Z: ps.Z()},
		Orientation: geometry.Quaternion{
			X: ps.Qx(), Y: ps.Qy(), Z: ps.Qz(), W: ps.Qw(),
		},
	}
	return string(ps.FrameId()), pose, time.Unix(0, ps.StampNs())
}

// EncodeTwist serializes a velocity command.
func EncodeTwist(b *flatbuffers.Builder, t geometry.Twist) []byte {
	b.Reset()

	msg.TwistStart(b)
	msg.TwistAddLinearX(b, t.Linear.X)
	msg.TwistAddLinearY(b, t.Linear.Y)
	msg.TwistAddLinearZ(b, t.Linear.Z)
	msg.TwistAddAngularX(b, t.Angular.X)
	msg.TwistAddAngularY(b, t.Angular.Y)
	msg.TwistAddAngularZ(b, t.Angular.Z)
	b.Finish(msg.TwistEnd(b))
	return b.FinishedBytes()
}

// DecodeTwist deserializes a velocity command.
func DecodeTwist(data []byte) geometry.Twist {
	tw := msg.GetRootAsTwist(data, 0)

	return geometry.Twist{
		Linear:  geometry.Vector3{X: tw.LinearX(), Y: tw.LinearY(), Z: tw.LinearZ()},
		Angular: geometry.Vector3{X: tw.AngularX(), Y: tw.AngularY(), Z: tw.AngularZ()},
	}
}
