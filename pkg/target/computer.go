// Package target re-expresses an accepted goal pose in the robot's own
// frame. The pure kernel is Relative; Computer binds it to a transform
// source and a pose observer for feedback.
package target

import (
	"time"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/transform"
)

// Relative returns the goal pose expressed in the robot frame: forward
// offset, lateral offset and heading error. The planar difference is rotated
// by the inverse of the robot orientation; the lateral axis is negated to
// match the handedness the policy was trained with.
func Relative(robot, goal geometry.Pose) geometry.RelativeTarget {
	dx := goal.Position.X - robot.Position.X
	dy := goal.Position.Y - robot.Position.Y

	fx, fy := robot.Orientation.RotateIntoFrame(dx, dy)

	return geometry.RelativeTarget{
		DX:   fx,
		DY:   -fy,
		DYaw: robot.Orientation.RelativeYaw(goal.Orientation),
	}
}

// PoseObserver receives the robot pose snapshot taken for each successful
// computation. Informational only; errors in the observer are its own
// problem.
type PoseObserver func(pose geometry.Pose)

// Computer resolves the robot pose through a transform source and derives
// the relative target for the current goal. One Computer serves one
// reference/robot frame pair.
type Computer struct {
	source    transform.Source
	reference string
	robot     string
	observer  PoseObserver
	logger    log.Logger
}

// NewComputer creates a computer resolving the robot frame within the
// reference frame.
func NewComputer(source transform.Source, reference, robot string, logger log.Logger) *Computer {
	return &Computer{
		source:    source,
		reference: reference,
		robot:     robot,
		logger:    logger,
	}
}

// SetPoseObserver installs the side channel receiving the robot pose each
// time a target is computed. Must be set before the control loop starts.
func (c *Computer) SetPoseObserver(o PoseObserver) {
	c.observer = o
}

// Compute derives the relative target for goalPose using the latest robot
// pose. A failed transform lookup is reported as absence, never an error:
// the caller skips the cycle and tries again on the next one. On success the
// robot pose snapshot is passed to the observer.
func (c *Computer) Compute(goalPose geometry.Pose) (geometry.RelativeTarget, bool) {
	// Zero time asks the source for the most recent transform.
	robot, err := c.source.Lookup(c.reference, c.robot, time.Time{})
	if err != nil {
		c.logger.Debugf("robot pose unavailable (%s -> %s): %v", c.reference, c.robot, err)
		return geometry.RelativeTarget{}, false
	}

	rel := Relative(robot, goalPose)

	if c.observer != nil {
		c.observer(robot)
	}
	return rel, true
}
