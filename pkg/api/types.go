package api

import (
	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
)

// GoalRequest is the JSON body for posting a navigation goal, over HTTP and
// over the goal WebSocket alike. Orientation may be given as a quaternion
// or, more conveniently, as a yaw angle; yaw wins when both are present.
// An omitted frame id defaults to the planner's reference frame.
type GoalRequest struct {
	FrameID     string              `json:"frame_id,omitempty"`
	Position    geometry.Vector3    `json:"position"`
	Orientation geometry.Quaternion `json:"orientation"`
	Yaw         *float64            `json:"yaw,omitempty"`
}

// ToGoal converts the request into a lifecycle goal.
func (r GoalRequest) ToGoal(defaultFrame string) goal.Goal {
	frame := r.FrameID
	if frame == "" {
		frame = defaultFrame
	}

	orientation := r.Orientation
	if r.Yaw != nil {
		orientation = geometry.QuaternionFromYaw(*r.Yaw)
	}

	return goal.Goal{
		FrameID: frame,
		Pose: geometry.Pose{
			Position:    r.Position,
			Orientation: orientation,
		},
	}
}

// CancelRequest is the optional JSON body for cancelling the active goal.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}
