// Package geometry holds the planar pose, orientation and velocity types
// shared by the planner core and its bus adapters, plus the quaternion
// math used to re-express goals in the robot frame.
package geometry

// Vector3 represents a 3D vector
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Twist mirrors a geometry_msgs/Twist velocity command. The planner drives a
// differential base and only populates Linear.X and Angular.Z.
type Twist struct {
	Linear  Vector3 `json:"linear"`
	Angular Vector3 `json:"angular"`
}

// Command builds the planner's two-component velocity command.
func Command(linear, angular float64) Twist {
	return Twist{
		Linear:  Vector3{X: linear},
		Angular: Vector3{Z: angular},
	}
}

// Pose is a position plus orientation in some named reference frame.
type Pose struct {
	Position    Vector3    `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// RelativeTarget is a goal pose re-expressed in the robot's own frame:
// forward offset, lateral offset and heading error. Derived every tick,
// never stored.
type RelativeTarget struct {
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	DYaw float64 `json:"dyaw"`
}
