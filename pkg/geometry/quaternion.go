package geometry

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an orientation in (x, y, z, w) component order, the order
// used on the wire and by the upstream robot stack.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityQuaternion returns the no-rotation orientation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromYaw builds the orientation for a pure rotation about the
// vertical axis.
func QuaternionFromYaw(yaw float64) Quaternion {
	return Quaternion{Z: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
}

// IsZero reports whether all four components are zero. Zero quaternions show
// up in wire messages whose orientation was never filled in; callers
// normalize them to identity before doing math.
func (q Quaternion) IsZero() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// OrIdentity returns the quaternion itself, or identity when it is all-zero.
func (q Quaternion) OrIdentity() Quaternion {
	if q.IsZero() {
		return IdentityQuaternion()
	}
	return q
}

// Yaw extracts the rotation about the vertical axis using the standard
// z-axis Euler formula.
func (q Quaternion) Yaw() float64 {
	return math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
}

// number maps the wire component order onto gonum's Hamilton layout.
func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// RotateIntoFrame rotates the planar vector (x, y) from the reference frame
// into the frame whose orientation is q, via the conjugate sandwich
// q^-1 * (x,y,0,0) * q with the vector treated as a pure quaternion.
func (q Quaternion) RotateIntoFrame(x, y float64) (float64, float64) {
	p := q.number()
	v := quat.Number{Imag: x, Jmag: y}
	r := quat.Mul(quat.Inv(p), quat.Mul(v, p))
	return r.Imag, r.Jmag
}

// RelativeYaw returns the yaw of the rotation carrying q onto the goal
// orientation, i.e. the heading error goal * q^-1.
func (q Quaternion) RelativeYaw(goal Quaternion) float64 {
	err := quat.Mul(goal.number(), quat.Inv(q.number()))
	return fromNumber(err).Yaw()
}
