package types

import "github.com/chewxy/math32"

// Quat is a rotation quaternion used to place object instances.
type Quat struct {
	V Vec3
	W float32
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{
		V: Vec3{},
		W: 1.0,
	}
}

// Create a quaternion from an axis vector and an angle in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return Quat{
		V: axis.Normalize().Mul(math32.Sin(angle * 0.5)),
		W: math32.Cos(angle * 0.5),
	}
}

// Create a quaternion from yaw (Y), pitch (X) and roll (Z) angles given in
// degrees. Rotations are applied in roll, pitch, yaw order.
func QuatFromYawPitchRoll(yaw, pitch, roll float32) Quat {
	const degToRad = math32.Pi / 180.0
	qYaw := QuatFromAxisAngle(Vec3{0, 1, 0}, yaw*degToRad)
	qPitch := QuatFromAxisAngle(Vec3{1, 0, 0}, pitch*degToRad)
	qRoll := QuatFromAxisAngle(Vec3{0, 0, 1}, roll*degToRad)
	return qYaw.Mul(qPitch).Mul(qRoll)
}

// Rotate a vector by the rotation this quaternion represents.
func (q Quat) Rotate(v Vec3) Vec3 {
	cross := q.V.Cross(v)
	// v + 2q_w * (q_v x v) + 2q_v x (q_v x v)
	return v.Add(cross.Mul(2 * q.W)).Add(q.V.Mul(2).Cross(cross))
}

// Multiply two quaternions. q.Mul(q2) applies q2 first and then q.
func (q Quat) Mul(q2 Quat) Quat {
	return Quat{
		q.V.Cross(q2.V).Add(q2.V.Mul(q.W)).Add(q.V.Mul(q2.W)),
		q.W*q2.W - q.V.Dot(q2.V),
	}
}
