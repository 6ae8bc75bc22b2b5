package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := math.Sincos(float64(angle) / 2)
	return Quat{
		X: axis.X * float32(s),
		Y: axis.Y * float32(s),
		Z: axis.Z * float32(s),
		W: float32(c),
	}
}

// QuatRotationX returns a rotation of angle radians about the X axis.
func QuatRotationX(angle float32) Quat {
	return QuatFromAxisAngle(UnitX, angle)
}

// QuatRotationY returns a rotation of angle radians about the Y axis.
func QuatRotationY(angle float32) Quat {
	return QuatFromAxisAngle(UnitY, angle)
}

// QuatRotationZ returns a rotation of angle radians about the Z axis.
func QuatRotationZ(angle float32) Quat {
	return QuatFromAxisAngle(UnitZ, angle)
}

// QuatFromEulerXYZ composes intrinsic X, then Y, then Z rotations:
// Rx(x) * Ry(y) * Rz(z). Each later rotation is about the body axis left
// by the previous one.
func QuatFromEulerXYZ(x, y, z float32) Quat {
	return QuatRotationX(x).Mul(QuatRotationY(y)).Mul(QuatRotationZ(z))
}

// Mul multiplies two quaternions (combines rotations).
// q.Mul(other) applies other first in q's local frame.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// RotateLocalX rotates q by angle radians about its own X axis.
func (q Quat) RotateLocalX(angle float32) Quat {
	return q.Mul(QuatRotationX(angle))
}

// RotateLocalY rotates q by angle radians about its own Y axis.
func (q Quat) RotateLocalY(angle float32) Quat {
	return q.Mul(QuatRotationY(angle))
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the quaternion norm.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ApproxEqual reports whether all four components differ by at most eps.
func (q Quat) ApproxEqual(other Quat, eps float32) bool {
	return near(q.X, other.X, eps) && near(q.Y, other.Y, eps) &&
		near(q.Z, other.Z, eps) && near(q.W, other.W, eps)
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
