package common

import "math"

// Vec3Add returns the componentwise sum of two vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a + b
func Vec3Add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Vec3Sub returns the componentwise difference of two vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a - b
func Vec3Sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Vec3Scale returns the vector scaled by a scalar.
//
// Parameters:
//   - v: vector to scale
//   - s: scalar factor
//
// Returns:
//   - [3]float32: v * s
func Vec3Scale(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

// Vec3Dot returns the dot product of two vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - float32: a · b
func Vec3Dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Vec3Cross returns the cross product of two vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a × b
func Vec3Cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Vec3Length returns the Euclidean length of a vector.
//
// Parameters:
//   - v: vector to measure
//
// Returns:
//   - float32: |v|
func Vec3Length(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Vec3Normalize returns the unit vector in the direction of v. A vector with
// near-zero length normalizes to the zero vector rather than dividing by zero.
//
// Parameters:
//   - v: vector to normalize
//
// Returns:
//   - [3]float32: v / |v|, or the zero vector if |v| is near zero
func Vec3Normalize(v [3]float32) [3]float32 {
	length := Vec3Length(v)
	if length < 1e-8 {
		return [3]float32{}
	}
	inv := 1.0 / length
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

// QuatIdentity returns the identity quaternion (no rotation).
//
// Returns:
//   - [4]float32: the identity quaternion (0, 0, 0, 1)
func QuatIdentity() [4]float32 {
	return [4]float32{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a unit quaternion representing a rotation of angle
// radians around the given axis. The axis is expected to be unit length.
//
// Parameters:
//   - axis: rotation axis as a unit vector
//   - angle: rotation angle in radians
//
// Returns:
//   - [4]float32: the rotation quaternion (x, y, z, w)
func QuatFromAxisAngle(axis [3]float32, angle float32) [4]float32 {
	half := float64(angle) / 2.0
	s := float32(math.Sin(half))
	c := float32(math.Cos(half))
	return [4]float32{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// QuatNormalize returns the quaternion scaled to unit length. A quaternion
// with near-zero magnitude normalizes to the identity quaternion.
//
// Parameters:
//   - q: quaternion to normalize (x, y, z, w)
//
// Returns:
//   - [4]float32: q / |q|, or the identity quaternion if |q| is near zero
func QuatNormalize(q [4]float32) [4]float32 {
	length := float32(math.Sqrt(float64(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])))
	if length < 1e-8 {
		return QuatIdentity()
	}
	inv := 1.0 / length
	return [4]float32{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// QuatRotateVec3 rotates a vector by a unit quaternion.
// Uses the expansion v' = v + 2*cross(q.xyz, cross(q.xyz, v) + q.w*v),
// which avoids constructing the full rotation matrix.
//
// Parameters:
//   - q: unit rotation quaternion (x, y, z, w)
//   - v: vector to rotate
//
// Returns:
//   - [3]float32: the rotated vector
func QuatRotateVec3(q [4]float32, v [3]float32) [3]float32 {
	qv := [3]float32{q[0], q[1], q[2]}
	t := Vec3Cross(qv, Vec3Add(Vec3Cross(qv, v), Vec3Scale(v, q[3])))
	return Vec3Add(v, Vec3Scale(t, 2))
}
