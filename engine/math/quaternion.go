package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// Ptr returns the address of x; x, y, z, w are contiguous.
func (q *Quaternion) Ptr() *float32 {
	return &q.X
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion) MulScalar(s float32) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quaternion) DivScalar(s float32) Quaternion {
	return Quaternion{q.X / s, q.Y / s, q.Z / s, q.W / s}
}

/**
 * @brief Hamilton product q*other. Rotating by the result applies other
 * first and q second, the same order as Mat4.Mul.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		Z: q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

func (q Quaternion) SqrMagnitude() float32 {
	return q.Dot(q)
}

func (q Quaternion) Magnitude() float32 {
	return ksqrt(q.SqrMagnitude())
}

func (q Quaternion) IsFinite() bool {
	return kisfinite(q.X) && kisfinite(q.Y) && kisfinite(q.Z) && kisfinite(q.W)
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * the x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the conjugate. This is the inverse only for unit
 * quaternions; a non-unit input gets an inverse scaled by its squared
 * magnitude.
 *
 * @return The inverse of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate()
}

/**
 * @brief Divides by the magnitude without any check. The zero quaternion
 * yields NaN.
 */
func (q Quaternion) Normalize() Quaternion {
	return q.DivScalar(q.Magnitude())
}

/**
 * @brief Normalizes q, or returns identity when its magnitude is below
 * K_VEC_EPSILON.
 */
func (q Quaternion) NormalizeSafe() Quaternion {
	mag := q.Magnitude()
	if mag < K_VEC_EPSILON {
		return NewQuatIdentity()
	}
	return q.DivScalar(mag)
}

/**
 * @brief Normalizes through FastInvSqrt. Below K_VEC_EPSILON squared
 * magnitude the all-zero quaternion is returned, not identity, so callers
 * can tell that no rotation survived.
 */
func (q Quaternion) NormalizeFastEpsilonZero() Quaternion {
	m := q.SqrMagnitude()
	if m < K_VEC_EPSILON {
		return Quaternion{}
	}
	return q.MulScalar(FastInvSqrt(m))
}

/**
 * @brief Like NormalizeSafe, but returns q untouched when its magnitude is
 * already within K_VEC_EPSILON of 1 so no rounding noise is added.
 */
func (q Quaternion) NormalizeSafeIfUnnormalized() Quaternion {
	mag := q.Magnitude()
	if mag < K_VEC_EPSILON {
		return NewQuatIdentity()
	}
	if kabs(mag-1.0) < K_VEC_EPSILON {
		return q
	}
	return q.DivScalar(mag)
}

/**
 * @brief Reports whether q and other are within epsilon of each other,
 * treating q and -q as the same rotation.
 */
func (q Quaternion) CompareApproximately(other Quaternion, epsilon float32) bool {
	eps2 := epsilon * epsilon
	return q.Sub(other).SqrMagnitude() <= eps2 || q.Add(other).SqrMagnitude() <= eps2
}

/**
 * @brief Component-wise lerp along the shorter arc, then normalized.
 * When q and other lie in opposite hemispheres other is negated first.
 */
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	if q.Dot(other) < 0.0 {
		other = other.Negate()
	}
	tmp := Quaternion{
		q.X + t*(other.X-q.X),
		q.Y + t*(other.Y-q.Y),
		q.Z + t*(other.Z-q.Z),
		q.W + t*(other.W-q.W),
	}
	return tmp.Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; take the short way round.
	if dot < 0.0 {
		v1 = v1.Negate()
		dot = -dot
	}

	const DOT_THRESHOLD = float32(0.9995)
	if dot > DOT_THRESHOLD {
		// Too close for acos to be accurate.
		qt := Quaternion{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}
		return qt.Normalize()
	}

	theta_0 := kacos(dot)         // angle between input vectors
	theta := theta_0 * percentage // angle between v0 and result
	sin_theta := ksin(theta)
	sin_theta_0 := ksin(theta_0)

	s0 := kcos(theta) - dot*sin_theta/sin_theta_0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

/**
 * @brief Angle in radians of the rotation taking q to other.
 */
func (q Quaternion) AngularDistance(other Quaternion) float32 {
	dot := kabs(q.Dot(other))
	return kacos(Min(1.0, dot)) * 2.0
}

/**
 * @brief Rotates v by q using the expanded sandwich product. Agrees with
 * QuaternionToMat3(q).MultiplyVector3(v).
 */
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	x := q.X * 2.0
	y := q.Y * 2.0
	z := q.Z * 2.0
	xx := q.X * x
	yy := q.Y * y
	zz := q.Z * z
	xy := q.X * y
	xz := q.X * z
	yz := q.Y * z
	wx := q.W * x
	wy := q.W * y
	wz := q.W * z

	return Vec3{
		(1.0-(yy+zz))*v.X + (xy-wz)*v.Y + (xz+wy)*v.Z,
		(xy+wz)*v.X + (1.0-(xx+zz))*v.Y + (yz-wx)*v.Z,
		(xz-wy)*v.X + (yz+wx)*v.Y + (1.0-(xx+yy))*v.Z,
	}
}

// RotateVectorByQuat is q.RotateVector(v).
func RotateVectorByQuat(q Quaternion, v Vec3) Vec3 {
	return q.RotateVector(v)
}
