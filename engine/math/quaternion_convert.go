package math

// Conversions between quaternions, matrices, axis-angle and euler angles.

/**
 * @brief Rotation matrix of the unit quaternion q.
 */
func QuaternionToMat3(q Quaternion) Mat3 {
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

	return Mat3{Data: [9]float32{
		1.0 - (yy + zz), xy + wz, xz - wy,
		xy - wz, 1.0 - (xx + zz), yz + wx,
		xz + wy, yz - wx, 1.0 - (xx + yy),
	}}
}

/**
 * @brief Rotation matrix of the unit quaternion q with no translation.
 */
func QuaternionToMat4(q Quaternion) Mat4 {
	return NewMat4FromMat3(QuaternionToMat3(q))
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	return QuaternionToMat4(q.NormalizeSafe())
}

func (q Quaternion) ToMat3() Mat3 {
	return QuaternionToMat3(q.NormalizeSafe())
}

/**
 * @brief Calculates a rotation matrix based on the quaternion and the passed in center point.
 *
 * @param center The center point.
 * @return A matrix rotating about center.
 */
func (q Quaternion) ToRotationMatrix(center Vec3) Mat4 {
	out_matrix := q.ToMat4()
	out_matrix.SetPosition(center.Sub(out_matrix.MultiplyVector3(center)))
	return out_matrix
}

/**
 * @brief Quaternion of a pure rotation matrix (Shoemake). The result is
 * normalized.
 */
func Mat3ToQuaternion(m Mat3) Quaternion {
	q := Quaternion{}
	trace := m.Get(0, 0) + m.Get(1, 1) + m.Get(2, 2)
	if trace > 0.0 {
		root := ksqrt(trace + 1.0) // 2w
		q.W = 0.5 * root
		root = 0.5 / root // 1/(4w)
		q.X = (m.Get(2, 1) - m.Get(1, 2)) * root
		q.Y = (m.Get(0, 2) - m.Get(2, 0)) * root
		q.Z = (m.Get(1, 0) - m.Get(0, 1)) * root
		return q.Normalize()
	}

	// Largest diagonal entry picks the component computed from the sqrt.
	next := [3]int{1, 2, 0}
	i := 0
	if m.Get(1, 1) > m.Get(0, 0) {
		i = 1
	}
	if m.Get(2, 2) > m.Get(i, i) {
		i = 2
	}
	j := next[i]
	k := next[j]

	var xyz [3]float32
	root := ksqrt(m.Get(i, i) - m.Get(j, j) - m.Get(k, k) + 1.0)
	xyz[i] = 0.5 * root
	root = 0.5 / root
	q.W = (m.Get(k, j) - m.Get(j, k)) * root
	xyz[j] = (m.Get(j, i) + m.Get(i, j)) * root
	xyz[k] = (m.Get(k, i) + m.Get(i, k)) * root
	q.X, q.Y, q.Z = xyz[0], xyz[1], xyz[2]
	return q.Normalize()
}

// Mat4ToQuaternion converts the upper-left 3x3 block, which must be a pure
// rotation. Use Mat4.GetRotation for scaled matrices.
func Mat4ToQuaternion(m Mat4) Quaternion {
	return Mat3ToQuaternion(NewMat3FromMat4(m))
}

/**
 * @brief Rotation of angle radians about the unit axis.
 */
func AxisAngleToQuaternion(axis Vec3, angle float32) Quaternion {
	halfAngle := angle * 0.5
	s := ksin(halfAngle)
	return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, kcos(halfAngle)}
}

/**
 * @brief Like AxisAngleToQuaternion but normalizes axis itself, returning
 * identity when it is shorter than 1e-6.
 */
func AxisAngleToQuaternionSafe(axis Vec3, angle float32) Quaternion {
	mag := axis.Length()
	if mag > 0.000001 {
		halfAngle := angle * 0.5
		s := ksin(halfAngle) / mag
		return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, kcos(halfAngle)}
	}
	return NewQuatIdentity()
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	q := AxisAngleToQuaternion(axis, angle)
	if normalize {
		q = q.NormalizeSafe()
	}
	return q
}

/**
 * @brief Splits a unit quaternion into a unit axis and an angle in
 * [0, 2PI]. When the angle is a multiple of 2PI the axis is undefined and
 * the x axis is reported.
 */
func (q Quaternion) ToAxisAngle() (Vec3, float32) {
	angle := 2.0 * kacos(Clamp(q.W, -1.0, 1.0))
	sinSqr := 1.0 - Sqr(q.W)
	if CompareApproximately(angle, 0.0) || sinSqr <= K_FLOAT_EPSILON {
		return NewVec3XAxis(), angle
	}
	div := 1.0 / ksqrt(sinSqr)
	return Vec3{q.X * div, q.Y * div, q.Z * div}, angle
}

// QuaternionToAxisAngle is q.ToAxisAngle().
func QuaternionToAxisAngle(q Quaternion) (Vec3, float32) {
	return q.ToAxisAngle()
}

/**
 * @brief Integrates the angular velocity (axis scaled by radians per
 * second) over deltaTime. A near-zero velocity gives identity.
 */
func AngularVelocityToQuaternion(velocity Vec3, deltaTime float32) Quaternion {
	w := velocity.Length()
	if w <= K_VEC_EPSILON {
		return NewQuatIdentity()
	}
	v := deltaTime * w * 0.5
	s := ksin(v) / w
	q := Quaternion{s * velocity.X, s * velocity.Y, s * velocity.Z, kcos(v)}
	return q.NormalizeSafe()
}

/**
 * @brief Smallest rotation taking the unit vector from onto the unit
 * vector to.
 */
func FromToQuaternion(from, to Vec3) Quaternion {
	m := Mat3{}
	m.SetFromToRotation(from, to)
	return Mat3ToQuaternion(m)
}

/**
 * @brief FromToQuaternion for vectors of any length. Identity when either
 * is near zero.
 */
func FromToQuaternionSafe(lhs, rhs Vec3) Quaternion {
	lhsMag := lhs.Length()
	rhsMag := rhs.Length()
	if lhsMag < K_VEC_EPSILON || rhsMag < K_VEC_EPSILON {
		return NewQuatIdentity()
	}
	return FromToQuaternion(lhs.DivScalar(lhsMag), rhs.DivScalar(rhsMag))
}

/**
 * @brief Right-handed rotation whose z axis points along view. Returns
 * identity and false in the cases LookRotationToMat3 rejects.
 */
func LookRotationToQuaternion(view, up Vec3) (Quaternion, bool) {
	m, ok := LookRotationToMat3(view, up)
	if !ok {
		return NewQuatIdentity(), false
	}
	return Mat3ToQuaternion(m), true
}

// gimbalThreshold is how close |sin| of the middle angle may get to 1
// before the first and last rotations are treated as one.
const gimbalThreshold float32 = 0.9999

/**
 * @brief Quaternion for euler angles in radians, rotations applied in
 * order (the first axis of the order first).
 */
func EulerToQuaternion(euler Vec3, order RotationOrder) Quaternion {
	a, b, c := order.axes()
	qa := AxisAngleToQuaternion(basisAxis(a), euler.Index(a))
	qb := AxisAngleToQuaternion(basisAxis(b), euler.Index(b))
	qc := AxisAngleToQuaternion(basisAxis(c), euler.Index(c))
	return qc.Mul(qb).Mul(qa)
}

/**
 * @brief Euler angles in radians that EulerToQuaternion maps back to q for
 * the same order. The middle angle lands in [-PI/2, PI/2]. At gimbal lock
 * the last angle is set to 0 and the first absorbs the rotation.
 */
func QuaternionToEuler(q Quaternion, order RotationOrder) Vec3 {
	m := QuaternionToMat3(q.NormalizeSafe())
	a, b, c := order.axes()

	// +1 when (a, b, c) is a cyclic permutation of (x, y, z).
	p := float32(-1.0)
	if b == (a+1)%3 {
		p = 1.0
	}

	sinB := Clamp(-p*m.Get(c, a), -1.0, 1.0)
	var ta, tb, tc float32
	tb = kasin(sinB)
	if kabs(sinB) < gimbalThreshold {
		ta = katan2(p*m.Get(c, b), m.Get(c, c))
		tc = katan2(p*m.Get(b, a), m.Get(a, a))
	} else {
		ta = katan2(-p*m.Get(b, c), m.Get(b, b))
		tc = 0.0
	}

	out := Vec3{}
	out.SetIndex(a, ta)
	out.SetIndex(b, tb)
	out.SetIndex(c, tc)
	return out
}

func basisAxis(i int) Vec3 {
	switch i {
	case 0:
		return NewVec3XAxis()
	case 1:
		return NewVec3YAxis()
	default:
		return NewVec3ZAxis()
	}
}
