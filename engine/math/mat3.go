package math

// ------------------------------------------
// Matrix 3x3
// ------------------------------------------
//
// Column-major. Get(row, col) reads Data[row+col*3], so the floats are laid
// out m00 m10 m20 m01 m11 m21 m02 m12 m22.

// NewMat3 builds a matrix from its entries given in row order.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Mat3 {
	return Mat3{Data: [9]float32{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}}
}

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat3Identity() Mat3 {
	m := Mat3{}
	m.Data[0] = 1.0
	m.Data[4] = 1.0
	m.Data[8] = 1.0
	return m
}

func NewMat3Zero() Mat3 {
	return Mat3{}
}

/**
 * @brief Extracts the upper-left 3x3 block of m. Translation and the
 * projective row are dropped.
 */
func NewMat3FromMat4(m Mat4) Mat3 {
	return Mat3{Data: [9]float32{
		m.Data[0], m.Data[1], m.Data[2],
		m.Data[4], m.Data[5], m.Data[6],
		m.Data[8], m.Data[9], m.Data[10],
	}}
}

/**
 * @brief Rotation of radians about the unit axis.
 */
func NewMat3AxisAngle(axis Vec3, radians float32) Mat3 {
	m := Mat3{}
	m.SetAxisAngle(axis, radians)
	return m
}

func (m Mat3) Get(row, col int) float32 {
	return m.Data[row+col*3]
}

func (m *Mat3) Set(row, col int, f float32) {
	m.Data[row+col*3] = f
}

// Ptr returns the address of the first of nine column-major floats.
func (m *Mat3) Ptr() *float32 {
	return &m.Data[0]
}

func (m Mat3) GetColumn(col int) Vec3 {
	return Vec3{m.Get(0, col), m.Get(1, col), m.Get(2, col)}
}

/**
 * @brief Returns m*other, so other is applied first.
 */
func (m Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for i := 0; i < 3; i++ {
		out.Data[i] = m.Data[i]*other.Data[0] + m.Data[i+3]*other.Data[1] + m.Data[i+6]*other.Data[2]
		out.Data[i+3] = m.Data[i]*other.Data[3] + m.Data[i+3]*other.Data[4] + m.Data[i+6]*other.Data[5]
		out.Data[i+6] = m.Data[i]*other.Data[6] + m.Data[i+3]*other.Data[7] + m.Data[i+6]*other.Data[8]
	}
	return out
}

/**
 * @brief Returns m times the upper-left 3x3 block of other.
 */
func (m Mat3) MulMat4(other Mat4) Mat3 {
	return m.Mul(NewMat3FromMat4(other))
}

func (m Mat3) MulScalar(f float32) Mat3 {
	for i := range m.Data {
		m.Data[i] *= f
	}
	return m
}

func (m Mat3) DivScalar(f float32) Mat3 {
	return m.MulScalar(1.0 / f)
}

func (m Mat3) MultiplyVector3(v Vec3) Vec3 {
	return Vec3{
		m.Data[0]*v.X + m.Data[3]*v.Y + m.Data[6]*v.Z,
		m.Data[1]*v.X + m.Data[4]*v.Y + m.Data[7]*v.Z,
		m.Data[2]*v.X + m.Data[5]*v.Y + m.Data[8]*v.Z,
	}
}

// MultiplyPoint3 is MultiplyVector3; a 3x3 carries no translation.
func (m Mat3) MultiplyPoint3(v Vec3) Vec3 {
	return m.MultiplyVector3(v)
}

// MultiplyVector3Transpose multiplies by the transpose without building it.
func (m Mat3) MultiplyVector3Transpose(v Vec3) Vec3 {
	return Vec3{
		m.Get(0, 0)*v.X + m.Get(1, 0)*v.Y + m.Get(2, 0)*v.Z,
		m.Get(0, 1)*v.X + m.Get(1, 1)*v.Y + m.Get(2, 1)*v.Z,
		m.Get(0, 2)*v.X + m.Get(1, 2)*v.Y + m.Get(2, 2)*v.Z,
	}
}

func (m Mat3) MultiplyPoint3Transpose(v Vec3) Vec3 {
	return m.MultiplyVector3Transpose(v)
}

/**
 * @brief Determinant by the rule of Sarrus.
 */
func (m Mat3) GetDeterminant() float32 {
	c0 := m.Get(0, 0) * m.Get(1, 1) * m.Get(2, 2)
	c1 := m.Get(0, 1) * m.Get(1, 2) * m.Get(2, 0)
	c2 := m.Get(0, 2) * m.Get(1, 0) * m.Get(2, 1)
	c3 := m.Get(0, 2) * m.Get(1, 1) * m.Get(2, 0)
	c4 := m.Get(0, 1) * m.Get(1, 0) * m.Get(2, 2)
	c5 := m.Get(0, 0) * m.Get(1, 2) * m.Get(2, 1)
	return c0 + c1 + c2 - c3 - c4 - c5
}

/**
 * @brief Transposes m in place.
 */
func (m *Mat3) Transpose() *Mat3 {
	m.Data[3], m.Data[1] = m.Data[1], m.Data[3]
	m.Data[6], m.Data[2] = m.Data[2], m.Data[6]
	m.Data[7], m.Data[5] = m.Data[5], m.Data[7]
	return m
}

/**
 * @brief Inverts m in place by embedding it in a 4x4 and running the full
 * Gauss-Jordan inverse. On false the contents of m are undefined.
 */
func (m *Mat3) Invert() bool {
	m4 := NewMat4FromMat3(*m)
	inv, ok := m4.InvertFull()
	*m = NewMat3FromMat4(inv)
	return ok
}

/**
 * @brief Replaces m with the transpose of its inverse, the matrix that
 * carries normals under m.
 */
func (m *Mat3) InvertTranspose() bool {
	ok := m.Invert()
	m.Transpose()
	return ok
}

func (m *Mat3) SetIdentity() *Mat3 {
	*m = NewMat3Identity()
	return m
}

func (m *Mat3) SetZero() *Mat3 {
	*m = Mat3{}
	return m
}

/**
 * @brief Writes x, y and z as the columns of m.
 */
func (m *Mat3) SetBasis(x, y, z Vec3) *Mat3 {
	m.Data = [9]float32{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
	return m
}

/**
 * @brief Writes x, y and z as the rows of m.
 */
func (m *Mat3) SetBasisTransposed(x, y, z Vec3) *Mat3 {
	m.Data = [9]float32{
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	}
	return m
}

/**
 * @brief Makes m a diagonal scale matrix.
 */
func (m *Mat3) SetScale(s Vec3) *Mat3 {
	*m = Mat3{}
	m.Data[0] = s.X
	m.Data[4] = s.Y
	m.Data[8] = s.Z
	return m
}

/**
 * @brief Scales the columns of m, i.e. m = m * diag(s).
 */
func (m *Mat3) Scale(s Vec3) *Mat3 {
	for row := 0; row < 3; row++ {
		m.Data[row] *= s.X
		m.Data[row+3] *= s.Y
		m.Data[row+6] *= s.Z
	}
	return m
}

/**
 * @brief Reports whether every entry is within threshold of identity.
 */
func (m Mat3) IsIdentity(threshold float32) bool {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var want float32
			if row == col {
				want = 1.0
			}
			if !CompareApproximatelyEpsilon(m.Get(row, col), want, threshold) {
				return false
			}
		}
	}
	return true
}

/**
 * @brief Sets m to the rotation of radians about axis. The axis must be
 * unit length.
 */
func (m *Mat3) SetAxisAngle(axis Vec3, radians float32) *Mat3 {
	s := ksin(radians)
	c := kcos(radians)

	xx := axis.X * axis.X
	yy := axis.Y * axis.Y
	zz := axis.Z * axis.Z
	xy := axis.X * axis.Y
	yz := axis.Y * axis.Z
	zx := axis.Z * axis.X
	xs := axis.X * s
	ys := axis.Y * s
	zs := axis.Z * s
	oneC := 1.0 - c

	m.Data = [9]float32{
		oneC*xx + c, oneC*xy + zs, oneC*zx - ys,
		oneC*xy - zs, oneC*yy + c, oneC*yz + xs,
		oneC*zx + ys, oneC*yz - xs, oneC*zz + c,
	}
	return m
}

const fromToEpsilon float32 = 0.000001

/**
 * @brief Sets m to the smallest rotation taking the unit vector from onto
 * the unit vector to (Möller and Hughes).
 *
 * Nearly parallel vectors give identity. Nearly opposite vectors go through
 * an explicit basis (from, up, left) and the reflection N*M^T, since the
 * general formula divides by |from x to|^2.
 */
func (m *Mat3) SetFromToRotation(from, to Vec3) *Mat3 {
	v := from.Cross(to)
	e := from.Dot(to)

	switch {
	case e > 1.0-fromToEpsilon:
		m.SetIdentity()
	case e < -1.0+fromToEpsilon:
		// left = from x (1,0,0), or from x (0,1,0) when that is too short
		left := Vec3{0.0, from.Z, -from.Y}
		if left.Dot(left) < fromToEpsilon {
			left = Vec3{-from.Z, 0.0, from.X}
		}
		left = left.MulScalar(1.0 / ksqrt(left.Dot(left)))
		up := left.Cross(from)

		fxx, fyy, fzz := -from.X*from.X, -from.Y*from.Y, -from.Z*from.Z
		fxy, fxz, fyz := -from.X*from.Y, -from.X*from.Z, -from.Y*from.Z
		uxx, uyy, uzz := up.X*up.X, up.Y*up.Y, up.Z*up.Z
		uxy, uxz, uyz := up.X*up.Y, up.X*up.Z, up.Y*up.Z
		lxx, lyy, lzz := -left.X*left.X, -left.Y*left.Y, -left.Z*left.Z
		lxy, lxz, lyz := -left.X*left.Y, -left.X*left.Z, -left.Y*left.Z

		// symmetric
		m00 := fxx + uxx + lxx
		m01 := fxy + uxy + lxy
		m02 := fxz + uxz + lxz
		m11 := fyy + uyy + lyy
		m12 := fyz + uyz + lyz
		m22 := fzz + uzz + lzz
		*m = NewMat3(
			m00, m01, m02,
			m01, m11, m12,
			m02, m12, m22,
		)
	default:
		h := (1.0 - e) / v.Dot(v)
		hvx := h * v.X
		hvz := h * v.Z
		hvxy := hvx * v.Y
		hvxz := hvx * v.Z
		hvyz := hvz * v.Y
		*m = NewMat3(
			e+hvx*v.X, hvxy-v.Z, hvxz+v.Y,
			hvxy+v.Z, e+h*v.Y*v.Y, hvyz-v.X,
			hvxz-v.Y, hvyz+v.X, e+hvz*v.Z,
		)
	}
	return m
}

/**
 * @brief Builds a right-handed orthonormal basis whose z column points
 * along view and whose y column leans towards up.
 *
 * Returns identity and false when view is near zero, view is parallel to
 * up, or the resulting y is not unit length.
 */
func LookRotationToMat3(view, up Vec3) (Mat3, bool) {
	z := view
	mag := z.Length()
	if mag < K_VEC_EPSILON {
		return NewMat3Identity(), false
	}
	z = z.DivScalar(mag)

	x := up.Cross(z)
	mag = x.Length()
	if mag < K_VEC_EPSILON {
		return NewMat3Identity(), false
	}
	x = x.DivScalar(mag)

	y := z.Cross(x)
	if !CompareApproximately(y.LengthSquared(), 1.0) {
		return NewMat3Identity(), false
	}

	m := Mat3{}
	m.SetBasis(x, y, z)
	return m, true
}

/**
 * @brief Rotation matrix for euler angles (radians) applied in order.
 */
func EulerToMat3(euler Vec3, order RotationOrder) Mat3 {
	if order == RotationOrderZXY {
		return eulerToMat3ZXY(euler)
	}
	a, b, c := order.axes()
	ra := axisRotation(a, euler.Index(a))
	rb := axisRotation(b, euler.Index(b))
	rc := axisRotation(c, euler.Index(c))
	return rc.Mul(rb).Mul(ra)
}

// eulerToMat3ZXY is Ry * Rx * Rz written out.
func eulerToMat3ZXY(v Vec3) Mat3 {
	cx, sx := kcos(v.X), ksin(v.X)
	cy, sy := kcos(v.Y), ksin(v.Y)
	cz, sz := kcos(v.Z), ksin(v.Z)
	return NewMat3(
		cy*cz+sx*sy*sz, cz*sx*sy-cy*sz, cx*sy,
		cx*sz, cx*cz, -sx,
		-cz*sy+cy*sx*sz, cy*cz*sx+sy*sz, cx*cy,
	)
}

func axisRotation(axis int, radians float32) Mat3 {
	switch axis {
	case 0:
		return NewMat3AxisAngle(NewVec3XAxis(), radians)
	case 1:
		return NewMat3AxisAngle(NewVec3YAxis(), radians)
	default:
		return NewMat3AxisAngle(NewVec3ZAxis(), radians)
	}
}

/**
 * @brief Runs OrthoNormalize3 over the columns of m.
 */
func OrthoNormalizeMat3(m *Mat3) {
	c0 := m.GetColumn(0)
	c1 := m.GetColumn(1)
	c2 := m.GetColumn(2)
	OrthoNormalize3(&c0, &c1, &c2)
	m.SetBasis(c0, c1, c2)
}
