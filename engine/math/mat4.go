package math

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------
//
// Column-major. Get(row, col) reads Data[row+col*4]; the translation lives
// in Data[12], Data[13], Data[14].

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

func NewMat4Zero() Mat4 {
	return Mat4{}
}

/**
 * @brief Creates a matrix from 16 column-major floats.
 */
func NewMat4FromSlice(data []float32) Mat4 {
	m := Mat4{}
	copy(m.Data[:], data[:16])
	return m
}

/**
 * @brief Embeds m in the upper-left block of an identity matrix.
 */
func NewMat4FromMat3(m Mat3) Mat4 {
	return Mat4{Data: [16]float32{
		m.Data[0], m.Data[1], m.Data[2], 0,
		m.Data[3], m.Data[4], m.Data[5], 0,
		m.Data[6], m.Data[7], m.Data[8], 0,
		0, 0, 0, 1,
	}}
}

func (mt Mat4) Get(row, col int) float32 {
	return mt.Data[row+col*4]
}

func (mt *Mat4) Set(row, col int, f float32) {
	mt.Data[row+col*4] = f
}

/**
 * @brief Returns the address of the 16 column-major floats, ready for a
 * uniform upload.
 */
func (mt *Mat4) Ptr() *float32 {
	return &mt.Data[0]
}

/**
 * @brief Returns the result of multiplying mt and other. other is applied
 * first when the product transforms a point.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row+i*4] * other.Data[i+col*4]
			}
			out_matrix.Data[row+col*4] = sum
		}
	}
	return out_matrix
}

// MultiplyMatrices3x4 multiplies two affine matrices, skipping the bottom
// row which is taken to be (0, 0, 0, 1) in both.
func MultiplyMatrices3x4(lhs, rhs Mat4) Mat4 {
	res := Mat4{}
	l := &lhs.Data
	r := &rhs.Data
	for row := 0; row < 3; row++ {
		res.Data[row] = l[row]*r[0] + l[row+4]*r[1] + l[row+8]*r[2]
		res.Data[row+4] = l[row]*r[4] + l[row+4]*r[5] + l[row+8]*r[6]
		res.Data[row+8] = l[row]*r[8] + l[row+4]*r[9] + l[row+8]*r[10]
		res.Data[row+12] = l[row]*r[12] + l[row+4]*r[13] + l[row+8]*r[14] + l[row+12]
	}
	res.Data[15] = 1.0
	return res
}

// MultiplyMatrixArray4x4 computes res[i] = a[i] * b[i] for every i in res.
func MultiplyMatrixArray4x4(a, b, res []Mat4) {
	for i := range res {
		res[i] = a[i].Mul(b[i])
	}
}

// MultiplyMatrixArrayWithBase4x4 computes res[i] = base * a[i] * b[i].
func MultiplyMatrixArrayWithBase4x4(base Mat4, a, b, res []Mat4) {
	for i := range res {
		res[i] = base.Mul(a[i].Mul(b[i]))
	}
}

/**
 * @brief Applies rotation, scale and translation to the point v. The
 * projective row is ignored.
 */
func (mt Mat4) MultiplyPoint3(v Vec3) Vec3 {
	m := &mt.Data
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

/**
 * @brief Applies rotation and scale to the direction v.
 */
func (mt Mat4) MultiplyVector3(v Vec3) Vec3 {
	m := &mt.Data
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

func (mt Mat4) MultiplyVector4(v Vec4) Vec4 {
	m := &mt.Data
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

/**
 * @brief Transforms the point v including the w row and divides by w.
 *
 * When |w| is not above K_PERSPECTIVE_W_EPSILON the point maps to infinity;
 * the zero vector and false are returned instead.
 */
func (mt Mat4) PerspectiveMultiplyPoint3(v Vec3) (Vec3, bool) {
	m := &mt.Data
	res := mt.MultiplyPoint3(v)
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if kabs(w) > K_PERSPECTIVE_W_EPSILON {
		invW := 1.0 / w
		return res.MulScalar(invW), true
	}
	return Vec3{}, false
}

/**
 * @brief Like PerspectiveMultiplyPoint3 for a direction: no translation and
 * no m33 term in w.
 */
func (mt Mat4) PerspectiveMultiplyVector3(v Vec3) (Vec3, bool) {
	m := &mt.Data
	res := mt.MultiplyVector3(v)
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z
	if kabs(w) > K_PERSPECTIVE_W_EPSILON {
		invW := 1.0 / w
		return res.MulScalar(invW), true
	}
	return Vec3{}, false
}

/**
 * @brief Maps the point v back through mt, assuming mt is a rotation plus
 * translation (orthonormal 3x3 block).
 */
func (mt Mat4) InverseMultiplyPoint3Affine(v Vec3) Vec3 {
	p := v.Sub(mt.GetPosition())
	return Vec3{
		mt.Get(0, 0)*p.X + mt.Get(1, 0)*p.Y + mt.Get(2, 0)*p.Z,
		mt.Get(0, 1)*p.X + mt.Get(1, 1)*p.Y + mt.Get(2, 1)*p.Z,
		mt.Get(0, 2)*p.X + mt.Get(1, 2)*p.Y + mt.Get(2, 2)*p.Z,
	}
}

// InverseMultiplyVector3Affine is the direction variant of
// InverseMultiplyPoint3Affine.
func (mt Mat4) InverseMultiplyVector3Affine(v Vec3) Vec3 {
	return Vec3{
		mt.Get(0, 0)*v.X + mt.Get(1, 0)*v.Y + mt.Get(2, 0)*v.Z,
		mt.Get(0, 1)*v.X + mt.Get(1, 1)*v.Y + mt.Get(2, 1)*v.Z,
		mt.Get(0, 2)*v.X + mt.Get(1, 2)*v.Y + mt.Get(2, 2)*v.Z,
	}
}

/**
 * @brief Reports whether the last row differs from (0, 0, 0, 1), i.e.
 * whether the matrix carries a projection.
 */
func (mt Mat4) IsPerspective() bool {
	return mt.Data[3] != 0.0 || mt.Data[7] != 0.0 || mt.Data[11] != 0.0 || mt.Data[15] != 1.0
}

func (mt Mat4) IsIdentity(epsilon float32) bool {
	return mt.CompareApproximately(NewMat4Identity(), epsilon)
}

/**
 * @brief Reports whether every entry of mt is within dist of other's.
 */
func (mt Mat4) CompareApproximately(other Mat4, dist float32) bool {
	for i := range mt.Data {
		if !CompareApproximatelyEpsilon(mt.Data[i], other.Data[i], dist) {
			return false
		}
	}
	return true
}

/**
 * @brief Determinant by cofactor expansion, accumulated in float64.
 */
func (mt Mat4) GetDeterminant() float32 {
	var a [16]float64
	for i, f := range mt.Data {
		a[i] = float64(f)
	}
	g := func(r, c int) float64 { return a[r+c*4] }

	// 2x2 minors of the bottom two rows
	s0 := g(2, 0)*g(3, 1) - g(2, 1)*g(3, 0)
	s1 := g(2, 0)*g(3, 2) - g(2, 2)*g(3, 0)
	s2 := g(2, 0)*g(3, 3) - g(2, 3)*g(3, 0)
	s3 := g(2, 1)*g(3, 2) - g(2, 2)*g(3, 1)
	s4 := g(2, 1)*g(3, 3) - g(2, 3)*g(3, 1)
	s5 := g(2, 2)*g(3, 3) - g(2, 3)*g(3, 2)

	// 2x2 minors of the top two rows
	c0 := g(0, 0)*g(1, 1) - g(0, 1)*g(1, 0)
	c1 := g(0, 0)*g(1, 2) - g(0, 2)*g(1, 0)
	c2 := g(0, 0)*g(1, 3) - g(0, 3)*g(1, 0)
	c3 := g(0, 1)*g(1, 2) - g(0, 2)*g(1, 1)
	c4 := g(0, 1)*g(1, 3) - g(0, 3)*g(1, 1)
	c5 := g(0, 2)*g(1, 3) - g(0, 3)*g(1, 2)

	return float32(c0*s5 - c1*s4 + c2*s3 + c3*s2 - c4*s1 + c5*s0)
}

/**
 * @brief Transposes mt in place.
 */
func (mt *Mat4) Transpose() *Mat4 {
	for row := 0; row < 4; row++ {
		for col := row + 1; col < 4; col++ {
			a, b := row+col*4, col+row*4
			mt.Data[a], mt.Data[b] = mt.Data[b], mt.Data[a]
		}
	}
	return mt
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @param matrix The matrix to be transposed.
 * @return A transposed copy of of the provided matrix.
 */
func NewMat4Transposed(matrix Mat4) Mat4 {
	matrix.Transpose()
	return matrix
}

func (mt *Mat4) SetIdentity() *Mat4 {
	*mt = NewMat4Identity()
	return mt
}

func (mt *Mat4) SetZero() *Mat4 {
	*mt = Mat4{}
	return mt
}

// ------------------------------------------
// Accessors. The setters only touch the named components.
// ------------------------------------------

func (mt Mat4) GetAxisX() Vec3 {
	return Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}
}

func (mt Mat4) GetAxisY() Vec3 {
	return Vec3{mt.Data[4], mt.Data[5], mt.Data[6]}
}

func (mt Mat4) GetAxisZ() Vec3 {
	return Vec3{mt.Data[8], mt.Data[9], mt.Data[10]}
}

func (mt Mat4) GetAxis(axis int) Vec3 {
	return Vec3{mt.Get(0, axis), mt.Get(1, axis), mt.Get(2, axis)}
}

func (mt Mat4) GetPosition() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

func (mt Mat4) GetRow(row int) Vec4 {
	return Vec4{mt.Get(row, 0), mt.Get(row, 1), mt.Get(row, 2), mt.Get(row, 3)}
}

func (mt Mat4) GetColumn(col int) Vec4 {
	return Vec4{mt.Get(0, col), mt.Get(1, col), mt.Get(2, col), mt.Get(3, col)}
}

func (mt *Mat4) SetAxisX(v Vec3) { mt.SetAxis(0, v) }
func (mt *Mat4) SetAxisY(v Vec3) { mt.SetAxis(1, v) }
func (mt *Mat4) SetAxisZ(v Vec3) { mt.SetAxis(2, v) }

func (mt *Mat4) SetAxis(axis int, v Vec3) {
	mt.Set(0, axis, v.X)
	mt.Set(1, axis, v.Y)
	mt.Set(2, axis, v.Z)
}

func (mt *Mat4) SetPosition(v Vec3) {
	mt.Data[12] = v.X
	mt.Data[13] = v.Y
	mt.Data[14] = v.Z
}

func (mt *Mat4) SetRow(row int, v Vec4) {
	mt.Set(row, 0, v.X)
	mt.Set(row, 1, v.Y)
	mt.Set(row, 2, v.Z)
	mt.Set(row, 3, v.W)
}

func (mt *Mat4) SetColumn(col int, v Vec4) {
	mt.Set(0, col, v.X)
	mt.Set(1, col, v.Y)
	mt.Set(2, col, v.Z)
	mt.Set(3, col, v.W)
}

// ------------------------------------------
// Builders. Each overwrites the whole matrix unless stated otherwise.
// ------------------------------------------

/**
 * @brief Makes mt a pure translation.
 */
func (mt *Mat4) SetTranslate(t Vec3) *Mat4 {
	mt.SetIdentity()
	mt.SetPosition(t)
	return mt
}

/**
 * @brief Writes x, y, z as the first three columns, no translation.
 */
func (mt *Mat4) SetBasis(x, y, z Vec3) *Mat4 {
	mt.Data = [16]float32{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
	return mt
}

/**
 * @brief Writes x, y, z as the first three rows, no translation.
 */
func (mt *Mat4) SetBasisTransposed(x, y, z Vec3) *Mat4 {
	mt.Data = [16]float32{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	}
	return mt
}

func (mt *Mat4) SetScale(s Vec3) *Mat4 {
	mt.SetIdentity()
	mt.Data[0] = s.X
	mt.Data[5] = s.Y
	mt.Data[10] = s.Z
	return mt
}

func (mt *Mat4) SetPositionAndOrthoNormalBasis(position, x, y, z Vec3) *Mat4 {
	mt.SetBasis(x, y, z)
	mt.SetPosition(position)
	return mt
}

/**
 * @brief Post-multiplies mt by a translation: mt = mt * T(t).
 */
func (mt *Mat4) Translate(t Vec3) *Mat4 {
	for row := 0; row < 4; row++ {
		mt.Data[row+12] += mt.Data[row]*t.X + mt.Data[row+4]*t.Y + mt.Data[row+8]*t.Z
	}
	return mt
}

/**
 * @brief Post-multiplies mt by a scale: mt = mt * S(s).
 */
func (mt *Mat4) Scale(s Vec3) *Mat4 {
	for row := 0; row < 4; row++ {
		mt.Data[row] *= s.X
		mt.Data[row+4] *= s.Y
		mt.Data[row+8] *= s.Z
	}
	return mt
}

func (mt *Mat4) SetFromToRotation(from, to Vec3) *Mat4 {
	m3 := Mat3{}
	m3.SetFromToRotation(from, to)
	*mt = NewMat4FromMat3(m3)
	return mt
}

/**
 * @brief Rotation q followed by translation pos.
 */
func (mt *Mat4) SetTR(pos Vec3, q Quaternion) *Mat4 {
	*mt = QuaternionToMat4(q)
	mt.SetPosition(pos)
	return mt
}

/**
 * @brief Scale s, then rotation q, then translation pos.
 */
func (mt *Mat4) SetTRS(pos Vec3, q Quaternion, s Vec3) *Mat4 {
	*mt = QuaternionToMat4(q)
	mt.Scale(s)
	mt.SetPosition(pos)
	return mt
}

/**
 * @brief Inverse of SetTR(pos, q) for a unit q, built directly.
 */
func (mt *Mat4) SetTRInverse(pos Vec3, q Quaternion) *Mat4 {
	*mt = QuaternionToMat4(q.Inverse())
	mt.Translate(pos.Negate())
	return mt
}

/**
 * @brief Rotation part of mt with scale and shear removed by
 * orthonormalizing the 3x3 block.
 */
func (mt Mat4) GetRotation() Quaternion {
	m := NewMat3FromMat4(mt)
	if m.GetDeterminant() < 0 {
		// mirrored: GetLossyScale puts the flip on x
		for row := 0; row < 3; row++ {
			m.Data[row] = -m.Data[row]
		}
	}
	OrthoNormalizeMat3(&m)
	return Mat3ToQuaternion(m)
}

/**
 * @brief Axis lengths of the 3x3 block. A mirrored matrix reports a
 * negative x scale.
 */
func (mt Mat4) GetLossyScale() Vec3 {
	s := Vec3{mt.GetAxisX().Length(), mt.GetAxisY().Length(), mt.GetAxisZ().Length()}
	if NewMat3FromMat4(mt).GetDeterminant() < 0 {
		s.X = -s.X
	}
	return s
}

/**
 * @brief Reports whether mt can be expressed as translation, rotation and
 * scale: affine bottom row, finite entries and no collapsed axis.
 */
func (mt Mat4) ValidTRS() bool {
	if mt.Data[3] != 0.0 || mt.Data[7] != 0.0 || mt.Data[11] != 0.0 || kabs(mt.Data[15]) != 1.0 {
		return false
	}
	for _, f := range mt.Data {
		if !kisfinite(f) {
			return false
		}
	}
	return mt.GetAxisX().Length() > K_VEC_EPSILON &&
		mt.GetAxisY().Length() > K_VEC_EPSILON &&
		mt.GetAxisZ().Length() > K_VEC_EPSILON
}

// ComputeUniformScale returns the length of the x axis, which is the scale
// of a matrix already known to be uniformly scaled.
func ComputeUniformScale(m Mat4) float32 {
	return m.GetAxisX().Length()
}

// ------------------------------------------
// Convenience constructors
// ------------------------------------------

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetTranslate(position)
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetScale(scale)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix rotating about x, then y, then z.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	return NewMat4FromMat3(EulerToMat3(Vec3{x_radians, y_radians, z_radians}, RotationOrderXYZ))
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A view matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	f := target.Sub(position).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	out_matrix := Mat4{}
	out_matrix.SetBasisTransposed(s, u, f.Negate())
	out_matrix.SetPosition(Vec3{-s.Dot(position), -u.Dot(position), f.Dot(position)})
	return out_matrix
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}.Normalize()
}

/**
 * @brief Returns a upward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalize()
}

/**
 * @brief Returns a left vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalize()
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalize()
}
