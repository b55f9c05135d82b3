package math

// Projection matrices follow the OpenGL clip convention: right-handed view
// space looking down -z, depth mapped to [-1, 1].

/**
 * @brief Sets mt to a symmetric perspective projection.
 *
 * @param fovy The vertical field of view in degrees.
 * @param aspect Width divided by height.
 * @param zNear The near clipping plane distance.
 * @param zFar The far clipping plane distance.
 */
func (mt *Mat4) SetPerspective(fovy, aspect, zNear, zFar float32) *Mat4 {
	radians := DegToRad(fovy / 2.0)
	cotangent := kcos(radians) / ksin(radians)
	mt.SetPerspectiveCotan(cotangent, zNear, zFar)
	mt.Data[0] = cotangent / aspect
	return mt
}

/**
 * @brief Sets mt to a square perspective projection from the cotangent of
 * half the field of view, skipping the trigonometry when the caller already
 * has it.
 */
func (mt *Mat4) SetPerspectiveCotan(cotanHalfFOV, zNear, zFar float32) *Mat4 {
	deltaZ := zNear - zFar
	*mt = Mat4{}
	mt.Set(0, 0, cotanHalfFOV)
	mt.Set(1, 1, cotanHalfFOV)
	mt.Set(2, 2, (zFar+zNear)/deltaZ)
	mt.Set(2, 3, 2.0*zNear*zFar/deltaZ)
	mt.Set(3, 2, -1.0)
	return mt
}

/**
 * @brief Sets mt to an orthographic projection of the given box.
 */
func (mt *Mat4) SetOrtho(left, right, bottom, top, zNear, zFar float32) *Mat4 {
	deltaX := right - left
	deltaY := top - bottom
	deltaZ := zFar - zNear

	mt.SetIdentity()
	mt.Set(0, 0, 2.0/deltaX)
	mt.Set(0, 3, -(right+left)/deltaX)
	mt.Set(1, 1, 2.0/deltaY)
	mt.Set(1, 3, -(top+bottom)/deltaY)
	mt.Set(2, 2, -2.0/deltaZ)
	mt.Set(2, 3, -(zFar+zNear)/deltaZ)
	return mt
}

/**
 * @brief Sets mt to a general, possibly off-axis, perspective frustum whose
 * near plane spans [left, right] x [bottom, top].
 */
func (mt *Mat4) SetFrustum(left, right, bottom, top, nearval, farval float32) *Mat4 {
	x := (2.0 * nearval) / (right - left)
	y := (2.0 * nearval) / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(farval + nearval) / (farval - nearval)
	d := -(2.0 * farval * nearval) / (farval - nearval)

	*mt = Mat4{}
	mt.Set(0, 0, x)
	mt.Set(0, 2, a)
	mt.Set(1, 1, y)
	mt.Set(1, 2, b)
	mt.Set(2, 2, c)
	mt.Set(2, 3, d)
	mt.Set(3, 2, -1.0)
	return mt
}

/**
 * @brief Rewrites the depth row of an existing projection so it clips at
 * newNear and newFar. Field of view, aspect and off-center terms are kept.
 */
func (mt *Mat4) AdjustDepthRange(newNear, newFar float32) *Mat4 {
	if mt.IsPerspective() {
		deltaZ := newNear - newFar
		mt.Set(2, 2, (newFar+newNear)/deltaZ)
		mt.Set(2, 3, 2.0*newNear*newFar/deltaZ)
		return mt
	}
	deltaZ := newFar - newNear
	mt.Set(2, 2, -2.0/deltaZ)
	mt.Set(2, 3, -(newFar+newNear)/deltaZ)
	return mt
}

/**
 * @brief Recovers the frustum planes from a perspective or orthographic
 * matrix built by the setters above (or any equivalent matrix).
 */
func (mt Mat4) DecomposeProjection() FrustumPlanes {
	planes := FrustumPlanes{}
	if mt.IsPerspective() {
		planes.ZNear = mt.Get(2, 3) / (mt.Get(2, 2) - 1.0)
		planes.ZFar = mt.Get(2, 3) / (mt.Get(2, 2) + 1.0)
		planes.Right = planes.ZNear * (1.0 + mt.Get(0, 2)) / mt.Get(0, 0)
		planes.Left = planes.ZNear * (-1.0 + mt.Get(0, 2)) / mt.Get(0, 0)
		planes.Top = planes.ZNear * (1.0 + mt.Get(1, 2)) / mt.Get(1, 1)
		planes.Bottom = planes.ZNear * (-1.0 + mt.Get(1, 2)) / mt.Get(1, 1)
		return planes
	}
	planes.ZNear = (mt.Get(2, 3) + 1.0) / mt.Get(2, 2)
	planes.ZFar = (mt.Get(2, 3) - 1.0) / mt.Get(2, 2)
	planes.Right = (1.0 - mt.Get(0, 3)) / mt.Get(0, 0)
	planes.Left = (-1.0 - mt.Get(0, 3)) / mt.Get(0, 0)
	planes.Top = (1.0 - mt.Get(1, 3)) / mt.Get(1, 1)
	planes.Bottom = (-1.0 - mt.Get(1, 3)) / mt.Get(1, 1)
	return planes
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetPerspectiveCotan(1.0/ktan(fov_radians*0.5), near_clip, far_clip)
	out_matrix.Data[0] /= aspect_ratio
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetOrtho(left, right, bottom, top, near_clip, far_clip)
	return out_matrix
}
