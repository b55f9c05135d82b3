package math

/**
 * @brief Creates a transform at the origin with no rotation and unit scale.
 */
func TransformCreate() *Transform {
	return TransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func TransformFromPosition(position Vec3) *Transform {
	return TransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func TransformFromRotation(rotation Quaternion) *Transform {
	return TransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func TransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return TransformFromPositionRotationScale(position, rotation, NewVec3One())
}

/**
 * @brief Creates a parentless transform. The local matrix is built lazily
 * on the first GetLocal.
 */
func TransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{Local: NewMat4Identity()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate applies rotation in local space, before the current rotation.
func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation).NormalizeSafeIfUnnormalized()
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) ScaleIt(scale Vec3) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotation(position Vec3, rotation Quaternion) {
	t.Position = position
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) TranslateRotate(translation Vec3, rotation Quaternion) {
	t.Position = t.Position.Add(translation)
	t.Rotation = t.Rotation.Mul(rotation).NormalizeSafeIfUnnormalized()
	t.IsDirty = true
}

// SetParent attaches t under parent; nil detaches it.
func (t *Transform) SetParent(parent *Transform) {
	t.Parent = parent
}

/**
 * @brief Returns the local matrix (scale, then rotation, then translation),
 * rebuilding it only when a setter marked the transform dirty.
 */
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		t.Local.SetTRS(t.Position, t.Rotation.NormalizeSafeIfUnnormalized(), t.Scale)
		t.IsDirty = false
	}
	return t.Local
}

/**
 * @brief Returns the local matrix composed with every ancestor's, so the
 * result maps local space to world space.
 */
func (t *Transform) GetWorld() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		p := t.Parent.GetWorld()
		return p.Mul(l)
	}
	return l
}

/**
 * @brief Returns the world-to-local matrix. ok is false when a zero scale
 * anywhere in the chain makes the world matrix singular.
 */
func (t *Transform) GetWorldInverse() (Mat4, bool) {
	return t.GetWorld().InvertGeneral3D()
}

/**
 * @brief Classifies the scale of the world matrix.
 */
func (t *Transform) TransformType() TransformType {
	return ComputeTransformType(t.GetWorld(), K_VEC_EPSILON)
}

/**
 * @brief Sets position, rotation and scale from a TRS matrix. Returns false
 * and leaves t unchanged when m is not a valid TRS.
 */
func (t *Transform) SetFromMatrix(m Mat4) bool {
	if !m.ValidTRS() {
		return false
	}
	t.SetPositionRotationScale(m.GetPosition(), m.GetRotation(), m.GetLossyScale())
	return true
}
