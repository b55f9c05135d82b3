package math

// Gram-Schmidt helpers and direction-preserving motion for Vec3.

// OrthoNormalizeFast orthonormalizes u, v, w in place in that order. The
// caller guarantees the three vectors span space; there are no fallbacks.
func OrthoNormalizeFast(u, v, w *Vec3) {
	*u = u.Normalize()

	dot0 := u.Dot(*v)
	*v = v.Sub(u.MulScalar(dot0))
	*v = v.Normalize()

	dot1 := v.Dot(*w)
	dot0 = u.Dot(*w)
	*w = w.Sub(u.MulScalar(dot0).Add(v.MulScalar(dot1)))
	*w = w.Normalize()
}

// OrthoNormalize makes u unit length and v a unit vector orthogonal to it.
// A degenerate u becomes the x axis, a v parallel to u is replaced with
// OrthoNormalVectorFast(u).
func OrthoNormalize(u, v *Vec3) {
	mag := u.Length()
	if mag > K_VEC_EPSILON {
		*u = u.DivScalar(mag)
	} else {
		*u = NewVec3XAxis()
	}

	dot0 := u.Dot(*v)
	*v = v.Sub(u.MulScalar(dot0))
	mag = v.Length()
	if mag < K_VEC_EPSILON {
		*v = OrthoNormalVectorFast(*u)
	} else {
		*v = v.DivScalar(mag)
	}
}

// OrthoNormalize3 extends OrthoNormalize with a third vector corrected
// against both u and v, falling back to Cross(u, v) when it degenerates.
// Later vectors are corrected against earlier ones, never the reverse.
func OrthoNormalize3(u, v, w *Vec3) {
	mag := u.Length()
	if mag > K_VEC_EPSILON {
		*u = u.DivScalar(mag)
	} else {
		*u = NewVec3XAxis()
	}

	dot0 := u.Dot(*v)
	*v = v.Sub(u.MulScalar(dot0))
	mag = v.Length()
	if mag > K_VEC_EPSILON {
		*v = v.DivScalar(mag)
	} else {
		*v = OrthoNormalVectorFast(*u)
	}

	dot1 := v.Dot(*w)
	dot0 = u.Dot(*w)
	*w = w.Sub(u.MulScalar(dot0).Add(v.MulScalar(dot1)))
	mag = w.Length()
	if mag > K_VEC_EPSILON {
		*w = w.DivScalar(mag)
	} else {
		*w = u.Cross(*v)
	}
}

// OrthoNormalVectorFast returns a unit vector orthogonal to the unit vector
// n. The plane it is picked from depends on n.Z so the square root never
// sees a tiny argument.
func OrthoNormalVectorFast(n Vec3) Vec3 {
	if kabs(n.Z) > K_SQRT_ONE_OVER_TWO {
		// y-z plane
		a := n.Y*n.Y + n.Z*n.Z
		k := 1.0 / ksqrt(a)
		return Vec3{0, -n.Z * k, n.Y * k}
	}
	// x-y plane
	a := n.X*n.X + n.Y*n.Y
	k := 1.0 / ksqrt(a)
	return Vec3{-n.Y * k, n.X * k, 0}
}

// MoveTowards steps v towards target by at most maxDistanceDelta and lands
// exactly on target once it is within reach.
func (v Vec3) MoveTowards(target Vec3, maxDistanceDelta float32) Vec3 {
	delta := target.Sub(v)
	sqrDelta := delta.LengthSquared()
	if sqrDelta > maxDistanceDelta*maxDistanceDelta {
		deltaMag := ksqrt(sqrDelta)
		if deltaMag > K_VEC_EPSILON {
			return v.Add(delta.DivScalar(deltaMag).MulScalar(maxDistanceDelta))
		}
		return v
	}
	return target
}

// ClampedMove moves the scalar lhs towards rhs by at most clampedDelta.
func ClampedMove(lhs, rhs, clampedDelta float32) float32 {
	delta := rhs - lhs
	if delta > 0.0 {
		return lhs + Min(delta, clampedDelta)
	}
	return lhs - Min(-delta, clampedDelta)
}

// RotateTowards turns the direction of v towards target by at most maxAngle
// radians and moves its length towards target's by at most maxMagnitude.
// If either vector is near zero it falls back to MoveTowards.
func (v Vec3) RotateTowards(target Vec3, maxAngle, maxMagnitude float32) Vec3 {
	curLength := v.Length()
	targetLength := target.Length()
	if curLength <= K_VEC_EPSILON || targetLength <= K_VEC_EPSILON {
		return v.MoveTowards(target, maxMagnitude)
	}

	curNorm := v.DivScalar(curLength)
	targetNorm := target.DivScalar(targetLength)
	dot := curNorm.Dot(targetNorm)

	var axis Vec3
	var angle float32
	switch {
	case dot > 1.0-K_VEC_EPSILON:
		return v.MoveTowards(target, maxMagnitude)
	case dot < -1.0+K_VEC_EPSILON:
		// the cross product is too short to trust
		axis = OrthoNormalVectorFast(curNorm)
		angle = maxAngle
	default:
		axis = curNorm.Cross(targetNorm).Normalize()
		angle = Min(maxAngle, kacos(dot))
	}

	m := NewMat3AxisAngle(axis, angle)
	rotated := m.MultiplyPoint3(curNorm)
	return rotated.MulScalar(ClampedMove(curLength, targetLength, maxMagnitude))
}

// Slerp interpolates the direction of v towards to along the great circle
// and the length linearly. Near-zero inputs and near-identical directions
// use Lerp; opposite directions rotate by PI*t about an arbitrary
// orthogonal axis.
func (v Vec3) Slerp(to Vec3, t float32) Vec3 {
	lhsMag := v.Length()
	rhsMag := to.Length()
	if lhsMag < K_VEC_EPSILON || rhsMag < K_VEC_EPSILON {
		return v.Lerp(to, t)
	}

	lerpedMagnitude := Lerp(lhsMag, rhsMag, t)
	dot := v.Dot(to) / (lhsMag * rhsMag)

	var axis Vec3
	var angle float32
	switch {
	case dot > 1.0-K_VEC_EPSILON:
		return v.Lerp(to, t)
	case dot < -1.0+K_VEC_EPSILON:
		axis = OrthoNormalVectorFast(v.DivScalar(lhsMag))
		angle = K_PI * t
	default:
		axis = v.Cross(to).Normalize()
		angle = kacos(dot) * t
	}

	m := NewMat3AxisAngle(axis, angle)
	slerped := m.MultiplyPoint3(v.DivScalar(lhsMag))
	return slerped.MulScalar(lerpedMagnitude)
}
