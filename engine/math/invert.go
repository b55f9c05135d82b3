package math

// InvertFull returns the inverse of an arbitrary 4x4 matrix, projective
// ones included, by Gauss-Jordan elimination with partial pivoting. The
// elimination runs in float64. ok is false when a pivot is exactly zero;
// the returned matrix is then meaningless.
func (mt Mat4) InvertFull() (Mat4, bool) {
	var a [4][8]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			a[row][col] = float64(mt.Get(row, col))
		}
		a[row][4+row] = 1.0
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := absf64(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := absf64(a[row][col]); v > best {
				pivot, best = row, v
			}
		}
		if best == 0.0 {
			return Mat4{}, false
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
		}

		inv := 1.0 / a[col][col]
		for k := col; k < 8; k++ {
			a[col][k] *= inv
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			f := a[row][col]
			if f == 0.0 {
				continue
			}
			for k := col; k < 8; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, float32(a[row][4+col]))
		}
	}
	return out, true
}

// InvertGeneral3D inverts an affine matrix: the 3x3 block through its
// adjugate, the translation as -R^-1 * t. It refuses projective input and
// a 3x3 block whose determinant is too small to divide by.
func (mt Mat4) InvertGeneral3D() (Mat4, bool) {
	if mt.IsPerspective() {
		return Mat4{}, false
	}
	g := mt.Get

	// Positive and negative terms are summed apart to limit cancellation.
	var pos, neg float32
	acc := func(t float32) {
		if t >= 0.0 {
			pos += t
		} else {
			neg += t
		}
	}
	acc(g(0, 0) * g(1, 1) * g(2, 2))
	acc(g(1, 0) * g(2, 1) * g(0, 2))
	acc(g(2, 0) * g(0, 1) * g(1, 2))
	acc(-g(2, 0) * g(1, 1) * g(0, 2))
	acc(-g(1, 0) * g(0, 1) * g(2, 2))
	acc(-g(0, 0) * g(2, 1) * g(1, 2))
	det := pos + neg

	if det*det < 1e-25 {
		return Mat4{}, false
	}
	det = 1.0 / det

	out := Mat4{}
	out.Set(0, 0, (g(1, 1)*g(2, 2)-g(2, 1)*g(1, 2))*det)
	out.Set(0, 1, -(g(0, 1)*g(2, 2)-g(2, 1)*g(0, 2))*det)
	out.Set(0, 2, (g(0, 1)*g(1, 2)-g(1, 1)*g(0, 2))*det)
	out.Set(1, 0, -(g(1, 0)*g(2, 2)-g(2, 0)*g(1, 2))*det)
	out.Set(1, 1, (g(0, 0)*g(2, 2)-g(2, 0)*g(0, 2))*det)
	out.Set(1, 2, -(g(0, 0)*g(1, 2)-g(1, 0)*g(0, 2))*det)
	out.Set(2, 0, (g(1, 0)*g(2, 1)-g(2, 0)*g(1, 1))*det)
	out.Set(2, 1, -(g(0, 0)*g(2, 1)-g(2, 0)*g(0, 1))*det)
	out.Set(2, 2, (g(0, 0)*g(1, 1)-g(1, 0)*g(0, 1))*det)

	for row := 0; row < 3; row++ {
		out.Set(row, 3, -(g(0, 3)*out.Get(row, 0) + g(1, 3)*out.Get(row, 1) + g(2, 3)*out.Get(row, 2)))
	}
	out.Data[15] = 1.0
	return out, true
}

// Invert replaces mt with its full inverse. On false mt is left undefined.
func (mt *Mat4) Invert() bool {
	inv, ok := mt.InvertFull()
	*mt = inv
	return ok
}

func absf64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
