package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4MulMatchesMathgl(t *testing.T) {
	t.Parallel()

	a := NewMat4Translation(NewVec3(1, 2, 3)).Mul(NewMat4EulerY(0.5))
	b := NewMat4Scale(NewVec3(2, 3, 4)).Mul(NewMat4EulerX(-1.1))

	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(0.5))
	requireMat4InDelta(t, fromMgl(want), a, 1e-6)

	want = want.Mul4(mgl32.Scale3D(2, 3, 4).Mul4(mgl32.HomogRotate3DX(-1.1)))
	requireMat4InDelta(t, fromMgl(want), a.Mul(b), 1e-5)

	// a*b applies b first
	p := NewVec3(0.5, -1, 2)
	assertVec3InDelta(t, a.MultiplyPoint3(b.MultiplyPoint3(p)), a.Mul(b).MultiplyPoint3(p), 1e-5)

	requireMat4InDelta(t, a.Mul(b), MultiplyMatrices3x4(a, b), 1e-6)
	assert.Equal(t, a, a.Mul(NewMat4Identity()))
}

func TestMat4EulerAxes(t *testing.T) {
	t.Parallel()

	requireMat4InDelta(t, fromMgl(mgl32.HomogRotate3DX(0.4)), NewMat4EulerX(0.4), 1e-6)
	requireMat4InDelta(t, fromMgl(mgl32.HomogRotate3DY(0.4)), NewMat4EulerY(0.4), 1e-6)
	requireMat4InDelta(t, fromMgl(mgl32.HomogRotate3DZ(0.4)), NewMat4EulerZ(0.4), 1e-6)

	// x first, then y, then z
	want := NewMat4EulerZ(0.3).Mul(NewMat4EulerY(-0.2)).Mul(NewMat4EulerX(1.1))
	requireMat4InDelta(t, want, NewMat4EulerXYZ(1.1, -0.2, 0.3), 1e-6)
}

func TestMat4MatrixArrays(t *testing.T) {
	t.Parallel()

	a := []Mat4{NewMat4EulerX(0.1), NewMat4Translation(NewVec3(1, 0, 0))}
	b := []Mat4{NewMat4Scale(NewVec3(2, 2, 2)), NewMat4EulerZ(0.7)}
	res := make([]Mat4, 2)

	MultiplyMatrixArray4x4(a, b, res)
	for i := range res {
		assert.Equal(t, a[i].Mul(b[i]), res[i])
	}

	base := NewMat4Translation(NewVec3(0, 5, 0))
	MultiplyMatrixArrayWithBase4x4(base, a, b, res)
	for i := range res {
		assert.Equal(t, base.Mul(a[i].Mul(b[i])), res[i])
	}
}

func TestMat4PointAndVector(t *testing.T) {
	t.Parallel()

	pos, rot, scale := trsFixture()
	m := Mat4{}
	m.SetTRS(pos, rot, scale)

	v := NewVec3(1, 2, -3)
	want := rot.RotateVector(v.Mul(scale))
	assertVec3InDelta(t, want, m.MultiplyVector3(v), 1e-5)
	assertVec3InDelta(t, want.Add(pos), m.MultiplyPoint3(v), 1e-5)

	v4 := m.MultiplyVector4(v.ToVec4(1))
	assertVec3InDelta(t, want.Add(pos), v4.ToVec3(), 1e-5)
	assert.Equal(t, float32(1), v4.W)
	assertVec3InDelta(t, want, m.MultiplyVector4(v.ToVec4(0)).ToVec3(), 1e-5)

	rt := Mat4{}
	rt.SetTR(pos, rot)
	moved := rt.MultiplyPoint3(v)
	assertVec3InDelta(t, v, rt.InverseMultiplyPoint3Affine(moved), 1e-5)
	assertVec3InDelta(t, v, rt.InverseMultiplyVector3Affine(rt.MultiplyVector3(v)), 1e-5)
}

func TestMat4PerspectiveMultiply(t *testing.T) {
	t.Parallel()

	m := Mat4{}
	m.SetPerspective(60, 1.5, 0.1, 100)

	ndc, ok := m.PerspectiveMultiplyPoint3(NewVec3(0, 0, -0.1))
	require.True(t, ok)
	assert.InDelta(t, -1.0, ndc.Z, 1e-4)

	ndc, ok = m.PerspectiveMultiplyPoint3(NewVec3(0, 0, -100))
	require.True(t, ok)
	assert.InDelta(t, 1.0, ndc.Z, 1e-4)

	// a point on the eye plane has w == 0
	ndc, ok = m.PerspectiveMultiplyPoint3(NewVec3(1, 1, 0))
	assert.False(t, ok)
	assert.Equal(t, NewVec3Zero(), ndc)

	dir, ok := m.PerspectiveMultiplyVector3(NewVec3(0, 0, -1))
	require.True(t, ok)
	assert.True(t, dir.IsFinite())

	dir, ok = m.PerspectiveMultiplyVector3(NewVec3(1, 0, 0))
	assert.False(t, ok)
	assert.Equal(t, NewVec3Zero(), dir)

	// affine matrices have w == 1
	p, ok := NewMat4Translation(NewVec3(1, 2, 3)).PerspectiveMultiplyPoint3(NewVec3(1, 1, 1))
	require.True(t, ok)
	assert.Equal(t, NewVec3(2, 3, 4), p)
}

func TestMat4Determinant(t *testing.T) {
	t.Parallel()

	pos, rot, scale := trsFixture()
	m := Mat4{}
	m.SetTRS(pos, rot, scale)
	assert.InDelta(t, toMgl(m).Det(), m.GetDeterminant(), 1e-5)
	assert.InDelta(t, scale.Volume(), m.GetDeterminant(), 1e-5)

	p := NewMat4Perspective(1.2, 1.7, 0.5, 50)
	assert.InDelta(t, toMgl(p).Det(), p.GetDeterminant(), 1e-5)

	assert.Equal(t, float32(0), NewMat4Scale(NewVec3(1, 0, 1)).GetDeterminant())
	assert.Equal(t, float32(1), NewMat4Identity().GetDeterminant())
}

func TestMat4Transpose(t *testing.T) {
	t.Parallel()

	m := NewMat4Perspective(1.2, 1.7, 0.5, 50).Mul(NewMat4Translation(NewVec3(1, 2, 3)))
	tr := NewMat4Transposed(m)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, m.Get(row, col), tr.Get(col, row))
		}
	}
	assert.Equal(t, [16]float32(toMgl(m).Transpose()), tr.Data)
	tr.Transpose()
	assert.Equal(t, m, tr)
}

func TestMat4Accessors(t *testing.T) {
	t.Parallel()

	m := NewMat4Identity()
	m.SetAxisX(NewVec3(1, 2, 3))
	m.SetAxisY(NewVec3(4, 5, 6))
	m.SetAxisZ(NewVec3(7, 8, 9))
	m.SetPosition(NewVec3(10, 11, 12))

	assert.Equal(t, NewVec3(1, 2, 3), m.GetAxisX())
	assert.Equal(t, NewVec3(4, 5, 6), m.GetAxis(1))
	assert.Equal(t, NewVec3(7, 8, 9), m.GetAxisZ())
	assert.Equal(t, NewVec3(10, 11, 12), m.GetPosition())
	assert.Equal(t, NewVec4(1, 4, 7, 10), m.GetRow(0))
	assert.Equal(t, NewVec4(10, 11, 12, 1), m.GetColumn(3))

	m.SetRow(3, NewVec4(0, 0, 1, 0))
	assert.True(t, m.IsPerspective())
	m.SetColumn(2, NewVec4(0, 0, 1, 0))
	assert.Equal(t, float32(0), m.Get(3, 2))
	m.SetRow(3, NewVec4(0, 0, 0, 1))
	assert.False(t, m.IsPerspective())

	b := Mat4{}
	b.SetBasisTransposed(NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9))
	assert.Equal(t, NewVec4(1, 2, 3, 0), b.GetRow(0))

	on := Mat4{}
	on.SetPositionAndOrthoNormalBasis(NewVec3(1, 1, 1), NewVec3YAxis(), NewVec3ZAxis(), NewVec3XAxis())
	assert.Equal(t, NewVec3(1, 1, 2), on.MultiplyPoint3(NewVec3(0, 1, 0)))
}

func TestMat4TranslateScalePostMultiply(t *testing.T) {
	t.Parallel()

	base := NewMat4EulerZ(0.6)
	base.SetPosition(NewVec3(1, 2, 3))

	translated := base
	translated.Translate(NewVec3(4, -1, 2))
	requireMat4InDelta(t, base.Mul(NewMat4Translation(NewVec3(4, -1, 2))), translated, 1e-6)

	scaled := base
	scaled.Scale(NewVec3(2, 3, 0.5))
	requireMat4InDelta(t, base.Mul(NewMat4Scale(NewVec3(2, 3, 0.5))), scaled, 1e-6)
}

func TestMat4TRS(t *testing.T) {
	t.Parallel()

	pos, rot, scale := trsFixture()
	m := Mat4{}
	m.SetTRS(pos, rot, scale)

	want := mgl32.Translate3D(pos.X, pos.Y, pos.Z).
		Mul4(toMglQuat(rot).Mat4()).
		Mul4(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
	requireMat4InDelta(t, fromMgl(want), m, 1e-5)

	assert.True(t, m.ValidTRS())
	assertVec3InDelta(t, pos, m.GetPosition(), 1e-6)
	assertVec3InDelta(t, scale, m.GetLossyScale(), 1e-5)
	assertQuatClose(t, rot, m.GetRotation(), 1e-5)

	tr, inv := Mat4{}, Mat4{}
	tr.SetTR(pos, rot)
	inv.SetTRInverse(pos, rot)
	assert.True(t, tr.Mul(inv).IsIdentity(1e-5))
	assert.True(t, inv.Mul(tr).IsIdentity(1e-5))
}

func TestMat4MirroredDecomposition(t *testing.T) {
	t.Parallel()

	pos, rot, _ := trsFixture()
	m := Mat4{}
	m.SetTRS(pos, rot, NewVec3(-2, 3, 4))

	assertVec3InDelta(t, NewVec3(-2, 3, 4), m.GetLossyScale(), 1e-5)
	q := m.GetRotation()
	assertQuatClose(t, rot, q, 1e-5)

	// the decomposition rebuilds the same matrix
	back := Mat4{}
	back.SetTRS(m.GetPosition(), q, m.GetLossyScale())
	assert.True(t, back.CompareApproximately(m, 1e-5))
}

func TestMat4ValidTRS(t *testing.T) {
	t.Parallel()

	assert.True(t, NewMat4Identity().ValidTRS())
	assert.False(t, NewMat4Scale(NewVec3(1, 0, 1)).ValidTRS())
	assert.False(t, NewMat4Perspective(1, 1, 0.1, 10).ValidTRS())

	bad := NewMat4Identity()
	bad.Data[12] = Vec3Infinity()
	assert.False(t, bad.ValidTRS())

	assert.InDelta(t, 3.0, ComputeUniformScale(NewMat4EulerY(1).Mul(NewMat4Scale(NewVec3(3, 3, 3)))), 1e-6)
}

func TestMat4FromToRotation(t *testing.T) {
	t.Parallel()

	from := NewVec3(1, 1, 0).Normalize()
	to := NewVec3(0, 0, 1)
	m := Mat4{}
	m.SetFromToRotation(from, to)
	assertVec3InDelta(t, to, m.MultiplyVector3(from), 1e-6)
	assert.False(t, m.IsPerspective())
}

func TestMat4LookAt(t *testing.T) {
	t.Parallel()

	eye := NewVec3(3, 4, 5)
	target := NewVec3(0, 1, 0)
	up := NewVec3Up()

	view := NewMat4LookAt(eye, target, up)
	want := mgl32.LookAtV(toMglVec3(eye), toMglVec3(target), toMglVec3(up))
	requireMat4InDelta(t, fromMgl(want), view, 1e-5)

	// the eye maps to the origin and the target onto -z
	assertVec3InDelta(t, NewVec3Zero(), view.MultiplyPoint3(eye), 1e-5)
	onAxis := view.MultiplyPoint3(target)
	assert.InDelta(t, 0.0, onAxis.X, 1e-5)
	assert.InDelta(t, 0.0, onAxis.Y, 1e-5)
	assert.Less(t, onAxis.Z, float32(0))

	fwd := target.Sub(eye).Normalize()
	assertVec3InDelta(t, fwd, view.Forward(), 1e-6)
	assertVec3InDelta(t, fwd.Negate(), view.Backward(), 1e-6)
	assertVec3InDelta(t, view.Right().Negate(), view.Left(), 1e-6)
	assertVec3InDelta(t, view.Up().Negate(), view.Down(), 1e-6)
	assert.InDelta(t, 0.0, view.Right().Dot(fwd), 1e-6)
	assert.InDelta(t, 0.0, view.Up().Dot(fwd), 1e-6)
	assert.Greater(t, view.Up().Y, float32(0))
}

func BenchmarkMat4Mul(b *testing.B) {
	pos, rot, scale := trsFixture()
	m := Mat4{}
	m.SetTRS(pos, rot, scale)
	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.Mul(m)
		}
	})
	b.Run("MultiplyMatrices3x4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = MultiplyMatrices3x4(m, m)
		}
	})
}
