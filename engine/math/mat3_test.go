package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat3Layout(t *testing.T) {
	t.Parallel()

	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	assert.Equal(t, float32(2), m.Get(0, 1))
	assert.Equal(t, float32(4), m.Get(1, 0))
	assert.Equal(t, [9]float32{1, 4, 7, 2, 5, 8, 3, 6, 10}, m.Data)
	assert.Equal(t, NewVec3(3, 6, 10), m.GetColumn(2))
	assert.Equal(t, NewVec3(14, 32, 53), m.MultiplyVector3(NewVec3(1, 2, 3)))
	assert.Equal(t, NewVec3(30, 36, 45), m.MultiplyVector3Transpose(NewVec3(1, 2, 3)))
	assert.InDelta(t, -3.0, m.GetDeterminant(), 1e-5)

	tr := m
	tr.Transpose()
	assert.Equal(t, m.Get(0, 2), tr.Get(2, 0))
	assert.Equal(t, m.MultiplyVector3Transpose(NewVec3(1, 2, 3)), tr.MultiplyVector3(NewVec3(1, 2, 3)))
}

func TestMat3Mul(t *testing.T) {
	t.Parallel()

	a := NewMat3AxisAngle(NewVec3ZAxis(), 0.3)
	b := NewMat3(2, 0, 0, 0, 3, 0, 0, 0, 4)
	v := NewVec3(1, -2, 0.5)

	// a*b applies b first
	want := a.MultiplyVector3(b.MultiplyVector3(v))
	assertVec3InDelta(t, want, a.Mul(b).MultiplyVector3(v), 1e-6)

	id := NewMat3Identity()
	assert.Equal(t, a, a.Mul(id))
	assert.True(t, id.IsIdentity(0))
	assert.False(t, a.IsIdentity(1e-3))

	m4 := NewMat4Translation(NewVec3(5, 6, 7))
	assert.Equal(t, a, a.MulMat4(m4))
	assert.Equal(t, NewMat3(2, 0, 0, 0, 2, 0, 0, 0, 2), NewMat3Identity().MulScalar(2))
	assert.Equal(t, NewMat3(0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5), NewMat3Identity().DivScalar(2))
}

func TestMat3AxisAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		axis  Vec3
		angle float32
	}{
		{"x", NewVec3XAxis(), 0.7},
		{"y", NewVec3YAxis(), -1.2},
		{"z", NewVec3ZAxis(), K_HALF_PI},
		{"oblique", NewVec3(1, -2, 0.5).Normalize(), 2.4},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMat3AxisAngle(tt.axis, tt.angle)
			want := fromMgl(mgl32.HomogRotate3D(tt.angle, toMglVec3(tt.axis)))
			requireMat4InDelta(t, want, NewMat4FromMat3(m), 1e-6)
			requireOrthonormal(t, m, 1e-5)
			assertVec3InDelta(t, tt.axis, m.MultiplyVector3(tt.axis), 1e-6)
		})
	}
}

func TestMat3Invert(t *testing.T) {
	t.Parallel()

	m := NewMat3(
		2, 1, 0,
		0, 3, 1,
		1, 0, 4,
	)
	inv := m
	require.True(t, inv.Invert())
	requireMat3InDelta(t, NewMat3Identity(), m.Mul(inv), 1e-6)
	requireMat3InDelta(t, NewMat3Identity(), inv.Mul(m), 1e-6)

	singular := NewMat3(
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	)
	assert.False(t, singular.Invert())

	// the inverse transpose of a rotation is the rotation
	r := NewMat3AxisAngle(NewVec3(0, 1, 1).Normalize(), 0.9)
	it := r
	require.True(t, it.InvertTranspose())
	requireMat3InDelta(t, r, it, 1e-6)
}

func TestMat3Basis(t *testing.T) {
	t.Parallel()

	x, y, z := NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9)
	m := Mat3{}
	m.SetBasis(x, y, z)
	assert.Equal(t, x, m.GetColumn(0))
	assert.Equal(t, z, m.GetColumn(2))

	mt := Mat3{}
	mt.SetBasisTransposed(x, y, z)
	m.Transpose()
	assert.Equal(t, m, mt)

	s := Mat3{}
	s.SetScale(NewVec3(2, 3, 4))
	assert.Equal(t, float32(24), s.GetDeterminant())

	r := NewMat3AxisAngle(NewVec3XAxis(), 0.4)
	scaled := r
	scaled.Scale(NewVec3(2, 3, 4))
	requireMat3InDelta(t, r.Mul(s), scaled, 1e-6)

	var z3 Mat3
	z3.SetZero()
	assert.Equal(t, NewMat3Zero(), z3)
	assert.Equal(t, NewMat3Identity(), *z3.SetIdentity())
}

func TestMat3FromToRotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"x to y", NewVec3XAxis(), NewVec3YAxis()},
		{"oblique", NewVec3(1, 2, 3).Normalize(), NewVec3(-2, 0.5, 1).Normalize()},
		{"same", NewVec3(0, 0, 1), NewVec3(0, 0, 1)},
		{"opposite x", NewVec3XAxis(), NewVec3(-1, 0, 0)},
		{"opposite z", NewVec3ZAxis(), NewVec3(0, 0, -1)},
		{"opposite oblique", NewVec3(1, 1, 1).Normalize(), NewVec3(-1, -1, -1).Normalize()},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := Mat3{}
			m.SetFromToRotation(tt.from, tt.to)
			assertVec3InDelta(t, tt.to, m.MultiplyVector3(tt.from), 1e-5)
			requireOrthonormal(t, m, 1e-5)
		})
	}

	m := Mat3{}
	m.SetFromToRotation(NewVec3XAxis(), NewVec3XAxis())
	assert.True(t, m.IsIdentity(0))
}

func TestLookRotationToMat3(t *testing.T) {
	t.Parallel()

	m, ok := LookRotationToMat3(NewVec3ZAxis(), NewVec3YAxis())
	require.True(t, ok)
	assert.True(t, m.IsIdentity(1e-6))

	m, ok = LookRotationToMat3(NewVec3(1, 0, 1), NewVec3YAxis())
	require.True(t, ok)
	requireOrthonormal(t, m, 1e-5)
	assertVec3InDelta(t, NewVec3(1, 0, 1).Normalize(), m.GetColumn(2), 1e-6)
	assert.Greater(t, m.GetColumn(1).Y, float32(0.99))

	for name, args := range map[string][2]Vec3{
		"zero view":   {NewVec3Zero(), NewVec3YAxis()},
		"parallel up": {NewVec3(0, 3, 0), NewVec3YAxis()},
		"zero up":     {NewVec3ZAxis(), NewVec3Zero()},
	} {
		m, ok := LookRotationToMat3(args[0], args[1])
		assert.False(t, ok, name)
		assert.Equal(t, NewMat3Identity(), m, name)
	}
}

func TestEulerToMat3(t *testing.T) {
	t.Parallel()

	angles := NewVec3(0.3, -0.8, 1.9)

	fast := EulerToMat3(angles, RotationOrderZXY)
	slow := axisRotation(1, angles.Y).Mul(axisRotation(0, angles.X)).Mul(axisRotation(2, angles.Z))
	requireMat3InDelta(t, slow, fast, 1e-6)

	for _, order := range []RotationOrder{
		RotationOrderXYZ, RotationOrderXZY, RotationOrderYZX,
		RotationOrderYXZ, RotationOrderZXY, RotationOrderZYX,
	} {
		m := EulerToMat3(angles, order)
		q := QuaternionToMat3(EulerToQuaternion(angles, order))
		requireMat3InDelta(t, q, m, 1e-5)
		requireOrthonormal(t, m, 1e-5)
	}
}

func TestOrthoNormalizeMat3(t *testing.T) {
	t.Parallel()

	m := NewMat3AxisAngle(NewVec3(1, 1, 0).Normalize(), 0.6)
	m.Data[0] += 0.01
	m.Data[4] -= 0.02
	m.Data[7] += 0.015
	OrthoNormalizeMat3(&m)
	requireOrthonormal(t, m, 1e-5)
}

func BenchmarkMat3Mul(b *testing.B) {
	m := NewMat3AxisAngle(NewVec3(1, 2, 3).Normalize(), 0.5)
	for i := 0; i < b.N; i++ {
		m = m.Mul(m)
	}
}
