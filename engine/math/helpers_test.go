package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toMgl(m Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Data)
}

func fromMgl(m mgl32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}
}

func toMglVec3(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func toMglQuat(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func requireMat4InDelta(t *testing.T, want, got Mat4, delta float64) {
	t.Helper()
	for i := range want.Data {
		require.InDeltaf(t, want.Data[i], got.Data[i], delta, "element (%d,%d)", i%4, i/4)
	}
}

func requireMat3InDelta(t *testing.T, want, got Mat3, delta float64) {
	t.Helper()
	for i := range want.Data {
		require.InDeltaf(t, want.Data[i], got.Data[i], delta, "element (%d,%d)", i%3, i/3)
	}
}

func assertVec3InDelta(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func assertQuatClose(t *testing.T, want, got Quaternion, epsilon float32) {
	t.Helper()
	assert.Truef(t, want.CompareApproximately(got, epsilon), "want %v, got %v", want, got)
}

func requireOrthonormal(t *testing.T, m Mat3, delta float64) {
	t.Helper()
	c0, c1, c2 := m.GetColumn(0), m.GetColumn(1), m.GetColumn(2)
	require.InDelta(t, 1.0, c0.Length(), delta)
	require.InDelta(t, 1.0, c1.Length(), delta)
	require.InDelta(t, 1.0, c2.Length(), delta)
	require.InDelta(t, 0.0, c0.Dot(c1), delta)
	require.InDelta(t, 0.0, c0.Dot(c2), delta)
	require.InDelta(t, 0.0, c1.Dot(c2), delta)
	require.InDelta(t, 1.0, m.GetDeterminant(), delta)
}

// trsFixture is a rotation, translation and non-uniform scale that the
// matrix tests share.
func trsFixture() (Vec3, Quaternion, Vec3) {
	pos := NewVec3(1.5, -2.0, 3.25)
	rot := AxisAngleToQuaternion(NewVec3(1, 2, 3).Normalize(), 0.8)
	scale := NewVec3(2.0, 0.5, 1.5)
	return pos, rot, scale
}
