package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/wankel/engine/math"
)

func requireMat4Near(t *testing.T, want mgl32.Mat4, got math.Mat4, delta float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got.Data[i], delta, "element (%d,%d)", i%4, i/4)
	}
}

func assertVec3Near(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestCameraDefaults(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	assert.True(t, c.GetView().IsIdentity(0))
	assert.Equal(t, ProjectionPerspective, c.Projection)
	assert.Equal(t, math.RotationOrderDefault, c.RotationOrder)

	want := mgl32.Perspective(mgl32.DegToRad(DefaultFovY), DefaultAspect, DefaultNear, DefaultFar)
	requireMat4Near(t, want, c.GetProjection(), 1e-5)

	assertVec3Near(t, math.NewVec3Forward(), c.Forward(), 1e-6)
	assertVec3Near(t, math.NewVec3Right(), c.Right(), 1e-6)
}

func TestCameraLookAt(t *testing.T) {
	t.Parallel()

	eye := math.NewVec3(3, 4, 5)
	target := math.NewVec3(0, 1, 0)

	c := NewCamera()
	c.SetPosition(eye)
	require.True(t, c.LookAt(target, math.NewVec3Up()))

	want := mgl32.LookAtV(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0})
	requireMat4Near(t, want, c.GetView(), 1e-5)
	assertVec3Near(t, target.Sub(eye).Normalize(), c.Forward(), 1e-5)

	// euler angles stay in sync with the quaternion
	q := math.EulerToQuaternion(c.GetEulerRotation(), c.RotationOrder)
	assert.True(t, q.CompareApproximately(c.Rotation, 1e-5))

	before := c.Rotation
	assert.False(t, c.LookAt(eye, math.NewVec3Up()), "target on the camera")
	assert.False(t, c.LookAt(eye.Add(math.NewVec3Up()), math.NewVec3Up()), "looking along up")
	assert.Equal(t, before, c.Rotation)
}

func TestCameraWorldToViewport(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	c.SetPerspective(60, 800.0/600.0, 0.5, 50)
	c.SetPosition(math.NewVec3(3, 4, 5))
	require.True(t, c.LookAt(math.NewVec3(0, 1, 0), math.NewVec3Up()))

	ndc, ok := c.WorldToClip(math.NewVec3(0, 1, 0))
	require.True(t, ok)
	assert.InDelta(t, 0, ndc.X, 1e-5)
	assert.InDelta(t, 0, ndc.Y, 1e-5)
	assert.Greater(t, ndc.Z, float32(-1))
	assert.Less(t, ndc.Z, float32(1))

	px, ok := c.WorldToViewport(math.NewVec3(0, 1, 0), 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, px.X, 1e-2)
	assert.InDelta(t, 300, px.Y, 1e-2)

	p := math.NewVec3(0.5, 1.5, -0.25)
	px, ok = c.WorldToViewport(p, 800, 600)
	require.True(t, ok)
	back, ok := c.ViewportToWorld(px, 800, 600)
	require.True(t, ok)
	assertVec3Near(t, p, back, 1e-3)

	// on the camera plane w is zero
	flat := NewCamera()
	_, ok = flat.WorldToClip(math.NewVec3(1, 0, 0))
	assert.False(t, ok)
	_, ok = flat.WorldToViewport(math.NewVec3(1, 0, 0), 800, 600)
	assert.False(t, ok)
}

func TestCameraFrustum(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	c.SetPerspective(60, 1, 0.1, 100)
	f := c.Frustum()
	assert.InDelta(t, 0.1, f.ZNear, 1e-5)
	assert.InEpsilon(t, 100, f.ZFar, 1e-4)
	top := f.Top

	c.SetDepthRange(1, 20)
	f = c.Frustum()
	assert.InDelta(t, 1, f.ZNear, 1e-5)
	assert.InEpsilon(t, 20, f.ZFar, 1e-4)
	// field of view is kept, so the near plane grows with the distance
	assert.InDelta(t, top*10, f.Top, 1e-4)
	assert.Equal(t, float32(1), c.Near)
	assert.Equal(t, float32(20), c.Far)

	o := NewCamera()
	o.SetOrthographic(5, 2, 0.1, 100)
	requireMat4Near(t, mgl32.Ortho(-10, 10, -5, 5, 0.1, 100), o.GetProjection(), 1e-6)
	f = o.Frustum()
	assert.InDelta(t, -10, f.Left, 1e-5)
	assert.InDelta(t, 10, f.Right, 1e-5)
	assert.InDelta(t, 5, f.Top, 1e-5)
	assert.InDelta(t, -5, f.Bottom, 1e-5)

	o.SetDepthRange(1, 10)
	f = o.Frustum()
	assert.InDelta(t, 1, f.ZNear, 1e-5)
	assert.InDelta(t, 10, f.ZFar, 1e-5)
	assert.Equal(t, "orthographic", o.Projection.String())
}

func TestCameraAspect(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	before := c.GetProjection()
	c.SetAspect(DefaultAspect * 2)
	after := c.GetProjection()
	assert.InDelta(t, before.Get(0, 0)/2, after.Get(0, 0), 1e-6)
	assert.Equal(t, before.Get(1, 1), after.Get(1, 1))
}

func TestCameraMovement(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	c.MoveForward(2)
	assertVec3Near(t, math.NewVec3(0, 0, -2), c.GetPosition(), 1e-6)
	c.MoveRight(1)
	c.MoveUp(3)
	assertVec3Near(t, math.NewVec3(1, 3, -2), c.GetPosition(), 1e-6)
	c.MoveBackward(2)
	c.MoveLeft(1)
	c.MoveDown(3)
	assertVec3Near(t, math.NewVec3Zero(), c.GetPosition(), 1e-6)
	assertVec3Near(t, math.NewVec3Zero(), c.GetView().GetPosition(), 1e-6)

	c.Yaw(math.K_HALF_PI)
	assertVec3Near(t, math.NewVec3(-1, 0, 0), c.Forward(), 1e-6)
	c.MoveForward(1)
	assertVec3Near(t, math.NewVec3(-1, 0, 0), c.GetPosition(), 1e-6)

	c.Pitch(2)
	assert.Equal(t, pitchLimit, c.GetEulerRotation().X)
	c.Pitch(-4)
	assert.Equal(t, -pitchLimit, c.GetEulerRotation().X)

	c.Reset()
	assert.Equal(t, math.NewVec3Zero(), c.GetPosition())
	assert.Equal(t, math.NewQuatIdentity(), c.Rotation)
}
