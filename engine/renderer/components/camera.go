package components

import (
	"github.com/spaghettifunk/wankel/engine/math"
)

type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

func (p ProjectionKind) String() string {
	if p == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. Ideally,
 * these are created and managed by the camera system.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/**
	 * @brief The orientation of this camera. The camera looks down its
	 * local -z axis.
	 */
	Rotation math.Quaternion
	/**
	 * @brief Euler angles (pitch, yaw, roll) matching Rotation under
	 * RotationOrder.
	 */
	EulerRotation math.Vec3
	RotationOrder math.RotationOrder
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4

	Projection ProjectionKind
	// FovY is the vertical field of view in degrees.
	FovY   float32
	Aspect float32
	// OrthoSize is half the visible height of an orthographic camera.
	OrthoSize float32
	Near      float32
	Far       float32

	projectionMatrix math.Mat4
	projectionDirty  bool
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

const (
	DefaultFovY   float32 = 45.0
	DefaultAspect float32 = 16.0 / 9.0
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 1000.0
)

// pitchLimit is 89 degrees.
const pitchLimit float32 = 1.55334306

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Rotation = math.NewQuatIdentity()
	c.RotationOrder = math.RotationOrderDefault
	c.Position = math.NewVec3Zero()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
	c.SetPerspective(DefaultFovY, DefaultAspect, DefaultNear, DefaultFar)
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.SetEulerRotationOrder(rotation, c.RotationOrder)
}

// SetEulerRotationOrder sets the orientation from euler angles in radians
// applied in order.
func (c *Camera) SetEulerRotationOrder(rotation math.Vec3, order math.RotationOrder) {
	c.EulerRotation = rotation
	c.RotationOrder = order
	c.Rotation = math.EulerToQuaternion(rotation, order)
	c.IsDirty = true
}

func (c *Camera) SetRotation(rotation math.Quaternion) {
	c.Rotation = rotation.NormalizeSafe()
	c.EulerRotation = math.QuaternionToEuler(c.Rotation, c.RotationOrder)
	c.IsDirty = true
}

// LookAt turns the camera towards target. It returns false and leaves the
// orientation alone when target sits on the camera or the view direction
// is parallel to up.
func (c *Camera) LookAt(target, up math.Vec3) bool {
	// the camera looks down -z, so its z axis points away from the target
	back := c.Position.Sub(target)
	q, ok := math.LookRotationToQuaternion(back, up)
	if !ok {
		return false
	}
	c.SetRotation(q)
	return true
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix.SetTRInverse(c.Position, c.Rotation)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) SetPerspective(fovY, aspect, near, far float32) {
	c.Projection = ProjectionPerspective
	c.FovY = fovY
	c.Aspect = aspect
	c.Near = near
	c.Far = far
	c.projectionDirty = true
}

func (c *Camera) SetOrthographic(size, aspect, near, far float32) {
	c.Projection = ProjectionOrthographic
	c.OrthoSize = size
	c.Aspect = aspect
	c.Near = near
	c.Far = far
	c.projectionDirty = true
}

// SetAspect is called when the render target is resized.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.projectionDirty = true
}

// SetDepthRange moves the clip planes of the current projection without
// touching field of view or extents.
func (c *Camera) SetDepthRange(near, far float32) {
	proj := c.GetProjection()
	proj.AdjustDepthRange(near, far)
	c.projectionMatrix = proj
	c.Near = near
	c.Far = far
}

func (c *Camera) GetProjection() math.Mat4 {
	if c.projectionDirty {
		switch c.Projection {
		case ProjectionOrthographic:
			halfW := c.OrthoSize * c.Aspect
			c.projectionMatrix.SetOrtho(-halfW, halfW, -c.OrthoSize, c.OrthoSize, c.Near, c.Far)
		default:
			c.projectionMatrix.SetPerspective(c.FovY, c.Aspect, c.Near, c.Far)
		}
		c.projectionDirty = false
	}
	return c.projectionMatrix
}

// GetViewProjection maps world space to clip space.
func (c *Camera) GetViewProjection() math.Mat4 {
	proj := c.GetProjection()
	return proj.Mul(c.GetView())
}

// Frustum returns the view-space clip planes of the projection.
func (c *Camera) Frustum() math.FrustumPlanes {
	return c.GetProjection().DecomposeProjection()
}

// WorldToClip projects a world point to normalized device coordinates.
// Points on the camera plane fail.
func (c *Camera) WorldToClip(p math.Vec3) (math.Vec3, bool) {
	return c.GetViewProjection().PerspectiveMultiplyPoint3(p)
}

// WorldToViewport maps a world point to pixel coordinates with the origin
// in the bottom-left corner. z is the depth in [0, 1].
func (c *Camera) WorldToViewport(p math.Vec3, width, height float32) (math.Vec3, bool) {
	ndc, ok := c.WorldToClip(p)
	if !ok {
		return math.Vec3{}, false
	}
	return math.NewVec3(
		(ndc.X+1.0)*0.5*width,
		(ndc.Y+1.0)*0.5*height,
		(ndc.Z+1.0)*0.5,
	), true
}

// ViewportToWorld undoes WorldToViewport. It fails when the view
// projection cannot be inverted.
func (c *Camera) ViewportToWorld(p math.Vec3, width, height float32) (math.Vec3, bool) {
	inv, ok := c.GetViewProjection().InvertFull()
	if !ok {
		return math.Vec3{}, false
	}
	ndc := math.NewVec3(
		p.X/width*2.0-1.0,
		p.Y/height*2.0-1.0,
		p.Z*2.0-1.0,
	)
	return inv.PerspectiveMultiplyPoint3(ndc)
}

func (c *Camera) Forward() math.Vec3 {
	view := c.GetView()
	return view.Forward()
}

func (c *Camera) Backward() math.Vec3 {
	view := c.GetView()
	return view.Backward()

}

func (c *Camera) Left() math.Vec3 {
	view := c.GetView()
	return view.Left()
}

func (c *Camera) Right() math.Vec3 {
	view := c.GetView()
	return view.Right()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	euler := c.EulerRotation
	euler.Y += amount
	c.SetEulerRotationOrder(euler, c.RotationOrder)
}

func (c *Camera) Pitch(amount float32) {
	euler := c.EulerRotation
	euler.X += amount

	// Clamp to avoid Gimbal lock.
	euler.X = math.Clamp(euler.X, -pitchLimit, pitchLimit)
	c.SetEulerRotationOrder(euler, c.RotationOrder)
}
