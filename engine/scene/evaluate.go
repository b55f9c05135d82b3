package scene

import (
	"context"
	"fmt"
	"strings"

	"github.com/spaghettifunk/wankel/engine/core"
	"github.com/spaghettifunk/wankel/engine/math"
	"github.com/spaghettifunk/wankel/engine/renderer/components"
	"github.com/spaghettifunk/wankel/engine/systems"
)

type NodeResult struct {
	Name   string
	Parent string
	Local  math.Mat4
	World  math.Mat4
	// World space decomposition. Scale is lossy under shear.
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
	// Euler is Rotation in degrees, in the node's rotation order.
	Euler math.Vec3
	Type  math.TransformType
}

type CameraResult struct {
	Name           string
	Projection     components.ProjectionKind
	View           math.Mat4
	ProjectionMat  math.Mat4
	ViewProjection math.Mat4
	Frustum        math.FrustumPlanes
	Position       math.Vec3
	Forward        math.Vec3
}

type PointsResult struct {
	Name   string
	Values []math.Vec3
	// Set when the point set names a camera.
	Viewport []math.Vec3
	Visible  []bool
}

type Result struct {
	Nodes   []NodeResult
	Cameras []CameraResult
	Points  []PointsResult
}

func (r *Result) Node(name string) (NodeResult, bool) {
	for _, n := range r.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return NodeResult{}, false
}

func (r *Result) Camera(name string) (CameraResult, bool) {
	for _, c := range r.Cameras {
		if c.Name == name {
			return c, true
		}
	}
	return CameraResult{}, false
}

func (r *Result) PointSet(name string) (PointsResult, bool) {
	for _, p := range r.Points {
		if p.Name == name {
			return p, true
		}
	}
	return PointsResult{}, false
}

type pointMode uint8

const (
	modePoint pointMode = iota
	modeVector
	modeNormal
)

func parseMode(s string) (pointMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point", "":
		return modePoint, nil
	case "vector":
		return modeVector, nil
	case "normal":
		return modeNormal, nil
	default:
		return modePoint, fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}

func parseProjection(s string) (components.ProjectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "":
		return components.ProjectionPerspective, nil
	case "orthographic", "ortho":
		return components.ProjectionOrthographic, nil
	default:
		return components.ProjectionPerspective, fmt.Errorf("%w %q", ErrUnknownProjection, s)
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.NewVec3(a[0], a[1], a[2])
}

func degToRad3(a [3]float32) math.Vec3 {
	return math.NewVec3(math.DegToRad(a[0]), math.DegToRad(a[1]), math.DegToRad(a[2]))
}

func radToDeg3(v math.Vec3) math.Vec3 {
	return math.NewVec3(math.RadToDeg(v.X), math.RadToDeg(v.Y), math.RadToDeg(v.Z))
}

/**
 * @brief Resolves the node hierarchy, configures the cameras and pushes
 * every point set through its node (and camera).
 *
 * The config is defaulted and validated first, so a Config built in code
 * behaves like a parsed one.
 *
 * jobs may be nil, in which case point sets are transformed on the calling
 * goroutine. cams may be nil, in which case the cameras are private to the
 * result. Otherwise the cameras are written into cams by name once the
 * whole scene evaluated; on error cams is left as it was.
 */
func (c *Config) Evaluate(ctx context.Context, jobs *systems.JobSystem, cams *systems.CameraSystem) (*Result, error) {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	transforms, err := c.buildTransforms()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Nodes:   make([]NodeResult, 0, len(c.Nodes)),
		Cameras: make([]CameraResult, 0, len(c.Cameras)),
		Points:  make([]PointsResult, 0, len(c.Points)),
	}

	for i, n := range c.Nodes {
		t := transforms[n.Name]
		world := t.GetWorld()
		order, _ := parseOrder(n.RotationOrder)
		rot := world.GetRotation()
		res.Nodes = append(res.Nodes, NodeResult{
			Name:     n.Name,
			Parent:   n.Parent,
			Local:    t.GetLocal(),
			World:    world,
			Position: world.GetPosition(),
			Rotation: rot,
			Scale:    world.GetLossyScale(),
			Euler:    radToDeg3(math.QuaternionToEuler(rot, order)),
			Type:     t.TransformType(),
		})
		core.LogDebug("node %d %q at %v", i, n.Name, res.Nodes[i].Position)
	}

	cameras := make(map[string]*components.Camera, len(c.Cameras))
	for _, cc := range c.Cameras {
		cam, err := c.camera(cc)
		if err != nil {
			return nil, err
		}
		cameras[cc.Name] = cam
		res.Cameras = append(res.Cameras, CameraResult{
			Name:           cc.Name,
			Projection:     cam.Projection,
			View:           cam.GetView(),
			ProjectionMat:  cam.GetProjection(),
			ViewProjection: cam.GetViewProjection(),
			Frustum:        cam.Frustum(),
			Position:       cam.GetPosition(),
			Forward:        cam.Forward(),
		})
	}

	for _, pc := range c.Points {
		pr, err := c.points(ctx, pc, transforms, cameras, jobs)
		if err != nil {
			return nil, err
		}
		res.Points = append(res.Points, pr)
	}

	if cams != nil {
		if err := commitCameras(cams, c.Cameras, cameras); err != nil {
			return nil, err
		}
	}

	core.Logger().Debug("scene evaluated", "nodes", len(res.Nodes), "cameras", len(res.Cameras), "points", len(res.Points))
	return res, nil
}

func (c *Config) buildTransforms() (map[string]*math.Transform, error) {
	transforms := make(map[string]*math.Transform, len(c.Nodes))
	for _, n := range c.Nodes {
		t := math.TransformCreate()
		if n.Matrix != nil {
			if !t.SetFromMatrix(math.NewMat4FromSlice(n.Matrix[:])) {
				return nil, fmt.Errorf("node %q: %w", n.Name, ErrInvalidMatrix)
			}
		} else {
			order, err := parseOrder(n.RotationOrder)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", n.Name, err)
			}
			rot := math.EulerToQuaternion(degToRad3(n.Rotation), order)
			if n.Quaternion != nil {
				q := n.Quaternion
				rot = math.NewQuaternion(q[0], q[1], q[2], q[3]).NormalizeSafe()
			}
			t.SetPositionRotationScale(vec3(n.Position), rot, vec3(*n.Scale))
		}
		transforms[n.Name] = t
	}
	for _, n := range c.Nodes {
		if n.Parent == "" {
			continue
		}
		parent, ok := transforms[n.Parent]
		if !ok {
			return nil, fmt.Errorf("node %q: %w %q", n.Name, ErrUnknownParent, n.Parent)
		}
		transforms[n.Name].SetParent(parent)
	}
	return transforms, nil
}

// commitCameras copies the evaluated cameras into the registry, acquiring
// the names it does not know yet. If a slot runs out, the cameras acquired
// here are released again and no registered camera is touched.
func commitCameras(cams *systems.CameraSystem, configs []CameraConfig, built map[string]*components.Camera) error {
	targets := make(map[string]*components.Camera, len(configs))
	var acquired []string
	for _, cc := range configs {
		if cam, ok := cams.Get(cc.Name); ok {
			targets[cc.Name] = cam
			continue
		}
		cam, err := cams.Acquire(cc.Name)
		if err != nil {
			for _, name := range acquired {
				cams.Release(name)
			}
			return fmt.Errorf("camera %q: %w", cc.Name, err)
		}
		acquired = append(acquired, cc.Name)
		targets[cc.Name] = cam
	}
	for name, cam := range targets {
		*cam = *built[name]
	}
	return nil
}

func (c *Config) camera(cc CameraConfig) (*components.Camera, error) {
	cam := components.NewCamera()

	kind, err := parseProjection(cc.Projection)
	if err != nil {
		return nil, fmt.Errorf("camera %q: %w", cc.Name, err)
	}
	if kind == components.ProjectionOrthographic {
		cam.SetOrthographic(cc.Size, cc.Aspect, cc.Near, cc.Far)
	} else {
		cam.SetPerspective(cc.Fov, cc.Aspect, cc.Near, cc.Far)
	}

	cam.SetPosition(vec3(cc.Position))
	order, err := parseOrder(cc.RotationOrder)
	if err != nil {
		return nil, fmt.Errorf("camera %q: %w", cc.Name, err)
	}
	cam.RotationOrder = order
	if cc.Target != nil {
		if !cam.LookAt(vec3(*cc.Target), vec3(*cc.Up)) {
			return nil, fmt.Errorf("camera %q: %w: cannot look at %v with up %v", cc.Name, ErrInvalidCamera, *cc.Target, *cc.Up)
		}
	} else {
		cam.SetEulerRotationOrder(degToRad3(cc.Rotation), order)
	}
	return cam, nil
}

func (c *Config) points(ctx context.Context, pc PointsConfig, transforms map[string]*math.Transform, cameras map[string]*components.Camera, jobs *systems.JobSystem) (PointsResult, error) {
	m := math.NewMat4Identity()
	if pc.Node != "" {
		t, ok := transforms[pc.Node]
		if !ok {
			return PointsResult{}, fmt.Errorf("points %q: %w %q", pc.Name, ErrUnknownNode, pc.Node)
		}
		m = t.GetWorld()
		if pc.Inverse {
			inv, ok := t.GetWorldInverse()
			if !ok {
				return PointsResult{}, fmt.Errorf("points %q: node %q: %w", pc.Name, pc.Node, ErrNotInvertible)
			}
			m = inv
		}
	}

	mode, err := parseMode(pc.Mode)
	if err != nil {
		return PointsResult{}, fmt.Errorf("points %q: %w", pc.Name, err)
	}
	jobMode := systems.TransformModePoint
	switch mode {
	case modeVector:
		jobMode = systems.TransformModeVector
	case modeNormal:
		// normals go through the inverse transpose of the 3x3 block
		nm := math.NewMat3FromMat4(m)
		if !nm.InvertTranspose() {
			return PointsResult{}, fmt.Errorf("points %q: %w", pc.Name, ErrNotInvertible)
		}
		m = math.NewMat4FromMat3(nm)
		jobMode = systems.TransformModeVector
	}

	in := make([]math.Vec3, len(pc.Values))
	for i, v := range pc.Values {
		in[i] = vec3(v)
	}
	out := make([]math.Vec3, len(in))
	if err := transformPoints(ctx, jobs, m, jobMode, in, out); err != nil {
		return PointsResult{}, fmt.Errorf("points %q: %w", pc.Name, err)
	}
	if mode == modeNormal {
		for i := range out {
			out[i] = out[i].NormalizeSafe(math.NewVec3Zero())
		}
	}

	pr := PointsResult{Name: pc.Name, Values: out}
	if pc.Camera == "" {
		return pr, nil
	}

	cam := cameras[pc.Camera]
	cc := c.cameraConfig(pc.Camera)
	w, h := cc.Viewport[0], cc.Viewport[1]
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	pr.Viewport = make([]math.Vec3, len(out))
	pr.Visible = make([]bool, len(out))
	for i, p := range out {
		v, ok := cam.WorldToViewport(p, w, h)
		pr.Viewport[i] = v
		pr.Visible[i] = ok && v.X >= 0 && v.X <= w && v.Y >= 0 && v.Y <= h && v.Z >= 0 && v.Z <= 1
	}
	return pr, nil
}

func (c *Config) cameraConfig(name string) CameraConfig {
	for _, cc := range c.Cameras {
		if cc.Name == name {
			return cc
		}
	}
	return CameraConfig{}
}

func transformPoints(ctx context.Context, jobs *systems.JobSystem, m math.Mat4, mode systems.TransformMode, in, out []math.Vec3) error {
	if jobs != nil {
		return jobs.TransformPoints(ctx, m, mode, in, out)
	}
	if mode == systems.TransformModeVector {
		math.TransformPoints3x3(m, in, out)
	} else {
		math.TransformPoints3x4(m, in, out)
	}
	return nil
}
