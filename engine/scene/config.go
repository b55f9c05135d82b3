package scene

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/wankel/engine/core"
	"github.com/spaghettifunk/wankel/engine/math"
)

const (
	DefaultQueueSize = 64
	DefaultFov       = 60.0
	DefaultNear      = 0.1
	DefaultFar       = 1000.0
)

// Config is a scene file: engine settings, a node hierarchy, cameras and
// point sets to push through them.
type Config struct {
	Engine  EngineConfig   `toml:"engine"`
	Nodes   []NodeConfig   `toml:"nodes"`
	Cameras []CameraConfig `toml:"cameras"`
	Points  []PointsConfig `toml:"points"`

	logLevel core.LogLevel
}

type EngineConfig struct {
	LogLevel  string `toml:"log_level"`
	Workers   int    `toml:"workers"`
	QueueSize int    `toml:"queue_size"`
	Watch     bool   `toml:"watch"`
}

// NodeConfig places a node relative to its parent. Either Matrix or the
// position/rotation/scale fields are used, not both.
type NodeConfig struct {
	Name     string     `toml:"name"`
	Parent   string     `toml:"parent"`
	Position [3]float32 `toml:"position"`
	// Rotation holds euler angles in degrees applied in RotationOrder.
	Rotation      [3]float32  `toml:"rotation"`
	RotationOrder string      `toml:"rotation_order"`
	Quaternion    *[4]float32 `toml:"quaternion"`
	Scale         *[3]float32 `toml:"scale"`
	// Matrix is column major.
	Matrix *[16]float32 `toml:"matrix"`
}

type CameraConfig struct {
	Name       string     `toml:"name"`
	Projection string     `toml:"projection"`
	Position   [3]float32 `toml:"position"`
	// Target wins over Rotation when set.
	Target        *[3]float32 `toml:"target"`
	Up            *[3]float32 `toml:"up"`
	Rotation      [3]float32  `toml:"rotation"`
	RotationOrder string      `toml:"rotation_order"`
	Fov           float32     `toml:"fov"`
	Size          float32     `toml:"size"`
	Aspect        float32     `toml:"aspect"`
	Near          float32     `toml:"near"`
	Far           float32     `toml:"far"`
	Viewport      [2]float32  `toml:"viewport"`
}

// PointsConfig is a batch of positions or directions in the local space
// of Node. With Inverse set they are world values mapped into Node's
// space instead.
type PointsConfig struct {
	Name    string       `toml:"name"`
	Node    string       `toml:"node"`
	Camera  string       `toml:"camera"`
	Mode    string       `toml:"mode"`
	Inverse bool         `toml:"inverse"`
	Values  [][3]float32 `toml:"values"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a scene, fills in defaults and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevel is the parsed [engine] log_level.
func (c *Config) LogLevel() core.LogLevel {
	return c.logLevel
}

func (c *Config) applyDefaults() {
	if c.Engine.LogLevel == "" {
		c.Engine.LogLevel = "info"
	}
	if c.Engine.Workers == 0 {
		c.Engine.Workers = runtime.NumCPU()
	}
	if c.Engine.QueueSize == 0 {
		c.Engine.QueueSize = DefaultQueueSize
	}

	for i := range c.Nodes {
		n := &c.Nodes[i]
		if n.Name == "" {
			n.Name = uuid.NewString()
		}
		if n.Scale == nil {
			n.Scale = &[3]float32{1, 1, 1}
		}
	}
	for i := range c.Cameras {
		cam := &c.Cameras[i]
		if cam.Name == "" {
			cam.Name = uuid.NewString()
		}
		if cam.Projection == "" {
			cam.Projection = "perspective"
		}
		if cam.Up == nil {
			cam.Up = &[3]float32{0, 1, 0}
		}
		if cam.Fov == 0 {
			cam.Fov = DefaultFov
		}
		if cam.Size == 0 {
			cam.Size = 1
		}
		if cam.Near == 0 {
			cam.Near = DefaultNear
		}
		if cam.Far == 0 {
			cam.Far = DefaultFar
		}
		if cam.Aspect == 0 {
			if cam.Viewport[0] > 0 && cam.Viewport[1] > 0 {
				cam.Aspect = cam.Viewport[0] / cam.Viewport[1]
			} else {
				cam.Aspect = 16.0 / 9.0
			}
		}
	}
	for i := range c.Points {
		p := &c.Points[i]
		if p.Name == "" {
			p.Name = uuid.NewString()
		}
		if p.Mode == "" {
			p.Mode = "point"
		}
	}
}

func (c *Config) validate() error {
	level, err := core.ParseLogLevel(c.Engine.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEngine, err)
	}
	c.logLevel = level
	if c.Engine.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalidEngine, c.Engine.Workers)
	}
	if c.Engine.QueueSize < 0 {
		return fmt.Errorf("%w: queue_size = %d", ErrInvalidEngine, c.Engine.QueueSize)
	}

	nodes := make(map[string]int, len(c.Nodes))
	for i, n := range c.Nodes {
		if _, dup := nodes[n.Name]; dup {
			return fmt.Errorf("node %q: %w", n.Name, ErrDuplicateName)
		}
		nodes[n.Name] = i
		if _, err := parseOrder(n.RotationOrder); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
		if n.Matrix != nil && !math.NewMat4FromSlice(n.Matrix[:]).ValidTRS() {
			return fmt.Errorf("node %q: %w", n.Name, ErrInvalidMatrix)
		}
	}
	for _, n := range c.Nodes {
		if n.Parent != "" {
			if _, ok := nodes[n.Parent]; !ok {
				return fmt.Errorf("node %q: %w %q", n.Name, ErrUnknownParent, n.Parent)
			}
		}
	}
	if err := c.checkCycles(nodes); err != nil {
		return err
	}

	cameras := make(map[string]struct{}, len(c.Cameras))
	for _, cam := range c.Cameras {
		if _, dup := cameras[cam.Name]; dup {
			return fmt.Errorf("camera %q: %w", cam.Name, ErrDuplicateName)
		}
		cameras[cam.Name] = struct{}{}
		if _, err := parseProjection(cam.Projection); err != nil {
			return fmt.Errorf("camera %q: %w", cam.Name, err)
		}
		if _, err := parseOrder(cam.RotationOrder); err != nil {
			return fmt.Errorf("camera %q: %w", cam.Name, err)
		}
		if cam.Near <= 0 || cam.Far <= cam.Near {
			return fmt.Errorf("camera %q: %w: near %g far %g", cam.Name, ErrInvalidCamera, cam.Near, cam.Far)
		}
		if cam.Aspect <= 0 || cam.Fov <= 0 || cam.Fov >= 180 || cam.Size <= 0 {
			return fmt.Errorf("camera %q: %w: fov %g aspect %g size %g", cam.Name, ErrInvalidCamera, cam.Fov, cam.Aspect, cam.Size)
		}
	}

	points := make(map[string]struct{}, len(c.Points))
	for _, p := range c.Points {
		if _, dup := points[p.Name]; dup {
			return fmt.Errorf("points %q: %w", p.Name, ErrDuplicateName)
		}
		points[p.Name] = struct{}{}
		if p.Node != "" {
			if _, ok := nodes[p.Node]; !ok {
				return fmt.Errorf("points %q: %w %q", p.Name, ErrUnknownNode, p.Node)
			}
		}
		mode, err := parseMode(p.Mode)
		if err != nil {
			return fmt.Errorf("points %q: %w", p.Name, err)
		}
		if p.Camera != "" {
			if _, ok := cameras[p.Camera]; !ok {
				return fmt.Errorf("points %q: %w %q", p.Name, ErrUnknownCamera, p.Camera)
			}
			if mode != modePoint {
				return fmt.Errorf("points %q: only positions can be projected by camera %q: %w", p.Name, p.Camera, ErrUnknownMode)
			}
		}
	}
	return nil
}

// checkCycles walks every parent chain, which is at most len(nodes) long
// unless it loops.
func (c *Config) checkCycles(nodes map[string]int) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(c.Nodes))
	for start := range c.Nodes {
		var chain []int
		i := start
		for i >= 0 && state[i] == unvisited {
			state[i] = visiting
			chain = append(chain, i)
			i = c.parentIndex(i, nodes)
		}
		if i >= 0 && state[i] == visiting {
			return fmt.Errorf("node %q: %w", c.Nodes[i].Name, ErrParentCycle)
		}
		for _, j := range chain {
			state[j] = done
		}
	}
	return nil
}

func (c *Config) parentIndex(i int, nodes map[string]int) int {
	parent := c.Nodes[i].Parent
	if parent == "" {
		return -1
	}
	return nodes[parent]
}

func parseOrder(s string) (math.RotationOrder, error) {
	if strings.TrimSpace(s) == "" {
		return math.RotationOrderDefault, nil
	}
	order, ok := math.ParseRotationOrder(s)
	if !ok {
		return order, fmt.Errorf("%w %q", ErrUnknownRotationOrder, s)
	}
	return order, nil
}
