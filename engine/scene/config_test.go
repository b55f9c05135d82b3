package scene

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/wankel/engine/core"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
[[nodes]]
name = "root"

[[nodes]]
parent = "root"

[[cameras]]
viewport = [800.0, 600.0]

[[points]]
values = [[1.0, 2.0, 3.0]]
`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Engine.LogLevel)
	assert.Equal(t, core.LogLevelInfo, cfg.LogLevel())
	assert.Equal(t, runtime.NumCPU(), cfg.Engine.Workers)
	assert.Equal(t, DefaultQueueSize, cfg.Engine.QueueSize)
	assert.False(t, cfg.Engine.Watch)

	require.Len(t, cfg.Nodes, 2)
	assert.Equal(t, &[3]float32{1, 1, 1}, cfg.Nodes[0].Scale)
	assert.NotEmpty(t, cfg.Nodes[1].Name, "blank names are generated")
	assert.NotEqual(t, cfg.Nodes[0].Name, cfg.Nodes[1].Name)

	cam := cfg.Cameras[0]
	assert.NotEmpty(t, cam.Name)
	assert.Equal(t, "perspective", cam.Projection)
	assert.Equal(t, float32(DefaultFov), cam.Fov)
	assert.Equal(t, float32(DefaultNear), cam.Near)
	assert.Equal(t, float32(DefaultFar), cam.Far)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-6)
	assert.Equal(t, &[3]float32{0, 1, 0}, cam.Up)

	assert.Equal(t, "point", cfg.Points[0].Mode)
}

func TestParseEngine(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
[engine]
log_level = "debug"
workers = 3
queue_size = 7
watch = true
`))
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelDebug, cfg.LogLevel())
	assert.Equal(t, EngineConfig{LogLevel: "debug", Workers: 3, QueueSize: 7, Watch: true}, cfg.Engine)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		toml string
		want error
	}{
		{"unknown parent", `
[[nodes]]
name = "a"
parent = "nope"`, ErrUnknownParent},
		{"cycle", `
[[nodes]]
name = "a"
parent = "b"
[[nodes]]
name = "b"
parent = "c"
[[nodes]]
name = "c"
parent = "a"`, ErrParentCycle},
		{"self parent", `
[[nodes]]
name = "a"
parent = "a"`, ErrParentCycle},
		{"rotation order", `
[[nodes]]
name = "a"
rotation_order = "XXY"`, ErrUnknownRotationOrder},
		{"camera rotation order", `
[[cameras]]
rotation_order = "ABC"`, ErrUnknownRotationOrder},
		{"duplicate node", `
[[nodes]]
name = "a"
[[nodes]]
name = "a"`, ErrDuplicateName},
		{"duplicate camera", `
[[cameras]]
name = "c"
[[cameras]]
name = "c"`, ErrDuplicateName},
		{"invalid matrix", `
[[nodes]]
name = "a"
matrix = [1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, -1.0, -1.0, 0.0, 0.0, -0.2, 0.0]`, ErrInvalidMatrix},
		{"projection", `
[[cameras]]
projection = "fisheye"`, ErrUnknownProjection},
		{"near plane", `
[[cameras]]
near = -1.0`, ErrInvalidCamera},
		{"far before near", `
[[cameras]]
near = 10.0
far = 5.0`, ErrInvalidCamera},
		{"field of view", `
[[cameras]]
fov = 190.0`, ErrInvalidCamera},
		{"points mode", `
[[points]]
mode = "bogus"`, ErrUnknownMode},
		{"points node", `
[[points]]
node = "ghost"`, ErrUnknownNode},
		{"points camera", `
[[points]]
camera = "ghost"`, ErrUnknownCamera},
		{"projected vectors", `
[[cameras]]
name = "c"
[[points]]
camera = "c"
mode = "vector"`, ErrUnknownMode},
		{"log level", `
[engine]
log_level = "loud"`, core.ErrInvalidLogLevel},
		{"workers", `
[engine]
workers = -2`, ErrInvalidEngine},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.toml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
[[nodes]]
name = "a"
colour = "red"
`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not toml = = =`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[nodes]]\nname = \"root\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.Nodes[0].Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTestbed(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("..", "..", "testbed", "scene.toml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Nodes)
	assert.NotEmpty(t, cfg.Cameras)
}
