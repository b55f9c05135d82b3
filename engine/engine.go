package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/wankel/engine/assets"
	"github.com/spaghettifunk/wankel/engine/core"
	"github.com/spaghettifunk/wankel/engine/math"
	"github.com/spaghettifunk/wankel/engine/scene"
	"github.com/spaghettifunk/wankel/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// MaxCameraCount bounds the cameras a scene may declare.
const MaxCameraCount uint16 = 64

type Engine struct {
	mu            sync.RWMutex
	currentStage  Stage
	path          string
	config        *scene.Config
	result        *scene.Result
	systemManager *systems.SystemManager
	watcher       *assets.AssetWatcher
	clock         *core.Clock
	metrics       *core.Metrics
	shutdownOnce  sync.Once
	shutdownErr   error
}

// New boots an engine for the scene file at path. The file is parsed
// here so configuration errors surface before anything starts.
func New(path string) (*Engine, error) {
	e := &Engine{
		currentStage: EngineStageBooting,
		path:         path,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
	}

	cfg, err := scene.Load(path)
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}
	e.config = cfg
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("initialize in stage %d: %w", e.currentStage, core.ErrUnknown)
	}
	e.currentStage = EngineStageInitializing

	core.SetLogLevel(e.config.LogLevel())

	sm, err := systems.NewSystemManager(systems.SystemManagerConfig{
		Workers:        e.config.Engine.Workers,
		QueueSize:      e.config.Engine.QueueSize,
		MaxCameraCount: MaxCameraCount,
	})
	if err != nil {
		return err
	}
	e.systemManager = sm

	if e.config.Engine.Watch {
		w, err := assets.NewAssetWatcher()
		if err != nil {
			return err
		}
		if err := w.Track(e.path); err != nil {
			_ = w.Close()
			return err
		}
		e.watcher = w
	}

	core.LogInfo("Engine initialized with %d workers", e.config.Engine.Workers)
	e.currentStage = EngineStageInitialized
	return nil
}

// Run evaluates the scene. With watching enabled it then re-evaluates on
// every change to the scene file until ctx is done; otherwise it returns
// after the first evaluation.
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	switch e.currentStage {
	case EngineStageInitialized:
	case EngineStageRunning:
		e.mu.Unlock()
		return core.ErrAlreadyRunning
	default:
		e.mu.Unlock()
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageRunning
	cfg := e.config
	e.mu.Unlock()

	if err := e.evaluate(ctx, cfg); err != nil {
		return err
	}
	if e.watcher == nil {
		return nil
	}

	core.LogInfo("Watching %s for changes", e.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-e.watcher.Changes():
			if !ok {
				return nil
			}
			core.LogInfo("Reloading %s", path)
			if err := e.reload(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				// keep the last good scene
				core.LogError("reload failed: %s", err)
			}
		}
	}
}

func (e *Engine) reload(ctx context.Context) error {
	cfg, err := scene.Load(e.path)
	if err != nil {
		return err
	}
	if cfg.Engine.Workers != e.config.Engine.Workers || cfg.Engine.QueueSize != e.config.Engine.QueueSize {
		core.LogWarn("worker settings changed; restart to apply them")
	}
	core.SetLogLevel(cfg.LogLevel())

	if err := e.evaluate(ctx, cfg); err != nil {
		return err
	}

	// drop cameras the new scene no longer declares
	keep := make(map[string]struct{}, len(cfg.Cameras))
	for _, c := range cfg.Cameras {
		keep[c.Name] = struct{}{}
	}
	for _, name := range e.systemManager.CameraSystem.Names() {
		if _, ok := keep[name]; !ok {
			e.systemManager.CameraSystem.Release(name)
		}
	}

	e.mu.Lock()
	e.config = cfg
	e.mu.Unlock()
	return nil
}

func (e *Engine) evaluate(ctx context.Context, cfg *scene.Config) error {
	e.clock.Start()
	res, err := cfg.Evaluate(ctx, e.systemManager.JobSystem, e.systemManager.CameraSystem)
	e.clock.Update()
	e.clock.Stop()
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", e.path, err)
	}
	e.metrics.Record(e.clock.Elapsed())

	e.mu.Lock()
	e.result = res
	e.mu.Unlock()

	report(res)
	core.Logger().Info("Scene evaluated", "took", e.clock.Elapsed(), "avg", e.metrics.Average(), "runs", e.metrics.Count())
	return nil
}

func report(res *scene.Result) {
	log := core.Logger()
	for _, n := range res.Nodes {
		log.Info("node", "name", n.Name, "position", fmtVec3(n.Position), "euler", fmtVec3(n.Euler), "scale", fmtVec3(n.Scale), "type", n.Type)
	}
	for _, c := range res.Cameras {
		f := c.Frustum
		log.Info("camera", "name", c.Name, "projection", c.Projection, "position", fmtVec3(c.Position), "forward", fmtVec3(c.Forward),
			"near", f.ZNear, "far", f.ZFar, "left", f.Left, "right", f.Right, "bottom", f.Bottom, "top", f.Top)
	}
	for _, p := range res.Points {
		for i, v := range p.Values {
			if p.Viewport != nil {
				log.Info("point", "set", p.Name, "index", i, "value", fmtVec3(v), "viewport", fmtVec3(p.Viewport[i]), "visible", p.Visible[i])
				continue
			}
			log.Info("point", "set", p.Name, "index", i, "value", fmtVec3(v))
		}
	}
}

func fmtVec3(v math.Vec3) string {
	return fmt.Sprintf("[%.3f, %.3f, %.3f]", v.X, v.Y, v.Z)
}

// Result is the latest successful evaluation, or nil before the first.
func (e *Engine) Result() *scene.Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.result
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

func (e *Engine) Stage() Stage {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentStage
}

func (e *Engine) Shutdown() error {
	e.shutdownOnce.Do(func() {
		e.mu.Lock()
		e.currentStage = EngineStageShuttingDown
		e.mu.Unlock()

		var errs []error
		if e.watcher != nil {
			errs = append(errs, e.watcher.Close())
		}
		if e.systemManager != nil {
			errs = append(errs, e.systemManager.Shutdown())
		}
		e.shutdownErr = errors.Join(errs...)
		core.LogInfo("Engine shut down")
	})
	return e.shutdownErr
}
