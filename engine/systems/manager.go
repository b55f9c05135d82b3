package systems

import (
	"errors"
)

type SystemManagerConfig struct {
	Workers        int
	QueueSize      int
	MaxCameraCount uint16
}

// SystemManager owns the engine subsystems and shuts them down together.
type SystemManager struct {
	CameraSystem *CameraSystem
	JobSystem    *JobSystem
}

func NewSystemManager(config SystemManagerConfig) (*SystemManager, error) {
	js, err := NewJobSystem(config.Workers, config.QueueSize)
	if err != nil {
		return nil, err
	}

	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: config.MaxCameraCount,
	})
	if err != nil {
		_ = js.Shutdown()
		return nil, err
	}
	return &SystemManager{
		CameraSystem: cs,
		JobSystem:    js,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	return errors.Join(
		sm.CameraSystem.Shutdown(),
		sm.JobSystem.Shutdown(),
	)
}
