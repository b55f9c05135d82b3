package systems

import (
	"errors"
	"fmt"
	mt "math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/wankel/engine/core"
	"github.com/spaghettifunk/wankel/engine/renderer/components"
)

// InvalidCameraID marks a free camera slot.
const InvalidCameraID uint16 = mt.MaxUint16

var (
	ErrInvalidCameraCount = errors.New("camera system needs room for at least one camera")
	ErrNoFreeCameraSlot   = errors.New("no free camera slot")
)

type CameraSystem struct {
	Config  *CameraSystemConfig
	mu      sync.Mutex
	Lookup  map[string]uint16
	Cameras []*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
}

func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config == nil || config.MaxCameraCount == 0 || config.MaxCameraCount == InvalidCameraID {
		return nil, ErrInvalidCameraCount
	}
	cs := &CameraSystem{
		Config:  config,
		Cameras: make([]*components.CameraLookup, config.MaxCameraCount),
		Lookup:  make(map[string]uint16, config.MaxCameraCount),
	}
	// Invalidate all cameras in the array.
	for i := range cs.Cameras {
		cs.Cameras[i] = &components.CameraLookup{
			ID:             InvalidCameraID,
			ReferenceCount: 0,
		}
	}
	// Setup default camera.
	cs.DefaultCamera = components.NewCamera()
	return cs, nil
}

/**
 * @brief Shuts down the camera system, dropping every registered camera.
 */
func (cs *CameraSystem) Shutdown() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for name, id := range cs.Lookup {
		cs.Cameras[id].Camera = nil
		cs.Cameras[id].ID = InvalidCameraID
		cs.Cameras[id].ReferenceCount = 0
		delete(cs.Lookup, name)
	}
	return nil
}

/**
 * @brief Acquires a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	id, ok := cs.Lookup[name]
	if !ok {
		// Find free slot
		id = InvalidCameraID
		for i, l := range cs.Cameras {
			if l.ID == InvalidCameraID {
				id = uint16(i)
				break
			}
		}
		if id == InvalidCameraID {
			err := fmt.Errorf("acquire camera %q: %w (max %d)", name, ErrNoFreeCameraSlot, cs.Config.MaxCameraCount)
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		cs.Cameras[id].Camera = components.NewCamera()
		cs.Cameras[id].ID = id
		cs.Lookup[name] = id
	}
	cs.Cameras[id].ReferenceCount++
	return cs.Cameras[id].Camera, nil
}

// AcquireUnique registers a camera under a freshly generated name.
func (cs *CameraSystem) AcquireUnique() (string, *components.Camera, error) {
	name := uuid.NewString()
	c, err := cs.Acquire(name)
	if err != nil {
		return "", nil, err
	}
	return name, c, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the slot is usable by a new camera.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	id, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("Release of unknown camera '%s'. Nothing was done.", name)
		return
	}
	// Decrement the reference count, and reset the camera if the counter reaches 0.
	cs.Cameras[id].ReferenceCount--
	if cs.Cameras[id].ReferenceCount < 1 {
		cs.Cameras[id].Camera.Reset()
		cs.Cameras[id].Camera = nil
		cs.Cameras[id].ID = InvalidCameraID
		delete(cs.Lookup, name)
	}
}

// Get returns a registered camera without touching its reference count.
func (cs *CameraSystem) Get(name string) (*components.Camera, bool) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, true
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	id, ok := cs.Lookup[name]
	if !ok {
		return nil, false
	}
	return cs.Cameras[id].Camera, true
}

func (cs *CameraSystem) ReferenceCount(name string) uint16 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	id, ok := cs.Lookup[name]
	if !ok {
		return 0
	}
	return cs.Cameras[id].ReferenceCount
}

// Names lists the registered cameras, sorted. The default camera is not
// included.
func (cs *CameraSystem) Names() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	names := make([]string, 0, len(cs.Lookup))
	for name := range cs.Lookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/**
 * @brief Gets the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
