package systems

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/wankel/engine/core"
	"github.com/spaghettifunk/wankel/engine/math"
)

// JobTask is a unit of work for the job system. Only OnStart is required.
type JobTask struct {
	OnStart    func(ctx context.Context) error
	OnComplete func()
	OnFailure  func(err error)

	// Runs after OnComplete or OnFailure.
	OnCompletionCallback func()
}

type queuedJob struct {
	ctx  context.Context
	task JobTask
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan queuedJob
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var (
	ErrNoWorkers            = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChannelSize  = errors.New("attempting to create worker pool with a negative channel size")
	ErrJobSystemClosed      = errors.New("job system is shut down")
	ErrLengthMismatch       = errors.New("input and output lengths differ")
	ErrUnknownTransformMode = errors.New("unknown transform mode")
)

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan queuedJob, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job queuedJob) {
	err := job.ctx.Err()
	if err == nil {
		err = job.task.OnStart(job.ctx)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			core.LogError(err.Error())
		}
		if job.task.OnFailure != nil {
			job.task.OnFailure(err)
		}
	} else if job.task.OnComplete != nil {
		job.task.OnComplete()
	}

	if job.task.OnCompletionCallback != nil {
		job.task.OnCompletionCallback()
	}
}

func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down. Queued jobs still run; later
 * submissions fail with ErrJobSystemClosed.
 */
func (js *JobSystem) Shutdown() error {
	js.mu.Lock()
	if js.closed {
		js.mu.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.mu.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Queues jt for execution, blocking while the queue is full.
 */
func (js *JobSystem) Submit(ctx context.Context, jt JobTask) error {
	if jt.OnStart == nil {
		return fmt.Errorf("submit job: missing OnStart")
	}
	js.mu.RLock()
	defer js.mu.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	select {
	case js.jobQueue <- queuedJob{ctx: ctx, task: jt}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddWorkNonBlocking queues jt from a new goroutine and returns immediately.
func (js *JobSystem) AddWorkNonBlocking(ctx context.Context, jt JobTask) {
	go func() {
		if err := js.Submit(ctx, jt); err != nil {
			core.LogWarn("job dropped: %s", err)
		}
	}()
}

// TransformMode selects how TransformPoints treats its input.
type TransformMode uint8

const (
	// Positions: rotation, scale and translation.
	TransformModePoint TransformMode = iota
	// Directions: the 3x3 block only.
	TransformModeVector
	// Positions with the perspective divide. Points on the w = 0 plane
	// come out as the zero vector.
	TransformModeProjective
)

func (m TransformMode) String() string {
	switch m {
	case TransformModePoint:
		return "point"
	case TransformModeVector:
		return "vector"
	case TransformModeProjective:
		return "projective"
	default:
		return fmt.Sprintf("TransformMode(%d)", uint8(m))
	}
}

// MinChunkSize is the smallest batch handed to one worker.
const MinChunkSize = 256

/**
 * @brief Writes m applied to every element of in to the matching element
 * of out, fanning the batch out over the workers in chunks. in and out
 * must have the same length and may be the same slice.
 *
 * Must not be called from inside a job: it waits for the chunks it queues.
 */
func (js *JobSystem) TransformPoints(ctx context.Context, m math.Mat4, mode TransformMode, in, out []math.Vec3) error {
	if len(in) != len(out) {
		return fmt.Errorf("transform %d points into %d: %w", len(in), len(out), ErrLengthMismatch)
	}
	kernel, err := transformKernel(mode)
	if err != nil {
		return err
	}
	if len(in) == 0 {
		return nil
	}

	chunk := (len(in) + js.numWorkers - 1) / js.numWorkers
	if chunk < MinChunkSize {
		chunk = MinChunkSize
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	for lo := 0; lo < len(in); lo += chunk {
		hi := lo + chunk
		if hi > len(in) {
			hi = len(in)
		}
		src, dst := in[lo:hi], out[lo:hi]
		wg.Add(1)
		err := js.Submit(ctx, JobTask{
			OnStart: func(context.Context) error {
				kernel(m, src, dst)
				return nil
			},
			OnFailure:            fail,
			OnCompletionCallback: wg.Done,
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return fmt.Errorf("transform points: %w", firstErr)
	}
	return nil
}

func transformKernel(mode TransformMode) (func(m math.Mat4, in, out []math.Vec3), error) {
	switch mode {
	case TransformModePoint:
		return math.TransformPoints3x4, nil
	case TransformModeVector:
		return math.TransformPoints3x3, nil
	case TransformModeProjective:
		return projectPoints, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransformMode, mode)
	}
}

func projectPoints(m math.Mat4, in, out []math.Vec3) {
	for i := range in {
		out[i], _ = m.PerspectiveMultiplyPoint3(in[i])
	}
}
