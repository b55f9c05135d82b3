package core

import (
	"sync"
	"time"

	"github.com/spaghettifunk/wankel/engine/containers"
)

const AVG_COUNT = 30

// Metrics keeps a rolling average over the last AVG_COUNT recorded
// durations (scene evaluations, batch transforms).
type Metrics struct {
	mu     sync.Mutex
	window *containers.RingQueue[time.Duration]
	sum    time.Duration
	total  uint64
	last   time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		window: containers.NewRingQueue[time.Duration](AVG_COUNT),
	}
}

func (m *Metrics) Record(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, dropped := m.window.Push(elapsed); dropped {
		m.sum -= old
	}
	m.sum += elapsed
	m.total++
	m.last = elapsed
}

// Average of the samples in the window; zero before the first Record.
func (m *Metrics) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.window.IsEmpty() {
		return 0
	}
	return m.sum / time.Duration(m.window.Len())
}

func (m *Metrics) Last() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *Metrics) Count() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
