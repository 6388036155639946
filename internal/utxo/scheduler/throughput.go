package scheduler

import (
	"sync"
	"time"
)

// ThroughputWindow is the number of recent blocks the sync rate is averaged over.
const ThroughputWindow = 144

// Throughput keeps the processing durations of the most recent blocks.
type Throughput struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	total   time.Duration
}

// NewThroughput builds a window of size samples.
func NewThroughput(size int) *Throughput {
	if size <= 0 {
		size = ThroughputWindow
	}
	return &Throughput{samples: make([]time.Duration, 0, size)}
}

// Add records the duration of one block, evicting the oldest sample when the window is full.
func (t *Throughput) Add(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.samples) < cap(t.samples) {
		t.samples = append(t.samples, d)
		t.total += d
		return
	}
	t.total += d - t.samples[t.next]
	t.samples[t.next] = d
	t.next = (t.next + 1) % len(t.samples)
}

// BlocksPerSecond returns the average rate over the window, zero without samples.
func (t *Throughput) BlocksPerSecond() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.total <= 0 {
		return 0
	}
	return float64(len(t.samples)) / t.total.Seconds()
}

// ETA estimates the time needed to process remaining blocks at the average rate.
func (t *Throughput) ETA(remaining int64) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if remaining <= 0 || len(t.samples) == 0 {
		return 0
	}
	return t.total / time.Duration(len(t.samples)) * time.Duration(remaining)
}
