package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workerPoolTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "worker_pool",
		Name:      "tasks_total",
		Help:      "Count of tasks executed by the worker pool.",
	}, []string{"task", "status"})
	workerPoolTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "worker_pool",
		Name:      "task_duration_seconds",
		Help:      "Duration of worker pool tasks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task", "status"})
)

// WorkerPool tracks metrics for dispatched tasks.
type WorkerPool struct{}

// NewWorkerPool constructs a WorkerPool metrics collector.
func NewWorkerPool() *WorkerPool {
	return &WorkerPool{}
}

// ObserveTask records a task outcome and duration.
func (m WorkerPool) ObserveTask(task string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if task == "" {
		task = "unknown"
	}
	workerPoolTasksTotal.WithLabelValues(task, status).Inc()
	workerPoolTaskDuration.WithLabelValues(task, status).Observe(time.Since(started).Seconds())
}
