package workerpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrPoolClosed is returned when a task is sent to a closed pool.
var ErrPoolClosed = errors.New("worker pool closed")

// Task is a named unit of work executed by one pool worker.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Metrics records task outcomes.
type Metrics interface {
	ObserveTask(task string, err error, started time.Time)
}

type job struct {
	ctx  context.Context
	task Task
	done chan error
}

// Pool is a fixed set of workers created at construction. Tasks are assigned round-robin
// and the sender blocks until its task has finished.
type Pool struct {
	logger  *zap.Logger
	metrics Metrics
	queues  []chan job
	next    atomic.Uint64
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts size workers. A non-positive size uses the number of CPUs.
func NewPool(size int, logger *zap.Logger, metrics Metrics) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{
		logger:  logger,
		metrics: metrics,
		queues:  make([]chan job, size),
	}
	for i := range p.queues {
		q := make(chan job)
		p.queues[i] = q
		p.wg.Add(1)
		go p.work(i, q)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.queues)
}

// Send runs task on the next worker and waits for its result.
func (p *Pool) Send(ctx context.Context, task Task) error {
	done, err := p.dispatch(ctx, task)
	if err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendAll dispatches every task and waits until all dispatched tasks have returned.
// A failing task does not stop its siblings; all errors are combined.
func (p *Pool) SendAll(ctx context.Context, tasks []Task) error {
	dones := make([]chan error, 0, len(tasks))
	var errs error
	for _, task := range tasks {
		done, err := p.dispatch(ctx, task)
		if err != nil {
			errs = multierr.Append(errs, err)
			break
		}
		dones = append(dones, done)
	}
	for _, done := range dones {
		errs = multierr.Append(errs, <-done)
	}
	return errs
}

// Close stops accepting tasks and waits for the workers to exit.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, q := range p.queues {
		close(q)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) dispatch(ctx context.Context, task Task) (chan error, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	n := p.next.Add(1) - 1
	q := p.queues[n%uint64(len(p.queues))]
	j := job{ctx: ctx, task: task, done: make(chan error, 1)}

	select {
	case q <- j:
		return j.done, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pool) work(id int, q <-chan job) {
	defer p.wg.Done()
	for j := range q {
		j.done <- p.run(id, j)
	}
}

func (p *Pool) run(id int, j job) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", zap.String("task", j.task.Name), zap.Int("worker", id), zap.Any("panic", r))
			err = fmt.Errorf("task %s panicked: %v", j.task.Name, r)
		}
		p.metrics.ObserveTask(j.task.Name, err, start)
	}()

	if err := j.ctx.Err(); err != nil {
		return err
	}
	return j.task.Run(j.ctx)
}
