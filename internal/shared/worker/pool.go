// Package worker runs event tasks on a fixed set of shards. Tasks sharing a
// key always land on the same shard and run in submission order; different
// keys run in parallel.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/samber/oops"
)

// Task is one unit of event processing.
type Task func(ctx context.Context)

type job struct {
	name string
	key  int64
	run  Task
}

// Pool is a sharded, bounded task queue.
type Pool struct {
	shards  []chan job
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	once    sync.Once
}

// New creates a pool with the given shard count, per-shard queue length and
// per-task timeout.
func New(shards, queueSize int, timeout time.Duration) *Pool {
	if shards < 1 {
		shards = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		shards:  make([]chan job, shards),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := range p.shards {
		p.shards[i] = make(chan job, queueSize)
	}
	return p
}

// Start launches one goroutine per shard.
func (p *Pool) Start() {
	p.once.Do(func() {
		for _, ch := range p.shards {
			p.wg.Add(1)
			go p.loop(ch)
		}
	})
}

// Stop cancels running tasks and waits for the shards to exit. Queued tasks
// that have not started are discarded.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}

// Submit enqueues a task under key. It blocks while the shard is full and
// returns false if the pool stopped first.
func (p *Pool) Submit(key int64, name string, task Task) bool {
	ch := p.shards[p.shardFor(key)]
	select {
	case <-p.ctx.Done():
		metrics.EventsDropped.WithLabelValues(name).Inc()
		return false
	default:
	}
	select {
	case ch <- job{name: name, key: key, run: task}:
		return true
	case <-p.ctx.Done():
		metrics.EventsDropped.WithLabelValues(name).Inc()
		return false
	}
}

func (p *Pool) shardFor(key int64) int {
	return int(uint64(key) % uint64(len(p.shards)))
}

func (p *Pool) loop(ch chan job) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case j := <-ch:
			p.run(j)
		}
	}
}

func (p *Pool) run(j job) {
	ctx := p.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := oops.
		With("task", j.name, "key", j.key).
		Recoverf(func() { j.run(ctx) }, "event task panicked")
	if err != nil {
		metrics.EventPanics.Inc()
		slog.Error("Event task failed", "task", j.name, "key", j.key, "error", err)
		return
	}
	metrics.EventsProcessed.WithLabelValues(j.name).Inc()
}
