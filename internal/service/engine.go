package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// Engine fans one query out across a borrowed worker set and gathers the
// results. One task per worker, no additional queueing: the pool size is
// the admission control.
type Engine struct {
	runtime core.AgentRuntime
	logger  *logging.Logger

	// invokeTimeout bounds each worker's round trip. Zero means no bound:
	// a stalled call then stalls the whole fan-in barrier.
	invokeTimeout time.Duration
}

// NewEngine creates an execution engine.
func NewEngine(runtime core.AgentRuntime, logger *logging.Logger, invokeTimeout time.Duration) *Engine {
	return &Engine{
		runtime:       runtime,
		logger:        logger,
		invokeTimeout: invokeTimeout,
	}
}

// RunBatch launches one task per worker and waits for all of them. A
// task's failure is converted into its WorkerResult and never aborts the
// batch. Results come back indexed by worker index, not completion order.
func (e *Engine) RunBatch(ctx context.Context, workers []*core.Worker, query string, mode core.RunMode) []core.WorkerResult {
	results := make([]core.WorkerResult, len(workers))

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		w := w
		g.Go(func() error {
			// Tasks never return an error: each slot in results is
			// written exactly once, success or failure.
			results[w.Index] = e.runWorker(gctx, w, query, mode)
			return nil
		})
	}
	_ = g.Wait() // fan-in barrier

	return results
}

// runWorker drives a single worker turn and converts every failure mode
// into a WorkerResult.
func (e *Engine) runWorker(ctx context.Context, w *core.Worker, query string, mode core.RunMode) (result core.WorkerResult) {
	log := e.logger.WithWorker(w.Profile.WorkerName())

	result = core.WorkerResult{
		Index:   w.Index,
		Profile: w.Profile,
		Status:  core.StatusOK,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("worker task panicked", "panic", r)
			result.Status = core.StatusFailed
			result.Err = fmt.Sprintf("worker panic: %v", r)
			result.Text = ""
		}
	}()

	if e.invokeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.invokeTimeout)
		defer cancel()
	}

	opts := core.InvokeOptions{}
	if mode == core.ModeVariation && w.Profile.HasIntensity() {
		// Intensity is applied per invocation, not baked into the
		// session, so profile semantics stay declarative.
		opts.Intensity = w.Profile.Intensity
	}

	log.Debug("worker turn starting")
	trace, err := e.runtime.Invoke(ctx, w.Session, query, opts)
	if err == nil && trace != nil && trace.Err != nil {
		err = trace.Err
	}
	if err != nil {
		log.Error("worker turn failed", "error", err)
		result.Status = core.StatusFailed
		result.Err = err.Error()
		return result
	}

	result.Text = Extract(trace, w.Profile.WorkerName(), log)
	log.Debug("worker turn complete", "events", len(trace.Events))
	return result
}
