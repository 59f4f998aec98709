package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// Coordinator is the primary entry point: it owns the worker pool and
// drives prepare, fan-out, extraction and synthesis for each run.
type Coordinator struct {
	mu        sync.Mutex
	pool      []*core.Worker
	poolSize  int
	caps      *core.CapabilitySet
	manager   *PoolManager
	engine    *Engine
	synth     *Synthesizer
	templates *ErrorTemplates
	logger    *logging.Logger
}

// Options configures a Coordinator.
type Options struct {
	Runtime      core.AgentRuntime
	Capabilities *core.CapabilitySet
	Config       *config.Config
	Logger       *logging.Logger
}

// NewCoordinator creates a coordinator. A nil config uses defaults; a nil
// logger discards.
func NewCoordinator(opts Options) *Coordinator {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	caps := opts.Capabilities
	if caps == nil {
		caps = &core.CapabilitySet{}
	}

	registry := NewRegistry(&cfg.Profiles)
	return &Coordinator{
		poolSize:  cfg.Workers.Count,
		caps:      caps,
		manager:   NewPoolManager(opts.Runtime, registry, logger),
		engine:    NewEngine(opts.Runtime, logger, cfg.Workers.InvokeTimeout),
		synth:     NewSynthesizer(cfg.Report.QualityIndicators),
		templates: NewErrorTemplates(cfg.Report.ErrorTemplates),
		logger:    logger,
	}
}

// Run executes one coordinated research run and returns the synthesized
// report. Run never returns an error: a whole-batch failure yields the
// mode-specific fallback report instead. Pool preparation and batch
// execution are serialized under the coordinator lock, so pool mutation
// never overlaps an in-flight batch.
func (c *Coordinator) Run(ctx context.Context, query string, mode core.RunMode) string {
	if !mode.Valid() {
		mode = core.ModeStandard
	}

	runID := uuid.NewString()
	log := c.logger.WithRun(runID).WithMode(string(mode))
	log.Info("research run starting", "query_len", len(query), "pool_size", c.poolSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	workers, err := c.manager.Prepare(ctx, c.pool, mode, c.caps, c.poolSize)
	if err != nil {
		log.Error("pool preparation failed", "error", err)
		return c.templates.Render(mode, query, err)
	}
	c.pool = workers

	c.rememberf(ctx, "Research query (%s): %s", mode, query)

	results := c.engine.RunBatch(ctx, workers, query, mode)
	report := c.synth.Synthesize(results, mode, query)

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	log.Info("research run complete", "workers", len(results), "failed", failed, "report_len", len(report))

	c.rememberf(ctx, "Report produced (%s run, %d workers, %d failed)", mode, len(results), failed)

	return report
}

// Prepare ensures the pool exists for mode without running a query. Status
// output on a fresh coordinator is empty until the pool is prepared.
func (c *Coordinator) Prepare(ctx context.Context, mode core.RunMode) error {
	if !mode.Valid() {
		mode = core.ModeStandard
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	workers, err := c.manager.Prepare(ctx, c.pool, mode, c.caps, c.poolSize)
	if err != nil {
		return err
	}
	c.pool = workers
	return nil
}

// Status returns an introspection snapshot of the current pool.
func (c *Coordinator) Status() []core.WorkerStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]core.WorkerStatus, 0, len(c.pool))
	for _, w := range c.pool {
		out = append(out, core.WorkerStatus{
			Index:     w.Index,
			Name:      w.Profile.WorkerName(),
			Profile:   w.Profile.Label,
			Approach:  w.Profile.Approach,
			Intensity: w.Profile.Intensity,
			HasSearch: w.Caps.HasSearch(),
			HasMemory: w.HasMemory(),
		})
	}
	return out
}

// StatusReport renders the pool status as markdown for diagnostics.
func (c *Coordinator) StatusReport() string {
	statuses := c.Status()

	var b strings.Builder
	b.WriteString("# Research Workers Status\n")
	fmt.Fprintf(&b, "## Available Workers: %d\n\n", len(statuses))

	for _, s := range statuses {
		fmt.Fprintf(&b, "### Worker %d: %s\n", s.Index+1, s.Name)
		fmt.Fprintf(&b, "- Profile: %s\n", s.Profile)
		fmt.Fprintf(&b, "- Approach: %s\n", s.Approach)
		if s.Intensity != nil {
			fmt.Fprintf(&b, "- Intensity: %.1f\n", *s.Intensity)
		}
		fmt.Fprintf(&b, "- Search capability: %v\n", s.HasSearch)
		fmt.Fprintf(&b, "- Memory capability: %v\n\n", s.HasMemory)
	}

	b.WriteString("## Execution Mode\n")
	b.WriteString("- Parallel execution: enabled\n")
	b.WriteString("- Fault isolation: per worker\n")
	return b.String()
}

// UpdateConfig swaps the configuration-derived collaborators. Safe to call
// between runs; the coordinator lock keeps it out of in-flight batches.
func (c *Coordinator) UpdateConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.poolSize = cfg.Workers.Count
	c.manager.registry = NewRegistry(&cfg.Profiles)
	c.engine.invokeTimeout = cfg.Workers.InvokeTimeout
	c.synth = NewSynthesizer(cfg.Report.QualityIndicators)
	c.templates = NewErrorTemplates(cfg.Report.ErrorTemplates)
	c.logger.Info("coordinator configuration updated", "pool_size", c.poolSize)
}

// rememberf appends a formatted note to session memory, best effort.
func (c *Coordinator) rememberf(ctx context.Context, format string, args ...any) {
	if !c.caps.HasMemory() {
		return
	}
	note := fmt.Sprintf(format, args...)
	if err := c.caps.Memory.Append(ctx, note); err != nil {
		c.logger.Warn("memory append failed", "error", err)
	}
}
