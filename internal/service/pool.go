package service

import (
	"context"
	"fmt"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// PoolManager owns the worker set and reconciles it against a requested
// mode and size. Preparation is synchronous; callers must never run it
// concurrently with an in-flight batch.
type PoolManager struct {
	runtime  core.AgentRuntime
	registry *Registry
	logger   *logging.Logger
}

// NewPoolManager creates a pool manager.
func NewPoolManager(runtime core.AgentRuntime, registry *Registry, logger *logging.Logger) *PoolManager {
	return &PoolManager{
		runtime:  runtime,
		registry: registry,
		logger:   logger,
	}
}

// Prepare reconciles pool to hold target workers for the given mode and
// returns the workers to use for the batch, in index order.
//
// Variation mode always constructs fresh workers bound to the variation
// profiles in order; stale intensity bindings from a prior run must never
// survive. Standard mode reuses existing workers where it can, repairing
// individual workers that lack a required capability and constructing only
// the shortfall.
func (m *PoolManager) Prepare(ctx context.Context, pool []*core.Worker, mode core.RunMode, caps *core.CapabilitySet, target int) ([]*core.Worker, error) {
	if m.runtime == nil {
		return nil, core.ErrPool(core.CodeRuntimeMissing, "no agent runtime configured")
	}
	if target <= 0 {
		target = core.DefaultPoolSize
	}

	profiles := m.registry.Profiles(mode, target)

	if mode == core.ModeVariation {
		// Variation bindings are never trusted across runs: even a pool
		// that appears to match is discarded so no stale intensity
		// binding can leak from a prior run.
		if m.poolMatches(pool, profiles) {
			m.logger.Debug("variation pool matches but will be rebuilt", "count", target)
		} else {
			m.logger.Info("pool does not match variation profiles, rebuilding", "have", len(pool), "target", target)
		}

		fresh := make([]*core.Worker, 0, target)
		for i, p := range profiles {
			w, err := m.construct(ctx, i, p, caps)
			if err != nil {
				return nil, err
			}
			fresh = append(fresh, w)
		}
		return fresh, nil
	}

	// Standard mode: reuse the existing prefix.
	if len(pool) >= target {
		reused := pool[:target]
		for i, w := range reused {
			if caps.HasMemory() && !w.HasMemory() {
				m.logger.Info("repairing worker missing memory capability", "worker", w.Profile.WorkerName())
				repaired, err := m.construct(ctx, i, w.Profile, caps)
				if err != nil {
					return nil, err
				}
				reused[i] = repaired
			}
		}
		m.logger.Debug("reusing existing workers", "count", target)
		return reused, nil
	}

	// Construct only the missing workers.
	result := make([]*core.Worker, 0, target)
	result = append(result, pool...)
	for i := len(pool); i < target; i++ {
		w, err := m.construct(ctx, i, profiles[i], caps)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	m.logger.Info("extended worker pool", "have", len(pool), "target", target)
	return result, nil
}

// poolMatches reports whether the pool's profile bindings equal the wanted
// ordering by count and identity.
func (m *PoolManager) poolMatches(pool []*core.Worker, wanted []core.Profile) bool {
	if len(pool) != len(wanted) {
		return false
	}
	for i, w := range pool {
		if !w.Profile.Equal(wanted[i]) {
			return false
		}
	}
	return true
}

func (m *PoolManager) construct(ctx context.Context, index int, profile core.Profile, caps *core.CapabilitySet) (*core.Worker, error) {
	session, err := m.runtime.Construct(ctx, profile, caps)
	if err != nil {
		return nil, core.ErrPool(core.CodeConstructFailed,
			fmt.Sprintf("constructing worker %s", profile.WorkerName())).WithCause(err)
	}

	if profile.HasIntensity() {
		m.logger.Info("constructed worker", "worker", profile.WorkerName(), "intensity", *profile.Intensity)
	} else {
		m.logger.Info("constructed worker", "worker", profile.WorkerName())
	}

	return &core.Worker{
		Index:   index,
		Profile: profile,
		Caps:    caps, // shared reference, never copied
		Session: session,
	}, nil
}
