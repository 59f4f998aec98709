// Package runtime provides core.AgentRuntime implementations: a CLI-backed
// runtime that shells out to an agent binary, and a deterministic stub for
// offline use and testing.
package runtime

import (
	"fmt"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// New builds the runtime selected by configuration.
func New(cfg config.RuntimeConfig, logger *logging.Logger) (core.AgentRuntime, error) {
	switch cfg.Kind {
	case "cli":
		return NewCLIRuntime(cfg, logger)
	case "stub":
		return NewStubRuntime(logger), nil
	default:
		return nil, core.ErrValidation(core.CodeRuntimeMissing,
			fmt.Sprintf("unknown runtime kind %q (expected cli or stub)", cfg.Kind))
	}
}

// instructions renders the role prompt a worker session is constructed with.
func instructions(profile core.Profile) string {
	base := fmt.Sprintf("You are research worker %s. Investigate the given query thoroughly and report findings as plain text.", profile.WorkerName())
	if profile.Approach != "" {
		base += fmt.Sprintf(" Analytical approach: %s.", profile.Approach)
	}
	if profile.HasIntensity() {
		base += fmt.Sprintf(" Operate at intensity %.1f.", *profile.Intensity)
	}
	return base
}
