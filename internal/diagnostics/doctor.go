package diagnostics

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
)

// CheckResult is one doctor check outcome.
type CheckResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// RunChecks verifies the environment a research run depends on: the agent
// runtime, the memory store location, and host resources.
func RunChecks(cfg *config.Config) []CheckResult {
	if cfg == nil {
		cfg = config.Default()
	}

	checks := []CheckResult{
		checkRuntime(cfg.Runtime),
		checkWritableDir("memory store", filepath.Dir(cfg.Memory.Path)),
		checkWritableDir("report directory", cfg.Report.Dir),
		checkResources(),
	}
	return checks
}

func checkRuntime(cfg config.RuntimeConfig) CheckResult {
	result := CheckResult{Name: "agent runtime"}

	switch cfg.Kind {
	case "stub":
		result.OK = true
		result.Detail = "stub runtime, no external binary required"
	case "cli":
		if cfg.Path == "" {
			result.Detail = "runtime.path not configured"
			return result
		}
		path, err := exec.LookPath(cfg.Path)
		if err != nil {
			result.Detail = fmt.Sprintf("agent binary %q not found in PATH", cfg.Path)
			return result
		}
		result.OK = true
		result.Detail = fmt.Sprintf("agent binary at %s", path)
	default:
		result.Detail = fmt.Sprintf("unknown runtime kind %q", cfg.Kind)
	}
	return result
}

func checkWritableDir(name, dir string) CheckResult {
	result := CheckResult{Name: name}
	if dir == "" {
		result.Detail = "not configured"
		return result
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		result.Detail = fmt.Sprintf("cannot create %s: %v", dir, err)
		return result
	}

	probe, err := os.CreateTemp(dir, ".scout-doctor-*")
	if err != nil {
		result.Detail = fmt.Sprintf("%s is not writable: %v", dir, err)
		return result
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())

	result.OK = true
	result.Detail = dir
	return result
}

func checkResources() CheckResult {
	stats := NewCollector().Collect()

	result := CheckResult{Name: "host resources", OK: true}
	result.Detail = fmt.Sprintf("cpu %.0f%%, mem %.0f%%, disk %.0f%%",
		stats.CPUPercent, stats.MemPercent, stats.DiskPercent)

	if stats.MemPercent > 95 {
		result.OK = false
		result.Detail += " (memory critically low)"
	}
	if stats.DiskPercent > 95 {
		result.OK = false
		result.Detail += " (disk critically low)"
	}
	return result
}
