package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Workers  WorkersConfig  `mapstructure:"workers"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
	Report   ReportConfig   `mapstructure:"report"`
	Memory   MemoryConfig   `mapstructure:"memory"`
	Runtime  RuntimeConfig  `mapstructure:"runtime"`
	API      APIConfig      `mapstructure:"api"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WorkersConfig configures the research worker pool.
type WorkersConfig struct {
	Count int `mapstructure:"count"`

	// InvokeTimeout bounds one worker's model round trip. Zero disables
	// the timeout and a stalled call stalls the whole batch.
	InvokeTimeout time.Duration `mapstructure:"invoke_timeout"`
}

// ProfilesConfig carries the human-readable approach descriptions for the
// variation profiles. Empty fields fall back to built-in text.
type ProfilesConfig struct {
	Conservative ProfileConfig `mapstructure:"conservative"`
	Balanced     ProfileConfig `mapstructure:"balanced"`
	Creative     ProfileConfig `mapstructure:"creative"`
}

// ProfileConfig describes one variation profile.
type ProfileConfig struct {
	Intensity float64 `mapstructure:"intensity"`
	Approach  string  `mapstructure:"approach"`
}

// ReportConfig configures report synthesis and output.
type ReportConfig struct {
	// QualityIndicators replaces the built-in variation-mode trailer
	// bullets when non-empty. "{agent_count}" expands to the pool size.
	QualityIndicators []string `mapstructure:"quality_indicators"`

	// ErrorTemplates override the whole-batch fallback templates, keyed
	// by mode ("standard", "variation"). Templates may reference
	// "{query}" and "{error}".
	ErrorTemplates map[string]string `mapstructure:"error_templates"`

	// Dir is where `scout research --output` saves reports.
	Dir string `mapstructure:"dir"`
}

// MemoryConfig configures the session memory capability.
type MemoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// RuntimeConfig configures the agent runtime adapter.
type RuntimeConfig struct {
	// Kind selects the runtime implementation: "cli" shells out to an
	// agent CLI; "stub" is the deterministic local runtime.
	Kind  string `mapstructure:"kind"`
	Path  string `mapstructure:"path"`
	Model string `mapstructure:"model"`
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Workers.Count <= 0 {
		return fmt.Errorf("workers.count must be positive, got %d", c.Workers.Count)
	}
	if c.Workers.InvokeTimeout < 0 {
		return fmt.Errorf("workers.invoke_timeout must not be negative")
	}
	for name, p := range map[string]ProfileConfig{
		"conservative": c.Profiles.Conservative,
		"balanced":     c.Profiles.Balanced,
		"creative":     c.Profiles.Creative,
	} {
		if p.Intensity < 0 || p.Intensity > 1 {
			return fmt.Errorf("profiles.%s.intensity must be in [0,1], got %v", name, p.Intensity)
		}
	}
	switch c.Runtime.Kind {
	case "cli", "stub":
	default:
		return fmt.Errorf("runtime.kind must be \"cli\" or \"stub\", got %q", c.Runtime.Kind)
	}
	return nil
}
