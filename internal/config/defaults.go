package config

import "github.com/spf13/viper"

// Built-in approach descriptions, used when the config file carries none.
// These mirror the variation profile semantics: low intensity reads
// narrowly and precisely, high intensity reads broadly.
const (
	DefaultConservativeApproach = "Conservative detailed analysis"
	DefaultBalancedApproach     = "Balanced analysis"
	DefaultCreativeApproach     = "Creative divergent thinking"
)

func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	// Worker pool defaults
	v.SetDefault("workers.count", 3)
	v.SetDefault("workers.invoke_timeout", "0s")

	// Variation profile defaults
	v.SetDefault("profiles.conservative.intensity", 0.2)
	v.SetDefault("profiles.conservative.approach", DefaultConservativeApproach)
	v.SetDefault("profiles.balanced.intensity", 0.6)
	v.SetDefault("profiles.balanced.approach", DefaultBalancedApproach)
	v.SetDefault("profiles.creative.intensity", 0.9)
	v.SetDefault("profiles.creative.approach", DefaultCreativeApproach)

	// Report defaults: empty indicator/template lists mean built-ins.
	v.SetDefault("report.quality_indicators", []string{})
	v.SetDefault("report.error_templates", map[string]string{})
	v.SetDefault("report.dir", ".scout/reports")

	// Session memory defaults
	v.SetDefault("memory.enabled", true)
	v.SetDefault("memory.path", ".scout/memory.db")

	// Runtime defaults
	v.SetDefault("runtime.kind", "cli")
	v.SetDefault("runtime.path", "claude")
	v.SetDefault("runtime.model", "")

	// API defaults
	v.SetDefault("api.addr", "127.0.0.1:8787")
	v.SetDefault("api.allowed_origins", []string{"http://localhost:5173"})
}

// Default returns the configuration produced by defaults alone.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always unmarshal cleanly.
	_ = v.Unmarshal(&cfg)
	return &cfg
}
