package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/adapters/memory"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/adapters/runtime"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/adapters/search"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/service"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	quiet     bool

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Parallel research worker coordinator",
	Long: `scout fans a research query out to a fixed pool of worker agents with
different analytical profiles, extracts their findings and synthesizes one
report. Standard mode reuses the pool across runs; variation mode rebuilds
it with conservative, balanced and creative intensity settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .scout.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-essential output")
}

// newLoader builds a config loader with CLI flags bound at highest
// precedence.
func newLoader() *config.Loader {
	v := viper.New()
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	loader := config.NewLoaderWithViper(v)
	if cfgFile != "" {
		loader = loader.WithConfigFile(cfgFile)
	}
	return loader
}

func loadConfig() (*config.Config, *config.Loader, error) {
	loader := newLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader, nil
}

func newLogger(cfg *config.Config) *logging.Logger {
	if quiet {
		return logging.NewNop()
	}
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// buildCoordinator assembles the runtime, capabilities and coordinator from
// configuration. The returned cleanup closes the memory store.
func buildCoordinator(cfg *config.Config, logger *logging.Logger) (*service.Coordinator, func(), error) {
	rt, err := runtime.New(cfg.Runtime, logger)
	if err != nil {
		return nil, nil, err
	}

	caps := &core.CapabilitySet{Search: search.Default()}
	cleanup := func() {}

	if cfg.Memory.Enabled {
		store, err := memory.NewSQLiteMemory(cfg.Memory.Path)
		if err != nil {
			return nil, nil, err
		}
		caps.Memory = store
		cleanup = func() { _ = store.Close() }
	}

	coordinator := service.NewCoordinator(service.Options{
		Runtime:      rt,
		Capabilities: caps,
		Config:       cfg,
		Logger:       logger,
	})
	return coordinator, cleanup, nil
}
