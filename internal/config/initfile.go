package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// initFileContent is the YAML skeleton written by `scout init`.
type initFileContent struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Workers struct {
		Count         int    `yaml:"count"`
		InvokeTimeout string `yaml:"invoke_timeout"`
	} `yaml:"workers"`
	Profiles map[string]map[string]any `yaml:"profiles"`
	Report   struct {
		QualityIndicators []string `yaml:"quality_indicators"`
		Dir               string   `yaml:"dir"`
	} `yaml:"report"`
	Memory struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"memory"`
	Runtime struct {
		Kind  string `yaml:"kind"`
		Path  string `yaml:"path"`
		Model string `yaml:"model"`
	} `yaml:"runtime"`
}

// WriteInitFile writes a default .scout.yaml at path. Fails if the file
// already exists; the write itself is atomic.
func WriteInitFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	cfg := Default()

	var out initFileContent
	out.Log.Level = cfg.Log.Level
	out.Log.Format = cfg.Log.Format
	out.Workers.Count = cfg.Workers.Count
	out.Workers.InvokeTimeout = cfg.Workers.InvokeTimeout.String()
	out.Profiles = map[string]map[string]any{
		"conservative": {"intensity": cfg.Profiles.Conservative.Intensity, "approach": cfg.Profiles.Conservative.Approach},
		"balanced":     {"intensity": cfg.Profiles.Balanced.Intensity, "approach": cfg.Profiles.Balanced.Approach},
		"creative":     {"intensity": cfg.Profiles.Creative.Intensity, "approach": cfg.Profiles.Creative.Approach},
	}
	out.Report.QualityIndicators = cfg.Report.QualityIndicators
	out.Report.Dir = cfg.Report.Dir
	out.Memory.Enabled = cfg.Memory.Enabled
	out.Memory.Path = cfg.Memory.Path
	out.Runtime.Kind = cfg.Runtime.Kind
	out.Runtime.Path = cfg.Runtime.Path
	out.Runtime.Model = cfg.Runtime.Model

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	return renameio.WriteFile(path, data, 0o644)
}
