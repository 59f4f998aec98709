package service

import (
	"strconv"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

// Registry supplies the ordered profile set for a run mode.
type Registry struct {
	profiles config.ProfilesConfig
}

// NewRegistry creates a registry from configuration. A nil config falls
// back to the built-in variation profiles.
func NewRegistry(cfg *config.ProfilesConfig) *Registry {
	if cfg == nil {
		cfg = &config.Default().Profiles
	}
	return &Registry{profiles: *cfg}
}

// Profiles returns the ordered profiles for a mode and pool size.
//
// Standard mode yields neutral profiles labelled "1".."N". Variation mode
// yields exactly the conservative, balanced, creative ordering; a target
// beyond three repeats the pattern so the ordering stays deterministic.
func (r *Registry) Profiles(mode core.RunMode, count int) []core.Profile {
	if count <= 0 {
		count = core.DefaultPoolSize
	}

	if mode == core.ModeVariation {
		base := r.variationProfiles()
		out := make([]core.Profile, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, base[i%len(base)])
		}
		return out
	}

	out := make([]core.Profile, 0, count)
	for i := 0; i < count; i++ {
		label := strconv.Itoa(i + 1)
		out = append(out, core.Profile{
			ID:         "standard-" + label,
			Label:      label,
			Approach:   "Standard analysis",
			NameSuffix: label,
		})
	}
	return out
}

func (r *Registry) variationProfiles() []core.Profile {
	conservative := profileOrFallback(r.profiles.Conservative, 0.2, config.DefaultConservativeApproach)
	balanced := profileOrFallback(r.profiles.Balanced, 0.6, config.DefaultBalancedApproach)
	creative := profileOrFallback(r.profiles.Creative, 0.9, config.DefaultCreativeApproach)

	return []core.Profile{
		{
			ID:         string(core.ProfileConservative),
			Label:      string(core.ProfileConservative),
			Intensity:  core.FloatPtr(conservative.Intensity),
			Approach:   conservative.Approach,
			NameSuffix: "CONSERVATIVE",
		},
		{
			ID:         string(core.ProfileBalanced),
			Label:      string(core.ProfileBalanced),
			Intensity:  core.FloatPtr(balanced.Intensity),
			Approach:   balanced.Approach,
			NameSuffix: "BALANCED",
		},
		{
			ID:         string(core.ProfileCreative),
			Label:      string(core.ProfileCreative),
			Intensity:  core.FloatPtr(creative.Intensity),
			Approach:   creative.Approach,
			NameSuffix: "CREATIVE",
		},
	}
}

func profileOrFallback(p config.ProfileConfig, intensity float64, approach string) config.ProfileConfig {
	if p.Intensity == 0 {
		p.Intensity = intensity
	}
	if p.Approach == "" {
		p.Approach = approach
	}
	return p
}
