package service

import (
	"testing"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

func TestRegistry_StandardProfiles(t *testing.T) {
	r := NewRegistry(nil)
	profiles := r.Profiles(core.ModeStandard, 3)

	if len(profiles) != 3 {
		t.Fatalf("got %d profiles, want 3", len(profiles))
	}
	for i, p := range profiles {
		if p.HasIntensity() {
			t.Errorf("standard profile %d should have no intensity", i)
		}
		wantLabel := string(rune('1' + i))
		if p.Label != wantLabel {
			t.Errorf("profile %d label = %q, want %q", i, p.Label, wantLabel)
		}
	}
}

func TestRegistry_VariationOrdering(t *testing.T) {
	r := NewRegistry(nil)
	profiles := r.Profiles(core.ModeVariation, 3)

	if len(profiles) != 3 {
		t.Fatalf("got %d profiles, want 3", len(profiles))
	}

	wantIDs := []string{"conservative", "balanced", "creative"}
	wantIntensity := []float64{0.2, 0.6, 0.9}
	for i, p := range profiles {
		if p.ID != wantIDs[i] {
			t.Errorf("profile %d id = %q, want %q", i, p.ID, wantIDs[i])
		}
		if !p.HasIntensity() || *p.Intensity != wantIntensity[i] {
			t.Errorf("profile %d intensity = %v, want %v", i, p.Intensity, wantIntensity[i])
		}
		if p.Approach == "" {
			t.Errorf("profile %d missing approach description", i)
		}
	}
}

func TestRegistry_ConfiguredApproaches(t *testing.T) {
	cfg := &config.ProfilesConfig{
		Conservative: config.ProfileConfig{Intensity: 0.1, Approach: "Read the primary sources"},
	}
	r := NewRegistry(cfg)
	profiles := r.Profiles(core.ModeVariation, 3)

	if *profiles[0].Intensity != 0.1 || profiles[0].Approach != "Read the primary sources" {
		t.Errorf("configured conservative profile not applied: %+v", profiles[0])
	}
	// Unset fields fall back to built-ins.
	if profiles[1].Approach != config.DefaultBalancedApproach {
		t.Errorf("balanced approach = %q, want fallback", profiles[1].Approach)
	}
	if *profiles[2].Intensity != 0.9 {
		t.Errorf("creative intensity = %v, want 0.9", *profiles[2].Intensity)
	}
}

func TestRegistry_DefaultCount(t *testing.T) {
	r := NewRegistry(nil)
	if got := len(r.Profiles(core.ModeStandard, 0)); got != core.DefaultPoolSize {
		t.Errorf("zero count should default to %d, got %d", core.DefaultPoolSize, got)
	}
}
