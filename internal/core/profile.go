package core

import "fmt"

// RunMode selects how the worker pool is configured for a run.
type RunMode string

const (
	// ModeStandard runs neutral workers with no intensity applied.
	ModeStandard RunMode = "standard"
	// ModeVariation runs workers diversified across analytical intensities.
	ModeVariation RunMode = "variation"
)

// Valid reports whether the mode is a known run mode.
func (m RunMode) Valid() bool {
	return m == ModeStandard || m == ModeVariation
}

// ProfileType classifies a profile by its analytical intensity.
type ProfileType string

const (
	ProfileConservative ProfileType = "conservative"
	ProfileBalanced     ProfileType = "balanced"
	ProfileCreative     ProfileType = "creative"
)

// ClassifyIntensity maps a continuous intensity value to a discrete
// profile type. This is the only place that derives a type from an
// intensity value.
func ClassifyIntensity(t float64) ProfileType {
	switch {
	case t <= 0.3:
		return ProfileConservative
	case t <= 0.7:
		return ProfileBalanced
	default:
		return ProfileCreative
	}
}

// Profile is a named analytical configuration assigned to one worker.
// Immutable once constructed for a run.
type Profile struct {
	ID         string
	Label      string
	Intensity  *float64 // nil for standard (neutral) workers
	Approach   string
	NameSuffix string
}

// HasIntensity reports whether the profile carries an intensity value.
func (p Profile) HasIntensity() bool {
	return p.Intensity != nil
}

// Type returns the profile type derived from intensity, or ProfileBalanced
// for neutral profiles.
func (p Profile) Type() ProfileType {
	if p.Intensity == nil {
		return ProfileBalanced
	}
	return ClassifyIntensity(*p.Intensity)
}

// WorkerName returns the display name for a worker bound to this profile.
func (p Profile) WorkerName() string {
	return fmt.Sprintf("SCOUT_%s", p.NameSuffix)
}

// Equal reports whether two profiles describe the same binding. Identity
// is the ID plus intensity; approach text is presentation only.
func (p Profile) Equal(other Profile) bool {
	if p.ID != other.ID {
		return false
	}
	if (p.Intensity == nil) != (other.Intensity == nil) {
		return false
	}
	if p.Intensity != nil && *p.Intensity != *other.Intensity {
		return false
	}
	return true
}

// FloatPtr is a convenience for building profiles with an intensity.
func FloatPtr(v float64) *float64 { return &v }
