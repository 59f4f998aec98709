package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

func standardResults(texts ...string) []core.WorkerResult {
	results := make([]core.WorkerResult, len(texts))
	for i, text := range texts {
		results[i] = core.WorkerResult{
			Index:   i,
			Profile: core.Profile{ID: "standard-" + string(rune('1'+i)), Label: string(rune('1' + i)), NameSuffix: string(rune('1' + i))},
			Text:    text,
			Status:  core.StatusOK,
		}
	}
	return results
}

func variationResults(texts ...string) []core.WorkerResult {
	profiles := []core.Profile{
		{ID: "conservative", Label: "Conservative", Intensity: core.FloatPtr(0.2), Approach: "Conservative detailed analysis", NameSuffix: "CONSERVATIVE"},
		{ID: "balanced", Label: "Balanced", Intensity: core.FloatPtr(0.6), Approach: "Balanced analysis", NameSuffix: "BALANCED"},
		{ID: "creative", Label: "Creative", Intensity: core.FloatPtr(0.9), Approach: "Creative divergent thinking", NameSuffix: "CREATIVE"},
	}
	results := make([]core.WorkerResult, len(texts))
	for i, text := range texts {
		results[i] = core.WorkerResult{Index: i, Profile: profiles[i], Text: text, Status: core.StatusOK}
	}
	return results
}

func TestSynthesizeStandard_SectionsInIndexOrder(t *testing.T) {
	synth := NewSynthesizer(nil)
	report := synth.Synthesize(standardResults("alpha", "beta", "gamma"), core.ModeStandard, "q")

	require.True(t, strings.HasPrefix(report, "# Comprehensive Research Results - Parallel Analysis"))
	assert.Contains(t, report, "## Executive Summary")
	assert.Contains(t, report, "Integrated results from parallel investigation by 3 research workers.")

	p1 := strings.Index(report, "## Perspective 1 - SCOUT_1")
	p2 := strings.Index(report, "## Perspective 2 - SCOUT_2")
	p3 := strings.Index(report, "## Perspective 3 - SCOUT_3")
	require.True(t, p1 >= 0 && p2 >= 0 && p3 >= 0, "missing perspective headers:\n%s", report)
	assert.True(t, p1 < p2 && p2 < p3, "sections out of index order")

	a := strings.Index(report, "alpha")
	b := strings.Index(report, "beta")
	g := strings.Index(report, "gamma")
	assert.True(t, p1 < a && a < p2, "alpha not inside perspective 1")
	assert.True(t, p2 < b && b < p3, "beta not inside perspective 2")
	assert.True(t, p3 < g, "gamma not inside perspective 3")

	assert.Contains(t, report, "## Integrated Analysis")
}

func TestSynthesizeStandard_FailedWorkerSection(t *testing.T) {
	results := standardResults("ok one", "", "ok three")
	results[1].Status = core.StatusFailed
	results[1].Err = "invocation timed out"

	report := NewSynthesizer(nil).Synthesize(results, core.ModeStandard, "q")

	assert.Contains(t, report, "Error: invocation timed out")
	assert.Contains(t, report, "ok one")
	assert.Contains(t, report, "ok three")
}

func TestSynthesizeVariation_Layout(t *testing.T) {
	report := NewSynthesizer(nil).Synthesize(variationResults("cautious take", "even take", "wild take"), core.ModeVariation, "quantum computing")

	require.True(t, strings.HasPrefix(report, "# Intensity Variation Research Results"))
	assert.Contains(t, report, "## Research Query\nquantum computing")
	assert.Contains(t, report, "## Variation Approach")

	h1 := strings.Index(report, "### Intensity 0.2 - Conservative detailed analysis")
	h2 := strings.Index(report, "### Intensity 0.6 - Balanced analysis")
	h3 := strings.Index(report, "### Intensity 0.9 - Creative divergent thinking")
	require.True(t, h1 >= 0 && h2 >= 0 && h3 >= 0, "missing intensity headers:\n%s", report)
	assert.True(t, h1 < h2 && h2 < h3, "variation sections out of order")

	assert.Contains(t, report, "**Approach**: Conservative detailed analysis")
	assert.Contains(t, report, "## Quality Indicators")
	assert.Contains(t, report, "- Parallel workers: 3 concurrent executions")
}

func TestSynthesizeVariation_QualityIndicatorOverrides(t *testing.T) {
	synth := NewSynthesizer([]string{"ran {agent_count} workers", "custom check"})
	report := synth.Synthesize(variationResults("a", "b", "c"), core.ModeVariation, "q")

	assert.Contains(t, report, "- ran 3 workers")
	assert.Contains(t, report, "- custom check")
	assert.NotContains(t, report, "Intensity variation: 0.2")
}

func TestSynthesize_DeterministicAcrossCalls(t *testing.T) {
	results := standardResults("one", "two", "three")
	synth := NewSynthesizer(nil)

	first := synth.Synthesize(results, core.ModeStandard, "q")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, synth.Synthesize(results, core.ModeStandard, "q"))
	}
}
