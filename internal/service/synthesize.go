package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

// Synthesizer assembles per-worker sections into one report. It is a pure
// function of the ordered result list and the run mode: section order is
// always worker index order, never completion order.
type Synthesizer struct {
	// qualityIndicators replaces the built-in variation trailer bullets
	// when non-empty. "{agent_count}" expands to the worker count.
	qualityIndicators []string
}

// NewSynthesizer creates a synthesizer. indicators may be nil.
func NewSynthesizer(indicators []string) *Synthesizer {
	return &Synthesizer{qualityIndicators: indicators}
}

// Synthesize renders the final report. results must already be in worker
// index order.
func (s *Synthesizer) Synthesize(results []core.WorkerResult, mode core.RunMode, query string) string {
	if mode == core.ModeVariation {
		return s.synthesizeVariation(results, query)
	}
	return s.synthesizeStandard(results)
}

func (s *Synthesizer) synthesizeStandard(results []core.WorkerResult) string {
	var parts []string

	parts = append(parts, "# Comprehensive Research Results - Parallel Analysis")
	parts = append(parts, "## Executive Summary")
	parts = append(parts, fmt.Sprintf("Integrated results from parallel investigation by %d research workers.\n", len(results)))

	for _, r := range results {
		parts = append(parts, fmt.Sprintf("## Perspective %d - %s", r.Index+1, r.Profile.WorkerName()))
		parts = append(parts, sectionBody(r))
	}

	parts = append(parts, "\n## Integrated Analysis")
	parts = append(parts, "Integrating the multiple research results above to provide comprehensive analysis and recommendations.")

	return strings.Join(parts, "\n")
}

func (s *Synthesizer) synthesizeVariation(results []core.WorkerResult, query string) string {
	var parts []string

	parts = append(parts, "# Intensity Variation Research Results")
	parts = append(parts, "## Research Query")
	parts = append(parts, query+"\n")
	parts = append(parts, "## Variation Approach")
	parts = append(parts, "Executed diverse analytical approaches from conservative to creative using varied intensity settings.\n")

	for _, r := range results {
		parts = append(parts, fmt.Sprintf("### %s - %s", intensityLabel(r.Profile), r.Profile.Approach))
		parts = append(parts, fmt.Sprintf("**Approach**: %s", r.Profile.Approach))
		parts = append(parts, sectionBody(r))
		parts = append(parts, "")
	}

	parts = append(parts, "## Quality Indicators")
	for _, indicator := range s.indicators(len(results)) {
		parts = append(parts, "- "+indicator)
	}

	return strings.Join(parts, "\n")
}

// sectionBody renders one worker's section content: the extracted text, or
// the error line for a failed worker.
func sectionBody(r core.WorkerResult) string {
	if r.Failed() {
		return fmt.Sprintf("Error: %s", r.Err)
	}
	return r.Text
}

func (s *Synthesizer) indicators(workerCount int) []string {
	if len(s.qualityIndicators) > 0 {
		out := make([]string, len(s.qualityIndicators))
		for i, ind := range s.qualityIndicators {
			out[i] = strings.ReplaceAll(ind, "{agent_count}", strconv.Itoa(workerCount))
		}
		return out
	}

	return []string{
		"Intensity variation: 0.2 (conservative), 0.6 (balanced), 0.9 (creative)",
		fmt.Sprintf("Parallel workers: %d concurrent executions", workerCount),
		"Shared capabilities: search and session memory available to every worker",
		"Diverse approaches: analysis breadth and depth balanced across the pool",
	}
}

func intensityLabel(p core.Profile) string {
	if !p.HasIntensity() {
		return "Neutral"
	}
	return fmt.Sprintf("Intensity %.1f", *p.Intensity)
}
