package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

func newTestCoordinator(rt *fakeRuntime, caps *core.CapabilitySet) *Coordinator {
	return NewCoordinator(Options{Runtime: rt, Capabilities: caps})
}

func TestCoordinatorRun_AllWorkersSucceed(t *testing.T) {
	rt := &fakeRuntime{}
	rt.invoke = func(s *fakeSession, query string, _ core.InvokeOptions) (*core.Trace, error) {
		return textTrace("findings from worker " + s.profile.Label + " on " + query), nil
	}

	coord := newTestCoordinator(rt, nil)
	report := coord.Run(context.Background(), "renewable energy trends", core.ModeStandard)

	require.True(t, strings.HasPrefix(report, "# Comprehensive Research Results - Parallel Analysis"))
	for i, label := range []string{"1", "2", "3"} {
		header := strings.Index(report, "## Perspective "+string(rune('1'+i))+" - SCOUT_"+label)
		body := strings.Index(report, "findings from worker "+label+" on renewable energy trends")
		assert.GreaterOrEqual(t, header, 0, "missing perspective header for worker %s", label)
		assert.Greater(t, body, header, "worker %s content not under its header", label)
	}
}

func TestCoordinatorRun_PartialFailure(t *testing.T) {
	rt := &fakeRuntime{}
	rt.invoke = func(s *fakeSession, _ string, _ core.InvokeOptions) (*core.Trace, error) {
		if s.profile.Label == "2" {
			return nil, errors.New("model unavailable")
		}
		return textTrace("result " + s.profile.Label), nil
	}

	coord := newTestCoordinator(rt, nil)
	report := coord.Run(context.Background(), "q", core.ModeStandard)

	assert.Contains(t, report, "result 1")
	assert.Contains(t, report, "Error: model unavailable")
	assert.Contains(t, report, "result 3")
	assert.Contains(t, report, "## Perspective 2 - SCOUT_2")
}

func TestCoordinatorRun_PrepareFailureFallsBackToTemplate(t *testing.T) {
	rt := &fakeRuntime{constructErr: errors.New("credentials rejected")}

	coord := newTestCoordinator(rt, nil)

	report := coord.Run(context.Background(), "deep sea mining", core.ModeStandard)
	assert.True(t, strings.HasPrefix(report, "# Parallel Research - Error"), "got:\n%s", report)
	assert.Contains(t, report, "deep sea mining")
	assert.Contains(t, report, "credentials rejected")

	report = coord.Run(context.Background(), "deep sea mining", core.ModeVariation)
	assert.True(t, strings.HasPrefix(report, "# Intensity Variation Research - Error"), "got:\n%s", report)
}

func TestCoordinatorRun_VariationReport(t *testing.T) {
	rt := &fakeRuntime{}
	rt.invoke = func(s *fakeSession, _ string, opts core.InvokeOptions) (*core.Trace, error) {
		return textTrace("take from " + s.profile.Label), nil
	}

	coord := newTestCoordinator(rt, nil)
	report := coord.Run(context.Background(), "fusion power", core.ModeVariation)

	require.True(t, strings.HasPrefix(report, "# Intensity Variation Research Results"))
	assert.Contains(t, report, "## Research Query\nfusion power")
	assert.Contains(t, report, "### Intensity 0.2 - Conservative detailed analysis")
	assert.Contains(t, report, "### Intensity 0.6 - Balanced analysis")
	assert.Contains(t, report, "### Intensity 0.9 - Creative divergent thinking")
	assert.Contains(t, report, "## Quality Indicators")
}

func TestCoordinatorRun_InvalidModeDefaultsToStandard(t *testing.T) {
	rt := &fakeRuntime{}
	coord := newTestCoordinator(rt, nil)

	report := coord.Run(context.Background(), "q", core.RunMode("experimental"))
	assert.True(t, strings.HasPrefix(report, "# Comprehensive Research Results"))
}

func TestCoordinatorRun_PoolReusedAcrossStandardRuns(t *testing.T) {
	rt := &fakeRuntime{}
	coord := newTestCoordinator(rt, nil)

	coord.Run(context.Background(), "first", core.ModeStandard)
	coord.Run(context.Background(), "second", core.ModeStandard)

	assert.Equal(t, 3, rt.constructed, "second standard run must reuse the pool")

	coord.Run(context.Background(), "third", core.ModeVariation)
	assert.Equal(t, 6, rt.constructed, "variation run must rebuild the pool")
}

func TestCoordinatorRun_MemoryNotes(t *testing.T) {
	rt := &fakeRuntime{}
	mem := &fakeMemory{}
	caps := &core.CapabilitySet{Search: &fakeSearch{name: "search"}, Memory: mem}

	coord := newTestCoordinator(rt, caps)
	coord.Run(context.Background(), "ocean currents", core.ModeStandard)

	require.Len(t, mem.notes, 2)
	assert.Equal(t, "Research query (standard): ocean currents", mem.notes[0])
	assert.Equal(t, "Report produced (standard run, 3 workers, 0 failed)", mem.notes[1])
}

func TestCoordinatorStatus(t *testing.T) {
	rt := &fakeRuntime{}
	caps := &core.CapabilitySet{Search: &fakeSearch{name: "search"}, Memory: &fakeMemory{}}
	coord := newTestCoordinator(rt, caps)

	assert.Empty(t, coord.Status(), "no pool before the first run")

	coord.Run(context.Background(), "q", core.ModeVariation)

	statuses := coord.Status()
	require.Len(t, statuses, 3)
	assert.Equal(t, "SCOUT_CONSERVATIVE", statuses[0].Name)
	assert.Equal(t, "SCOUT_BALANCED", statuses[1].Name)
	assert.Equal(t, "SCOUT_CREATIVE", statuses[2].Name)
	require.NotNil(t, statuses[0].Intensity)
	assert.Equal(t, 0.2, *statuses[0].Intensity)
	for _, s := range statuses {
		assert.True(t, s.HasSearch)
		assert.True(t, s.HasMemory)
	}
}

func TestCoordinatorPrepare(t *testing.T) {
	rt := &fakeRuntime{}
	coord := newTestCoordinator(rt, nil)

	require.NoError(t, coord.Prepare(context.Background(), core.ModeStandard))
	assert.Len(t, coord.Status(), 3)
	assert.Equal(t, 3, rt.constructed)

	// A following standard run reuses the prepared pool.
	coord.Run(context.Background(), "q", core.ModeStandard)
	assert.Equal(t, 3, rt.constructed)
}

func TestCoordinatorStatusReport(t *testing.T) {
	rt := &fakeRuntime{}
	coord := newTestCoordinator(rt, nil)
	coord.Run(context.Background(), "q", core.ModeStandard)

	report := coord.StatusReport()
	assert.True(t, strings.HasPrefix(report, "# Research Workers Status"))
	assert.Contains(t, report, "## Available Workers: 3")
	assert.Contains(t, report, "### Worker 1: SCOUT_1")
	assert.Contains(t, report, "- Search capability: false")
	assert.Contains(t, report, "## Execution Mode")
	assert.Contains(t, report, "- Parallel execution: enabled")
}

func TestCoordinatorUpdateConfig(t *testing.T) {
	rt := &fakeRuntime{}
	coord := newTestCoordinator(rt, nil)

	cfg := config.Default()
	cfg.Report.ErrorTemplates = map[string]string{"standard": "swapped: {error}"}
	coord.UpdateConfig(cfg)

	rt.constructErr = errors.New("down")
	report := coord.Run(context.Background(), "q", core.ModeStandard)
	assert.Equal(t, "swapped: down", report)
}
