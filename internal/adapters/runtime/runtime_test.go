package runtime

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

func TestNew_SelectsByKind(t *testing.T) {
	rt, err := New(config.RuntimeConfig{Kind: "stub"}, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &StubRuntime{}, rt)

	_, err = New(config.RuntimeConfig{Kind: "cloud"}, logging.NewNop())
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatValidation))
}

func TestNewCLIRuntime_RejectsMissingBinary(t *testing.T) {
	_, err := NewCLIRuntime(config.RuntimeConfig{Kind: "cli"}, logging.NewNop())
	require.Error(t, err, "empty path must be rejected")

	_, err = NewCLIRuntime(config.RuntimeConfig{Kind: "cli", Path: "scout-nonexistent-agent-binary"}, logging.NewNop())
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatValidation))
}

func TestParseStream_JSONEvents(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"tool_call","tool":"web_search","args":{"q":"go"}}` + "\n")
	buf.WriteString(`{"type":"tool_result","tool":"web_search","result":"two hits"}` + "\n")
	buf.WriteString(`{"type":"message","text":"conclusion"}` + "\n")

	trace := parseStream(&buf)
	require.Len(t, trace.Events, 3)
	assert.Equal(t, core.EventToolCall, trace.Events[0].Kind)
	assert.Equal(t, "web_search", trace.Events[0].Tool)
	assert.Equal(t, `{"q":"go"}`, trace.Events[0].Args)
	assert.Equal(t, core.EventToolResult, trace.Events[1].Kind)
	assert.Equal(t, "two hits", trace.Events[1].Result)
	assert.Equal(t, "conclusion", trace.Events[2].Text)
	assert.NoError(t, trace.Err)
}

func TestParseStream_PlainTextFallback(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("plain answer line one\n")
	buf.WriteString("\n")
	buf.WriteString("line two\n")

	trace := parseStream(&buf)
	require.Len(t, trace.Events, 2)
	assert.Equal(t, "plain answer line one", trace.Events[0].Text)
	assert.Equal(t, "line two", trace.Events[1].Text)
}

func TestParseStream_ErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"message","text":"partial"}` + "\n")
	buf.WriteString(`{"type":"error","error":"rate limited"}` + "\n")

	trace := parseStream(&buf)
	require.Error(t, trace.Err)
	assert.Contains(t, trace.Err.Error(), "rate limited")
	assert.Len(t, trace.Events, 1)
}

func TestParseStream_OversizedLineSurfacesTruncation(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"message","text":"before the flood"}` + "\n")
	buf.WriteString(strings.Repeat("x", 5*1024*1024) + "\n")
	buf.WriteString(`{"type":"message","text":"never reached"}` + "\n")

	trace := parseStream(&buf)
	require.Error(t, trace.Err)
	assert.Contains(t, trace.Err.Error(), "truncated")
	require.Len(t, trace.Events, 1)
	assert.Equal(t, "before the flood", trace.Events[0].Text)
}

func TestStubRuntime_DeterministicTrace(t *testing.T) {
	rt := NewStubRuntime(logging.NewNop())
	profile := core.Profile{
		ID:         "creative",
		Label:      "creative",
		Intensity:  core.FloatPtr(0.9),
		Approach:   "Creative divergent thinking",
		NameSuffix: "CREATIVE",
	}
	caps := &core.CapabilitySet{}

	session, err := rt.Construct(context.Background(), profile, caps)
	require.NoError(t, err)
	assert.Equal(t, "SCOUT_CREATIVE", session.Name())

	trace, err := rt.Invoke(context.Background(), session, "dark matter", core.InvokeOptions{})
	require.NoError(t, err)
	require.Len(t, trace.Events, 1)
	assert.Contains(t, trace.Events[0].Text, `SCOUT_CREATIVE examined "dark matter"`)
	assert.Contains(t, trace.Events[0].Text, "intensity 0.9")
}

func TestStubRuntime_IntensityOverrideWins(t *testing.T) {
	rt := NewStubRuntime(logging.NewNop())
	profile := core.Profile{ID: "balanced", Label: "balanced", Intensity: core.FloatPtr(0.6), Approach: "Balanced analysis", NameSuffix: "BALANCED"}
	session, err := rt.Construct(context.Background(), profile, &core.CapabilitySet{})
	require.NoError(t, err)

	trace, err := rt.Invoke(context.Background(), session, "q", core.InvokeOptions{Intensity: core.FloatPtr(0.2)})
	require.NoError(t, err)
	assert.Contains(t, trace.Events[0].Text, "intensity 0.2")
}

func TestStubRuntime_SearchCapabilityInTrace(t *testing.T) {
	rt := NewStubRuntime(logging.NewNop())
	profile := core.Profile{ID: "standard-1", Label: "1", NameSuffix: "1"}
	caps := &core.CapabilitySet{Search: namedSearch("duckduckgo")}

	session, err := rt.Construct(context.Background(), profile, caps)
	require.NoError(t, err)

	trace, err := rt.Invoke(context.Background(), session, "tides", core.InvokeOptions{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trace.Events), 3)
	assert.Equal(t, core.EventToolCall, trace.Events[0].Kind)
	assert.Equal(t, "duckduckgo", trace.Events[0].Tool)
	assert.True(t, strings.Contains(trace.Events[0].Args, "tides"))
}

func TestStubRuntime_CancelledContext(t *testing.T) {
	rt := NewStubRuntime(logging.NewNop())
	session, err := rt.Construct(context.Background(), core.Profile{ID: "standard-1", Label: "1", NameSuffix: "1"}, &core.CapabilitySet{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = rt.Invoke(ctx, session, "q", core.InvokeOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

type namedSearch string

func (n namedSearch) Name() string { return string(n) }
