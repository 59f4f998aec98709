package runtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// StubRuntime produces deterministic local traces without any external
// process. It exists for offline runs and for exercising the pipeline end
// to end.
type StubRuntime struct {
	logger *logging.Logger
}

// NewStubRuntime creates the stub runtime.
func NewStubRuntime(logger *logging.Logger) *StubRuntime {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StubRuntime{logger: logger}
}

type stubSession struct {
	id      string
	profile core.Profile
	caps    *core.CapabilitySet
}

func (s *stubSession) Name() string { return s.profile.WorkerName() }

// Construct returns a fresh session handle.
func (r *StubRuntime) Construct(_ context.Context, profile core.Profile, caps *core.CapabilitySet) (core.WorkerSession, error) {
	return &stubSession{id: uuid.NewString(), profile: profile, caps: caps}, nil
}

// Invoke synthesizes a short trace from the session's profile. Memory
// context is surfaced when the capability is wired so reports show what a
// real worker would have had available.
func (r *StubRuntime) Invoke(ctx context.Context, session core.WorkerSession, query string, opts core.InvokeOptions) (*core.Trace, error) {
	s, ok := session.(*stubSession)
	if !ok {
		return nil, core.ErrInvocation("session was not created by this runtime")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intensity := s.profile.Intensity
	if opts.Intensity != nil {
		intensity = opts.Intensity
	}

	trace := &core.Trace{}
	if s.caps.HasSearch() {
		trace.Events = append(trace.Events,
			core.ToolCallEvent(s.caps.Search.Name(), fmt.Sprintf(`{"query":%q}`, query)),
			core.ToolResultEvent(s.caps.Search.Name(), fmt.Sprintf("indexed material related to %q", query)),
		)
	}

	approach := s.profile.Approach
	if approach == "" {
		approach = "general analysis"
	}
	summary := fmt.Sprintf("%s examined %q using %s", s.profile.WorkerName(), query, approach)
	if intensity != nil {
		summary += fmt.Sprintf(" at intensity %.1f", *intensity)
	}
	trace.Events = append(trace.Events, core.MessageEvent(summary+"."))

	if s.caps.HasMemory() {
		recent, err := s.caps.Memory.Recent(ctx, 3)
		if err == nil && len(recent) > 0 {
			trace.Events = append(trace.Events,
				core.MessageEvent(fmt.Sprintf("Session context considered: %d prior notes.", len(recent))))
		}
	}

	return trace, nil
}
