package service

import (
	"context"
	"errors"
	"sync"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

// fakeSession is the opaque handle the fake runtime hands out.
type fakeSession struct {
	name    string
	serial  int
	profile core.Profile
	caps    *core.CapabilitySet
}

func (s *fakeSession) Name() string { return s.name }

// fakeRuntime is a scriptable AgentRuntime for tests.
type fakeRuntime struct {
	mu          sync.Mutex
	constructed int

	constructErr error
	invoke       func(s *fakeSession, query string, opts core.InvokeOptions) (*core.Trace, error)
}

func (r *fakeRuntime) Construct(_ context.Context, profile core.Profile, caps *core.CapabilitySet) (core.WorkerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.constructErr != nil {
		return nil, r.constructErr
	}
	r.constructed++
	return &fakeSession{
		name:    profile.WorkerName(),
		serial:  r.constructed,
		profile: profile,
		caps:    caps,
	}, nil
}

func (r *fakeRuntime) Invoke(_ context.Context, session core.WorkerSession, query string, opts core.InvokeOptions) (*core.Trace, error) {
	s, ok := session.(*fakeSession)
	if !ok {
		return nil, errors.New("unexpected session type")
	}
	if r.invoke == nil {
		return &core.Trace{Events: []core.TraceEvent{core.MessageEvent("reply from " + s.name)}}, nil
	}
	return r.invoke(s, query, opts)
}

// textTrace builds a trace holding a single message.
func textTrace(text string) *core.Trace {
	return &core.Trace{Events: []core.TraceEvent{core.MessageEvent(text)}}
}

// fakeSearch is a named search capability handle.
type fakeSearch struct{ name string }

func (f *fakeSearch) Name() string { return f.name }

// fakeMemory records appended notes.
type fakeMemory struct {
	mu    sync.Mutex
	notes []string
}

func (f *fakeMemory) Name() string      { return "fake-memory" }
func (f *fakeMemory) SessionID() string { return "session-test" }

func (f *fakeMemory) Append(_ context.Context, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeMemory) Recent(_ context.Context, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, limit)
	for i := len(f.notes) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.notes[i])
	}
	return out, nil
}
