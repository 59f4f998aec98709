package core

import "context"

// WorkerSession is an opaque handle to one constructed agent session.
// The coordination engine never inspects it; only the runtime that
// constructed it knows its shape.
type WorkerSession interface {
	// Name returns the session's display name (for logs and status).
	Name() string
}

// InvokeOptions configures a single worker invocation.
type InvokeOptions struct {
	// Intensity, when non-nil, overrides the session's analytical
	// intensity for this invocation only. Applied at invocation time so
	// profile semantics stay declarative.
	Intensity *float64
}

// AgentRuntime is the language-model chat/tool-calling substrate. It is a
// collaborator: the coordination engine treats both sessions and traces as
// data and never interprets tool semantics.
type AgentRuntime interface {
	// Construct creates a worker session bound to a profile and the shared
	// capability set.
	Construct(ctx context.Context, profile Profile, caps *CapabilitySet) (WorkerSession, error)

	// Invoke sends query as the single user turn and returns the full raw
	// trace for that turn. A failed turn returns a trace with Err set, or
	// an error; callers must treat both the same way.
	Invoke(ctx context.Context, session WorkerSession, query string, opts InvokeOptions) (*Trace, error)
}

// SearchCapability is an opaque search tool handle passed through to
// workers. The engine only ever asks for its name.
type SearchCapability interface {
	Name() string
}

// MemoryCapability is a session-scoped memory store shared by all workers
// in a pool. Implementations must be safe for concurrent appenders; the
// engine performs no serialization of its own.
type MemoryCapability interface {
	Name() string
	SessionID() string

	// Append records one note for the session. Append-only.
	Append(ctx context.Context, note string) error

	// Recent returns up to limit notes, newest first.
	Recent(ctx context.Context, limit int) ([]string, error)
}
