package core

// EventKind discriminates trace event variants.
type EventKind string

const (
	EventMessage    EventKind = "message"
	EventToolCall   EventKind = "tool_call"
	EventToolResult EventKind = "tool_result"
)

// TraceEvent is one record in a worker's interaction trace. Exactly one
// variant is populated, selected by Kind.
type TraceEvent struct {
	Kind EventKind

	// EventMessage
	Text string

	// EventToolCall / EventToolResult
	Tool   string
	Args   string // argument summary, may be truncated by the producer
	Result string // result summary, may be truncated by the producer
}

// MessageEvent builds a message event.
func MessageEvent(text string) TraceEvent {
	return TraceEvent{Kind: EventMessage, Text: text}
}

// ToolCallEvent builds a tool invocation event.
func ToolCallEvent(tool, args string) TraceEvent {
	return TraceEvent{Kind: EventToolCall, Tool: tool, Args: args}
}

// ToolResultEvent builds a tool result event.
func ToolResultEvent(tool, result string) TraceEvent {
	return TraceEvent{Kind: EventToolResult, Tool: tool, Result: result}
}

// Trace is the ordered event sequence produced by one worker turn, plus
// the terminal status of that turn.
type Trace struct {
	Events []TraceEvent

	// Err is non-nil when the turn itself failed. Events recorded before
	// the failure are preserved.
	Err error
}

// OK reports whether the turn completed without error.
func (t *Trace) OK() bool {
	return t != nil && t.Err == nil
}
