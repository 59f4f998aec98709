package service

import (
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// Summary bounds for tool argument/result text inside extracted output.
const (
	maxArgSummary    = 200
	maxResultSummary = 400
)

// Extract flattens a worker's raw trace into one text blob. Message text
// is concatenated in emitted order; tool calls and results become bounded
// textual blocks so synthesis keeps visibility into tool use without the
// engine interpreting tool semantics.
//
// Extract never returns an empty string and never panics: a trace that
// yields nothing, a nil trace, or an internal error all degrade to a fixed
// placeholder plus a logged diagnostic.
func Extract(trace *core.Trace, workerLabel string, logger *logging.Logger) (out string) {
	placeholder := fmt.Sprintf("No content generated by %s", workerLabel)

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("trace extraction failed, using placeholder", "worker", workerLabel, "panic", r)
			out = placeholder
		}
	}()

	if trace == nil || len(trace.Events) == 0 {
		return placeholder
	}

	var b strings.Builder
	for _, ev := range trace.Events {
		switch ev.Kind {
		case core.EventMessage:
			if ev.Text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(ev.Text)

		case core.EventToolCall:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("[Tool Call: %s]", ev.Tool))
			if args := truncate(ev.Args, maxArgSummary); args != "" {
				b.WriteString("\nArguments: " + args)
			}

		case core.EventToolResult:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("[Tool Result: %s]", ev.Tool))
			if res := truncate(ev.Result, maxResultSummary); res != "" {
				b.WriteString("\nResult: " + res)
			}

		default:
			logger.Warn("unknown trace event kind, skipping", "worker", workerLabel, "kind", ev.Kind)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		logger.Debug("trace yielded no extractable text", "worker", workerLabel)
		return placeholder
	}
	return text
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
