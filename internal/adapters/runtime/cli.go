package runtime

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// CLIRuntime drives research workers through an external agent CLI that
// speaks JSON lines on stdout. Each Construct yields an independent session
// identifier; Invoke runs one process per call and folds its stream into a
// trace.
type CLIRuntime struct {
	path   string
	model  string
	logger *logging.Logger
}

// NewCLIRuntime validates the configured binary and returns the runtime.
func NewCLIRuntime(cfg config.RuntimeConfig, logger *logging.Logger) (*CLIRuntime, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.Path == "" {
		return nil, core.ErrValidation(core.CodeRuntimeMissing, "runtime.path not configured")
	}
	if _, err := exec.LookPath(cfg.Path); err != nil {
		return nil, core.ErrValidation(core.CodeRuntimeMissing,
			fmt.Sprintf("agent binary %q not found in PATH", cfg.Path)).WithCause(err)
	}
	return &CLIRuntime{path: cfg.Path, model: cfg.Model, logger: logger}, nil
}

// cliSession is the handle Construct returns. The external CLI is
// stateless per process, so the session carries everything Invoke needs.
type cliSession struct {
	id           string
	name         string
	instructions string
	caps         *core.CapabilitySet
}

func (s *cliSession) Name() string { return s.name }

// Construct creates a session handle for one worker. No process is spawned
// until the first Invoke.
func (r *CLIRuntime) Construct(_ context.Context, profile core.Profile, caps *core.CapabilitySet) (core.WorkerSession, error) {
	session := &cliSession{
		id:           uuid.NewString(),
		name:         profile.WorkerName(),
		instructions: instructions(profile),
		caps:         caps,
	}
	r.logger.Debug("cli session constructed", "worker", session.name, "session_id", session.id)
	return session, nil
}

// Invoke runs one agent process for the query and parses its stream output.
func (r *CLIRuntime) Invoke(ctx context.Context, session core.WorkerSession, query string, opts core.InvokeOptions) (*core.Trace, error) {
	s, ok := session.(*cliSession)
	if !ok {
		return nil, core.ErrInvocation("session was not created by this runtime")
	}

	args := []string{"--print", "--output-format", "stream-json"}
	if r.model != "" {
		args = append(args, "--model", r.model)
	}
	if opts.Intensity != nil {
		args = append(args, "--temperature", fmt.Sprintf("%.1f", *opts.Intensity))
	}

	// #nosec G204 -- binary path comes from validated config
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdin = strings.NewReader(s.instructions + "\n\n" + query)
	cmd.Env = append(os.Environ(),
		"SCOUT_MANAGED=true",
		fmt.Sprintf("SCOUT_WORKER=%s", s.name),
		fmt.Sprintf("SCOUT_SESSION=%s", s.id),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("invoking agent cli",
		"worker", s.name,
		"path", r.path,
		"args", args,
		"query_len", len(query),
	)

	runErr := cmd.Run()
	trace := parseStream(&stdout)

	if runErr != nil {
		if ctx.Err() != nil {
			return trace, ctx.Err()
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = runErr.Error()
		}
		return trace, core.ErrInvocation(
			fmt.Sprintf("agent process failed: %s", firstLine(detail))).WithCause(runErr)
	}
	return trace, nil
}

// streamEvent is one JSON line of agent output.
type streamEvent struct {
	Type   string          `json:"type"`
	Text   string          `json:"text,omitempty"`
	Tool   string          `json:"tool,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`
	Result string          `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// parseStream folds JSON lines into a trace. Lines that are not valid JSON
// are kept as message text so plain-output CLIs still produce content.
func parseStream(output *bytes.Buffer) *core.Trace {
	trace := &core.Trace{}
	scanner := bufio.NewScanner(output)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ev streamEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			trace.Events = append(trace.Events, core.MessageEvent(line))
			continue
		}

		switch ev.Type {
		case "message", "text", "result":
			if ev.Text != "" {
				trace.Events = append(trace.Events, core.MessageEvent(ev.Text))
			}
		case "tool_call", "tool_use":
			trace.Events = append(trace.Events, core.ToolCallEvent(ev.Tool, string(ev.Args)))
		case "tool_result":
			trace.Events = append(trace.Events, core.ToolResultEvent(ev.Tool, ev.Result))
		case "error":
			trace.Err = core.ErrInvocation(ev.Error)
		}
	}
	if err := scanner.Err(); err != nil && trace.Err == nil {
		trace.Err = core.ErrInvocation(
			fmt.Sprintf("agent output stream truncated: %s", err)).WithCause(err)
	}
	return trace
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
