package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/readfence/agent"
	"github.com/safedep/readfence/agent/cursor"
	"github.com/safedep/readfence/core/gate"
	"github.com/spf13/cobra"
)

// NewHookCmd creates the internal _hook command.
//
// This is the process boundary the agent invokes: one JSON event on
// stdin, one JSON decision on stdout, exit code 0 on every branch. The
// decision payload, not the exit status, carries failure information,
// so RunE never returns an error here.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "_hook <agent> <type>",
		Short:  "Internal command invoked by agent hooks",
		Hidden: true,
		Args:   cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentName := args[0]
			hookType := args[1]
			out := cmd.OutOrStdout()

			app := loadHookApp(cmd)

			rawData, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				log.Errorf("failed to read stdin: %v", err)
				writeResponse(out, gate.AllowWithMessage(fmt.Sprintf("failed to read hook input: %v", err)).JSON())
				return nil
			}

			if agentName != agent.AgentCursor {
				// Unknown agent: we cannot know its response schema, so
				// answer with a permissive permission body and move on.
				log.Errorf("unknown agent %q for hook %q", agentName, hookType)
				writeResponse(out, gate.Allow().JSON())
				return nil
			}

			writeResponse(out, cursorResponse(app.Gate, hookType, rawData))
			return nil
		},
	}

	return cmd
}

// cursorResponse produces the response body for a Cursor hook type.
func cursorResponse(g *gate.Gate, hookType string, rawData []byte) []byte {
	switch {
	case cursor.IsReadHook(hookType):
		decision := g.Decide(rawData)
		logDecision(hookType, rawData, decision)
		return decision.JSON()

	case cursor.IsPermissionHook(hookType):
		// Ungated permission hooks still expect a permission body.
		return gate.Allow().JSON()

	default:
		// Post-action and lifecycle hooks take no decision.
		return []byte("{}")
	}
}

// logDecision records the decision for local diagnostics. Nothing is
// persisted; this is debug logging only and must never fail the hook.
func logDecision(hookType string, rawData []byte, decision gate.Decision) {
	invocationID := uuid.New()

	event, err := cursor.ParseHookEvent(rawData)
	if err != nil {
		log.Debugf("hook %s invocation %s: unparseable event: %v", hookType, invocationID, err)
		return
	}

	log.Debugf("hook %s invocation %s session %s path %q -> %s",
		hookType, invocationID, event.SessionUUID(), event.FilePath, decision.Permission)
}

// writeResponse writes the response body to the agent and flushes by
// virtue of the unbuffered writer. Write errors are logged to stderr
// channels only; the hook still exits 0.
func writeResponse(out io.Writer, body []byte) {
	if _, err := out.Write(body); err != nil {
		log.Errorf("failed to write to stdout: %v", err)
	}
}
