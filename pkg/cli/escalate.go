package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/openmaf/maf/pkg/models"
)

// runEscalate handles `mafctl escalate -channel <name> -reason <text>`.
func (a *App) runEscalate(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("escalate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	agentFlag := fs.String("agent", "", "agent identity (falls back to $"+AgentEnvVar+")")
	channel := fs.String("channel", models.DefaultChannel, "target escalation channel")
	reason := fs.String("reason", "", "why this is being escalated (required)")
	execution := fs.String("execution", "", "execution id the escalation refers to")
	level := fs.String("level", "", "escalation level")
	priority := fs.Int("priority", 0, "escalation priority")
	contextText := fs.String("context", "", "free-form context for the reviewer")
	jsonOut := fs.Bool("json", false, "emit one JSON document instead of prose")
	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	agentID, ok := resolveAgent(*agentFlag)
	if !ok {
		fmt.Fprintf(a.stderr, "no agent identity: pass -agent or set %s\n", AgentEnvVar)
		return ExitInvalidArgs
	}
	if *reason == "" {
		fmt.Fprintln(a.stderr, "escalate requires -reason")
		return ExitInvalidArgs
	}

	env, err := a.rt.Send(ctx, *channel, models.KindEscalationRequest, agentID, map[string]any{
		"execution_id": *execution,
		"level":        *level,
		"context":      *contextText,
		"reason":       *reason,
		"priority":     *priority,
	})
	if err != nil {
		return a.fail(err)
	}

	if *jsonOut {
		return a.emitJSON(env)
	}
	fmt.Fprintf(a.stdout, "escalated to %s (message %d)\n", *channel, env.ID)
	return ExitOK
}
