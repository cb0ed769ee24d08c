package cli

import (
	"context"
	"flag"
	"fmt"
)

// runPreflight handles `mafctl preflight-commit <path>...`. A block exits
// with the conflict code so git hooks can gate the commit directly on the
// exit status.
func (a *App) runPreflight(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("preflight-commit", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	agentFlag := fs.String("agent", "", "agent identity (falls back to $"+AgentEnvVar+")")
	jsonOut := fs.Bool("json", false, "emit one JSON document instead of prose")
	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(a.stderr, "usage: mafctl preflight-commit [flags] <path>...")
		return ExitInvalidArgs
	}

	agentID, ok := resolveAgent(*agentFlag)
	if !ok {
		fmt.Fprintf(a.stderr, "no agent identity: pass -agent or set %s\n", AgentEnvVar)
		return ExitInvalidArgs
	}

	decision, err := a.rt.PrecommitCheck(ctx, agentID, paths)
	if err != nil {
		return a.fail(err)
	}

	if *jsonOut {
		if code := a.emitJSON(decision); code != ExitOK {
			return code
		}
	} else {
		fmt.Fprintln(a.stdout, decision.Summary(a.rt.Config().Enforcer.OverrideVar))
	}

	if decision.Blocked() {
		return ExitConflict
	}
	return ExitOK
}
