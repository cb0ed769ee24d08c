package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

// runRelease handles `mafctl release <task-id|path>`. Task ids carry the
// "task-" prefix, so the one positional argument disambiguates itself:
// anything else is treated as a file path.
func (a *App) runRelease(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("release", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	agentFlag := fs.String("agent", "", "agent identity (falls back to $"+AgentEnvVar+")")
	jsonOut := fs.Bool("json", false, "emit one JSON document instead of prose")
	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "usage: mafctl release [flags] <task-id|path>")
		return ExitInvalidArgs
	}
	target := fs.Arg(0)

	agentID, ok := resolveAgent(*agentFlag)
	if !ok {
		fmt.Fprintf(a.stderr, "no agent identity: pass -agent or set %s\n", AgentEnvVar)
		return ExitInvalidArgs
	}

	var err error
	kind := "reservation"
	if strings.HasPrefix(target, "task-") {
		kind = "lease"
		err = a.rt.ReleaseLease(ctx, target, agentID)
	} else {
		err = a.rt.ReleaseFile(ctx, target, agentID)
	}
	if err != nil {
		return a.fail(err)
	}

	if *jsonOut {
		return a.emitJSON(map[string]any{"released": target, "kind": kind})
	}
	fmt.Fprintf(a.stdout, "released %s %s\n", kind, target)
	return ExitOK
}
