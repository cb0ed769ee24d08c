// Package cli implements the mafctl adapter contracts: fixed exit codes,
// human and JSON output modes, and agent identity resolution. The CLI is a
// thin consumer of the runtime façade; all semantics live behind it.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openmaf/maf/pkg/runtime"
)

// Fixed exit codes. Consumers script against these; they never change.
const (
	ExitOK          = 0 // success
	ExitError       = 1 // generic error
	ExitNoWork      = 2 // no work available
	ExitInvalidArgs = 3 // invalid arguments, including missing identity
	ExitConflict    = 4 // lease or reservation conflicts
	ExitQuota       = 6 // quota exceeded
)

// AgentEnvVar is the fallback source of agent identity after the -agent
// flag.
const AgentEnvVar = "MAF_AGENT_ID"

// App runs mafctl subcommands against an open runtime.
type App struct {
	rt     *runtime.Runtime
	stdout io.Writer
	stderr io.Writer
}

// NewApp creates the CLI app.
func NewApp(rt *runtime.Runtime, stdout, stderr io.Writer) *App {
	return &App{rt: rt, stdout: stdout, stderr: stderr}
}

// Run dispatches one subcommand and returns its exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitInvalidArgs
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "claim":
		return a.runClaim(ctx, rest)
	case "release":
		return a.runRelease(ctx, rest)
	case "status":
		return a.runStatus(ctx, rest)
	case "escalate":
		return a.runEscalate(ctx, rest)
	case "preflight-commit":
		return a.runPreflight(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return ExitOK
	default:
		fmt.Fprintf(a.stderr, "unknown command %q\n", cmd)
		a.usage()
		return ExitInvalidArgs
	}
}

func (a *App) usage() {
	fmt.Fprint(a.stderr, `Usage: mafctl <command> [flags]

Commands:
  claim             claim the next available task for this agent
  release           release a task lease or file reservation
  status            show the runtime summary
  escalate          send an escalation envelope to a channel
  preflight-commit  check staged paths against active reservations

Agent identity resolves from -agent, then $`+AgentEnvVar+`.
`)
}

// resolveAgent applies the identity contract: explicit flag, then
// environment, then failure.
func resolveAgent(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if v := os.Getenv(AgentEnvVar); v != "" {
		return v, true
	}
	return "", false
}

// emitJSON writes one JSON document on stdout.
func (a *App) emitJSON(v any) int {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(a.stderr, "failed to encode output: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// fail reports an error on stderr and maps it to an exit code.
func (a *App) fail(err error) int {
	fmt.Fprintln(a.stderr, err.Error())
	return exitCodeFor(err)
}
