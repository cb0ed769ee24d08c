package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// runClaim handles `mafctl claim`.
//
// A claim with file conflicts still exits 0: the task is leased and the
// JSON document reports the conflicted paths; the caller decides what to
// do about them. Only "no work" (exit 2) and errors change the code.
func (a *App) runClaim(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("claim", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	agentFlag := fs.String("agent", "", "agent identity (falls back to $"+AgentEnvVar+")")
	policy := fs.String("policy", "", "only claim tasks with this policy label")
	minPriority := fs.Int("min-priority", -1, "only claim tasks with priority >= this")
	maxPriority := fs.Int("max-priority", -1, "only claim tasks with priority <= this")
	lease := fs.Duration("lease", 0, "lease duration (0 = configured default)")
	dryRun := fs.Bool("dry-run", false, "preview claimable tasks without claiming")
	jsonOut := fs.Bool("json", false, "emit one JSON document instead of prose")
	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	agentID, ok := resolveAgent(*agentFlag)
	if !ok {
		fmt.Fprintf(a.stderr, "no agent identity: pass -agent or set %s\n", AgentEnvVar)
		return ExitInvalidArgs
	}

	filter := models.TaskFilter{PolicyLabel: *policy}
	if *minPriority >= 0 {
		filter.MinPriority = minPriority
	}
	if *maxPriority >= 0 {
		filter.MaxPriority = maxPriority
	}

	if *dryRun {
		return a.claimDryRun(ctx, filter, *jsonOut)
	}

	outcome, err := a.rt.ClaimNext(ctx, agentID, filter, *lease)
	if err != nil {
		return a.fail(err)
	}

	if outcome.NoneAvailable != nil {
		if *jsonOut {
			a.emitJSON(outcome)
			return ExitNoWork
		}
		fmt.Fprintln(a.stdout, "no work available")
		for _, t := range outcome.NoneAvailable.ReadyPreview {
			fmt.Fprintf(a.stdout, "  ready: %s (priority %d)\n", t.ID, t.Priority)
		}
		return ExitNoWork
	}

	claimed := outcome.Claimed
	if *jsonOut {
		return a.emitJSON(claimed)
	}

	fmt.Fprintf(a.stdout, "claimed %s (attempt %d, lease until %s)\n",
		claimed.Task.ID, claimed.Lease.Attempt, ids.FromMillis(claimed.Lease.ExpiresAt).Format(time.RFC3339))
	for _, f := range claimed.AcquiredFiles {
		fmt.Fprintf(a.stdout, "  + %s\n", f)
	}
	for _, c := range claimed.ConflictedFiles {
		fmt.Fprintf(a.stdout, "  ! %s held by %s until %s\n",
			c.Path, c.Holder, ids.FromMillis(c.ExpiresAt).Format(time.RFC3339))
	}
	return ExitOK
}

func (a *App) claimDryRun(ctx context.Context, filter models.TaskFilter, jsonOut bool) int {
	filter.States = []models.TaskState{models.StateReady}
	filter.Limit = models.ReadyPreviewLimit
	tasks, err := a.rt.ListTasks(ctx, filter)
	if err != nil {
		return a.fail(err)
	}

	if jsonOut {
		code := a.emitJSON(map[string]any{"ready_preview": tasks})
		if code != ExitOK {
			return code
		}
		if len(tasks) == 0 {
			return ExitNoWork
		}
		return ExitOK
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.stdout, "no work available")
		return ExitNoWork
	}
	for _, t := range tasks {
		fmt.Fprintf(a.stdout, "ready: %s (priority %d, files %v)\n", t.ID, t.Priority, t.DeclaredFiles())
	}
	return ExitOK
}
