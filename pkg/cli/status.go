package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// runStatus handles `mafctl status`: the cheap read-only summary.
func (a *App) runStatus(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	jsonOut := fs.Bool("json", false, "emit one JSON document instead of prose")
	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	summary, err := a.rt.Summary(ctx)
	if err != nil {
		return a.fail(err)
	}

	if *jsonOut {
		return a.emitJSON(summary)
	}

	fmt.Fprintf(a.stdout, "backend: %s", summary.Backend)
	if summary.ReadOnly {
		fmt.Fprint(a.stdout, " (read-only)")
	}
	fmt.Fprintln(a.stdout)

	fmt.Fprint(a.stdout, "tasks:")
	for _, st := range models.AllTaskStates {
		if n := summary.TaskCounts[st]; n > 0 {
			fmt.Fprintf(a.stdout, " %s=%d", st, n)
		}
	}
	fmt.Fprintln(a.stdout)

	fmt.Fprintf(a.stdout, "leases: %d  reservations: %d  agents: %d\n",
		summary.ActiveLeases, summary.ActiveReservations, summary.ActiveAgents)

	for _, ev := range summary.RecentErrors {
		fmt.Fprintf(a.stdout, "recent %s at %s: %v\n",
			ev.Kind, ids.FromMillis(ev.TS).Format(time.RFC3339), ev.Data)
	}
	return ExitOK
}
