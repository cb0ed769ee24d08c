package models

import (
	"fmt"
	"strings"
)

// Decision is the pre-commit enforcer's verdict for a set of staged paths.
type Decision struct {
	Allow     bool           `json:"allow"`
	Override  bool           `json:"override,omitempty"`
	Conflicts []FileConflict `json:"conflicts,omitempty"`
}

// Blocked reports whether the decision blocks the commit.
func (d *Decision) Blocked() bool {
	return !d.Allow
}

// Summary renders the human-readable block message naming each conflicting
// path, its holder, and the override variable that bypasses enforcement.
func (d *Decision) Summary(overrideVar string) string {
	if d.Allow {
		if d.Override {
			return fmt.Sprintf("commit allowed: override %s is set (%d conflict(s) recorded)", overrideVar, len(d.Conflicts))
		}
		return "commit allowed: no conflicting reservations"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "commit blocked: %d staged path(s) are reserved by other agents\n", len(d.Conflicts))
	for _, c := range d.Conflicts {
		fmt.Fprintf(&b, "  %s held by %s until %d\n", c.Path, c.Holder, c.ExpiresAt)
	}
	fmt.Fprintf(&b, "set %s=1 to override (the override is recorded for audit)", overrideVar)
	return b.String()
}
