package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/allocation"
	"github.com/ib823/cockpit-engine/internal/plan"
)

var allocCmd = GroupCommand{
	Use:   "alloc",
	Short: "Resource allocation analysis",
	Subcommands: []*cobra.Command{
		allocCheckCmd,
		heatmapCmd,
	},
}.Build()

var allocCheckCmd = LeafCommand{
	Use:   "check <plan.json>",
	Short: "Detect over-allocated resources in a project plan",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "resource", Usage: "check a single resource id"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		resourceFlag, _ := cmd.Flags().GetString("resource")
		return runAllocCheck(cmd, args[0], resourceFlag)
	},
}.Build()

func runAllocCheck(cmd *cobra.Command, path, resourceFlag string) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}
	assignments, err := p.AllocationAssignments()
	if err != nil {
		return err
	}

	resources := resourceIDs(p, resourceFlag)
	w := cmd.OutOrStdout()

	overallocated := false
	for _, id := range resources {
		conflicts, err := allocation.OverallocatedPairs(allocation.ForResource(assignments, id))
		if err != nil {
			return err
		}
		if len(conflicts) == 0 {
			continue
		}
		overallocated = true

		_, _ = fmt.Fprintf(w, "%s\n", Error(fmt.Sprintf("%s is over-allocated:", p.ResourceName(id))))
		for _, c := range conflicts {
			_, _ = fmt.Fprintf(w, "  %s %s (%.0f%%) overlaps %s %s (%.0f%%): %.0f%% over %s\n",
				c.A.Window, ownerLabel(p, c.A), c.A.Percent,
				c.B.Window, ownerLabel(p, c.B), c.B.Percent,
				c.Percent, c.Overlap)
		}
	}

	if !overallocated {
		_, _ = fmt.Fprintln(w, Info("No over-allocation detected"))
	}
	return nil
}

// resourceIDs returns the ids to analyze: the single flagged one, or every
// resource in the plan.
func resourceIDs(p *plan.Plan, resourceFlag string) []string {
	if resourceFlag != "" {
		return []string{resourceFlag}
	}
	ids := make([]string, 0, len(p.Resources))
	for _, r := range p.Resources {
		ids = append(ids, r.ID)
	}
	return ids
}

// ownerLabel names an assignment by its owning phase or task, if the plan
// recorded one.
func ownerLabel(p *plan.Plan, a allocation.Assignment) string {
	for _, row := range p.Assignments {
		if row.Resource == a.ResourceID && row.Start == a.Window.Start.String() && row.End == a.Window.End.String() {
			if row.Owner != "" {
				return row.Owner
			}
			break
		}
	}
	return "assignment"
}
