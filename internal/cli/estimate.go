package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/calendar"
	"github.com/ib823/cockpit-engine/internal/estimator"
	"github.com/ib823/cockpit-engine/internal/plan"
	"github.com/ib823/cockpit-engine/internal/timeline"
)

var estimateCmd = LeafCommand{
	Use:   "estimate <plan.json>",
	Short: "Estimate implementation effort and phase timeline",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "start", Usage: "project start date; lays phases onto the business calendar"},
		{Name: "region", Usage: "region code for the timeline (defaults to the plan's region)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext()
		if err != nil {
			return err
		}
		startFlag, _ := cmd.Flags().GetString("start")
		regionFlag, _ := cmd.Flags().GetString("region")
		return runEstimate(cmd, rc, args[0], startFlag, regionFlag)
	},
}.Build()

func runEstimate(cmd *cobra.Command, rc *runContext, path, startFlag, regionFlag string) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}
	if p.Estimate == nil {
		return fmt.Errorf("plan %q has no estimate inputs", p.Project)
	}

	res, err := estimator.Calculate(*p.Estimate)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Primary(fmt.Sprintf("%s — %s", p.Project, p.Estimate.Profile.Name)))
	_, _ = fmt.Fprintf(w, "Total effort:     %.1f MD (PMO %.1f MD)\n", res.TotalMD, res.PMOMD)
	_, _ = fmt.Fprintf(w, "Duration:         %.1f months\n", res.DurationMonths)
	_, _ = fmt.Fprintf(w, "Monthly capacity: %.1f MD\n", res.CapacityPerMonth)
	_, _ = fmt.Fprintf(w, "Coefficients:     Sb=%.2f Pc=%.2f Os=%.2f\n",
		res.Coefficients.ScopeBreadth, res.Coefficients.ProcessComplexity, res.Coefficients.OrgScale)

	if startFlag == "" {
		for _, ph := range res.Phases {
			_, _ = fmt.Fprintf(w, "  %-8s %6.1f MD  %.1f months\n", ph.Name, ph.EffortMD, ph.DurationMonths)
		}
		return nil
	}

	if regionFlag == "" {
		regionFlag = p.Region
	}
	region, err := rc.resolveRegion(regionFlag)
	if err != nil {
		return err
	}
	start, err := calendar.ParseDay(startFlag)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}

	phases, err := timeline.Build(rc.engine, region, start, res.Phases, rc.cfg.WorkdaysPerMonth)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Timeline (%s, %g working days/month):\n", region, rc.cfg.WorkdaysPerMonth)
	for _, ph := range phases {
		_, _ = fmt.Fprintf(w, "  %-8s %s  %3d working days  %6.1f MD\n",
			ph.Name, ph.Window, ph.WorkingDays, ph.EffortMD)
	}
	return nil
}
