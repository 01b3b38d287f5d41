package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

var workdaysCmd = GroupCommand{
	Use:   "workdays",
	Short: "Working-day arithmetic",
	Subcommands: []*cobra.Command{
		workdaysCountCmd,
		workdaysAddCmd,
	},
}.Build()

var workdaysCountCmd = LeafCommand{
	Use:   "count",
	Short: "Count working days between two dates, inclusive",
	StrFlags: []StringFlag{
		{Name: "from", Usage: "start date (e.g. 2026-01-01)"},
		{Name: "to", Usage: "end date, inclusive"},
		{Name: "region", Usage: "region code (ABMY, ABSG, ABVN)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext()
		if err != nil {
			return err
		}
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		regionFlag, _ := cmd.Flags().GetString("region")
		return runWorkdaysCount(cmd, rc, fromFlag, toFlag, regionFlag)
	},
}.Build()

func runWorkdaysCount(cmd *cobra.Command, rc *runContext, fromFlag, toFlag, regionFlag string) error {
	region, err := rc.resolveRegion(regionFlag)
	if err != nil {
		return err
	}
	from, err := calendar.ParseDay(fromFlag)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := calendar.ParseDay(toFlag)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	count, err := rc.engine.WorkingDaysBetween(from, to, region)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d working days in %s from %s to %s\n", count, region, from, to)
	return nil
}

var workdaysAddCmd = LeafCommand{
	Use:   "add",
	Short: "Step a number of working days from a base date",
	StrFlags: []StringFlag{
		{Name: "base", Usage: "base date (day 0)"},
		{Name: "region", Usage: "region code (ABMY, ABSG, ABVN)"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Usage: "working days to step (may be negative)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext()
		if err != nil {
			return err
		}
		baseFlag, _ := cmd.Flags().GetString("base")
		regionFlag, _ := cmd.Flags().GetString("region")
		days, _ := cmd.Flags().GetInt("days")
		return runWorkdaysAdd(cmd, rc, baseFlag, regionFlag, days)
	},
}.Build()

func runWorkdaysAdd(cmd *cobra.Command, rc *runContext, baseFlag, regionFlag string, days int) error {
	region, err := rc.resolveRegion(regionFlag)
	if err != nil {
		return err
	}
	base, err := calendar.ParseDay(baseFlag)
	if err != nil {
		return fmt.Errorf("--base: %w", err)
	}

	result, err := rc.engine.AddWorkingDays(base, days, region)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %+d working days (%s) = %s (%s)\n",
		base, days, region, result, result.Weekday())
	return nil
}
