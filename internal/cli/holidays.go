package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

var holidaysCmd = LeafCommand{
	Use:   "holidays",
	Short: "List a region's public holidays in a date range",
	StrFlags: []StringFlag{
		{Name: "from", Usage: "start date"},
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
		return runHolidays(cmd, rc, fromFlag, toFlag, regionFlag)
	},
}.Build()

func runHolidays(cmd *cobra.Command, rc *runContext, fromFlag, toFlag, regionFlag string) error {
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

	holidays, err := rc.engine.HolidaysInRange(from, to, region)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(holidays) == 0 {
		_, _ = fmt.Fprintf(w, "No %s holidays between %s and %s\n", region, from, to)
		return nil
	}

	for _, h := range holidays {
		weekend := ""
		if calendar.IsWeekend(h.Date) {
			weekend = Silent("  (weekend)")
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s%s\n", h.Date, h.Date.Weekday(), h.Name, weekend)
	}
	return nil
}
