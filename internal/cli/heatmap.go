package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/allocation"
	"github.com/ib823/cockpit-engine/internal/calendar"
	"github.com/ib823/cockpit-engine/internal/plan"
)

var heatmapCmd = LeafCommand{
	Use:   "heatmap <plan.json>",
	Short: "Per-week allocated-day heatmap for a project's resources",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "resource", Usage: "limit to a single resource id"},
		{Name: "pdf", Usage: "write the heatmap to a PDF file instead of the terminal"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		resourceFlag, _ := cmd.Flags().GetString("resource")
		pdfFlag, _ := cmd.Flags().GetString("pdf")
		return runHeatmap(cmd, args[0], resourceFlag, pdfFlag)
	},
}.Build()

// heatmapRow is one resource's week-by-week allocation.
type heatmapRow struct {
	Resource string
	Buckets  []allocation.WeekBucket
}

// heatmapData is the complete heatmap for one project window.
type heatmapData struct {
	Project string
	Region  calendar.Region
	Weeks   []calendar.Day
	Rows    []heatmapRow
}

func runHeatmap(cmd *cobra.Command, path, resourceFlag, pdfFlag string) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}

	data, err := buildHeatmap(p, resourceFlag)
	if err != nil {
		return err
	}

	if pdfFlag != "" {
		if err := renderHeatmapPDF(data, pdfFlag); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Heatmap written to %s\n", pdfFlag)
		return nil
	}

	return runHeatmapTable(cmd, data)
}

func buildHeatmap(p *plan.Plan, resourceFlag string) (heatmapData, error) {
	region, err := p.ParsedRegion()
	if err != nil {
		return heatmapData{}, err
	}
	window, err := p.Window()
	if err != nil {
		return heatmapData{}, err
	}
	assignments, err := p.AllocationAssignments()
	if err != nil {
		return heatmapData{}, err
	}

	data := heatmapData{Project: p.Project, Region: region}

	for _, id := range resourceIDs(p, resourceFlag) {
		buckets, err := allocation.WeeklyAllocation(assignments, id, window, region)
		if err != nil {
			return heatmapData{}, err
		}
		if data.Weeks == nil {
			for _, b := range buckets {
				data.Weeks = append(data.Weeks, b.WeekStart)
			}
		}
		data.Rows = append(data.Rows, heatmapRow{
			Resource: p.ResourceName(id),
			Buckets:  buckets,
		})
	}
	return data, nil
}
