package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ib823/cockpit-engine/internal/allocation"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}

	pdfBandColors = map[allocation.Utilization]props.Color{
		allocation.Idle:          {Red: 150, Green: 150, Blue: 150},
		allocation.Optimal:       {Red: 0, Green: 140, Blue: 0},
		allocation.Full:          {Red: 190, Green: 150, Blue: 0},
		allocation.Overallocated: {Red: 200, Green: 0, Blue: 0},
	}
)

// renderHeatmapPDF generates a PDF allocation heatmap and saves it to the
// given path. Weeks are chunked into page-width groups of columns.
func renderHeatmapPDF(data heatmapData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, data.Project, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Weekly allocated days — region %s", data.Region), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// 9 week columns fit beside a 3-wide resource column in maroto's
	// 12-column grid.
	const weeksPerChunk = 9

	for offset := 0; offset < len(data.Weeks); offset += weeksPerChunk {
		end := offset + weeksPerChunk
		if end > len(data.Weeks) {
			end = len(data.Weeks)
		}
		addHeatmapChunk(m, data, offset, end)
		m.AddRow(4) // spacer between chunks
	}

	document, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generate heatmap PDF: %w", err)
	}
	return document.Save(outputPath)
}

// addHeatmapChunk writes one group of week columns: a header row with the
// week start dates, then one row per resource with band-colored values.
func addHeatmapChunk(m core.Maroto, data heatmapData, from, to int) {
	headerCols := []core.Col{
		text.NewCol(3, "Resource", props.Text{
			Style: fontstyle.Bold,
			Size:  9,
			Color: &pdfHeaderColor,
		}),
	}
	for _, week := range data.Weeks[from:to] {
		headerCols = append(headerCols, text.NewCol(1, week.Time().Format("Jan 02"), props.Text{
			Style: fontstyle.Bold,
			Size:  8,
			Align: align.Center,
			Color: &pdfHeaderColor,
		}))
	}
	m.AddRow(7, headerCols...)
	m.AddRow(2, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	for _, row := range data.Rows {
		cols := []core.Col{
			text.NewCol(3, row.Resource, props.Text{Size: 9}),
		}
		for _, bucket := range row.Buckets[from:to] {
			color := pdfBandColors[allocation.Classify(bucket.AllocatedDays)]
			cols = append(cols, text.NewCol(1, fmt.Sprintf("%.1f", bucket.AllocatedDays), props.Text{
				Size:  8,
				Align: align.Center,
				Color: &color,
			}))
		}
		m.AddRow(6, cols...)
	}
}
