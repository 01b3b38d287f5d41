package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ib823/cockpit-engine/internal/allocation"
)

const (
	resourceColWidth = 22
	weekColWidth     = 8
)

var (
	heatmapHeaderStyle = lipgloss.NewStyle().Bold(true)
	heatmapFooterStyle = lipgloss.NewStyle().Faint(true)
)

type heatmapModel struct {
	data       heatmapData
	scrollX    int // first visible week column
	scrollY    int // first visible resource row
	termWidth  int
	termHeight int
}

func (m heatmapModel) visibleWeeks() int {
	available := m.termWidth - resourceColWidth - 3
	if available <= 0 {
		return 1
	}
	cols := available / (weekColWidth + 3)
	if cols < 1 {
		cols = 1
	}
	if cols > len(m.data.Weeks) {
		cols = len(m.data.Weeks)
	}
	return cols
}

func (m heatmapModel) visibleRows() int {
	// header(1) + separator(1) + legend(1) + footer(1)
	available := m.termHeight - 4
	if available < 1 {
		return 1
	}
	if available > len(m.data.Rows) {
		return len(m.data.Rows)
	}
	return available
}

func (m heatmapModel) maxScrollX() int {
	max := len(m.data.Weeks) - m.visibleWeeks()
	if max < 0 {
		return 0
	}
	return max
}

func (m heatmapModel) maxScrollY() int {
	max := len(m.data.Rows) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func (m heatmapModel) clampScroll() heatmapModel {
	if m.scrollX > m.maxScrollX() {
		m.scrollX = m.maxScrollX()
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func (m heatmapModel) Init() tea.Cmd {
	return nil
}

func (m heatmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m.clampScroll(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.scrollX--
		case "right", "l":
			m.scrollX++
		case "up", "k":
			m.scrollY--
		case "down", "j":
			m.scrollY++
		case "home":
			m.scrollX = 0
		case "end":
			m.scrollX = m.maxScrollX()
		}
		return m.clampScroll(), nil
	}
	return m, nil
}

func (m heatmapModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeatmap(m.data, m.scrollX, m.scrollY, m.visibleWeeks(), m.visibleRows()))
	b.WriteString(heatmapFooterStyle.Render("←/→ scroll weeks  ↑/↓ scroll resources  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderHeatmap renders the visible slice of the heatmap as a fixed-width
// table with one colored cell per resource-week.
func renderHeatmap(data heatmapData, scrollX, scrollY, weekCount, rowCount int) string {
	var b strings.Builder

	b.WriteString(heatmapHeaderStyle.Render(fmt.Sprintf("%s — weekly allocated days (%s)", data.Project, data.Region)))
	b.WriteString("\n")

	// Header row: week start dates
	b.WriteString(pad("Resource", resourceColWidth))
	endWeek := scrollX + weekCount
	if endWeek > len(data.Weeks) {
		endWeek = len(data.Weeks)
	}
	for _, week := range data.Weeks[scrollX:endWeek] {
		b.WriteString(" | ")
		b.WriteString(heatmapHeaderStyle.Render(pad(week.Time().Format("Jan 02"), weekColWidth)))
	}
	b.WriteString("\n")

	endRow := scrollY + rowCount
	if endRow > len(data.Rows) {
		endRow = len(data.Rows)
	}
	for _, row := range data.Rows[scrollY:endRow] {
		b.WriteString(pad(row.Resource, resourceColWidth))
		for _, bucket := range row.Buckets[scrollX:endWeek] {
			b.WriteString(" | ")
			cell := pad(fmt.Sprintf("%.1f", bucket.AllocatedDays), weekColWidth)
			b.WriteString(Band(allocation.Classify(bucket.AllocatedDays), cell))
		}
		b.WriteString("\n")
	}

	b.WriteString(heatmapFooterStyle.Render(fmt.Sprintf("bands: %s ≤5  %s ≤6  %s >6",
		Band(allocation.Optimal, "optimal"),
		Band(allocation.Full, "full"),
		Band(allocation.Overallocated, "over"))))
	b.WriteString("\n")

	return b.String()
}

func pad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

func runHeatmapTable(cmd *cobra.Command, data heatmapData) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static table
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticHeatmap(out, data)
	}

	m := heatmapModel{
		data:       data,
		termWidth:  120,
		termHeight: 40,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticHeatmap(w io.Writer, data heatmapData) error {
	_, err := fmt.Fprint(w, renderHeatmap(data, 0, 0, len(data.Weeks), len(data.Rows)))
	return err
}
