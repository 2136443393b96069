package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"schooldesk/internal/chart"
	"schooldesk/internal/school"
)

// DateLayout is how the dashboard shows the selected day.
const DateLayout = "2006-01-02"

const chartGap = 4

// DashboardView shows the day's attendance split, the average grade per
// subject and a date selector.
type DashboardView struct {
	menu    NavMenu
	printer *message.Printer
	date    time.Time
	width   int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard with the date selector on today.
func NewDashboardView(nav Navigator, p *message.Printer, today time.Time) *DashboardView {
	return &DashboardView{
		menu:    NewNavMenu(nav, KindDashboard, p),
		printer: p,
		date:    today,
	}
}

// Date returns the selected day.
func (d *DashboardView) Date() time.Time {
	return d.date
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if cmd := d.menu.Update(msg); cmd != nil {
		return d, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			d.date = d.date.AddDate(0, 0, -1)
		case "right", "l":
			d.date = d.date.AddDate(0, 0, 1)
		}
	}
	return d, nil
}

func (d *DashboardView) translate(points []chart.Point) []chart.Point {
	out := make([]chart.Point, len(points))
	for i, pt := range points {
		out[i] = chart.Point{Label: d.printer.Sprintf(pt.Label), Value: pt.Value}
	}
	return out
}

// Charts returns the two dashboard charts with translated labels.
func (d *DashboardView) Charts() (chart.Pie, chart.Bar) {
	pie := chart.Pie{
		Title:  d.printer.Sprintf("Daily attendance"),
		Points: d.translate(school.DailyAttendance()),
	}
	bar := chart.Bar{
		Title:  d.printer.Sprintf("Average grades"),
		Points: d.translate(school.AverageGrades()),
		Max:    school.GradeScaleMax,
	}
	return pie, bar
}

// View implements View.
func (d *DashboardView) View() string {
	p := d.printer
	pie, bar := d.Charts()
	left, right := pie.Render(), bar.Render()

	var charts string
	if d.width > 0 && lipgloss.Width(left)+chartGap+lipgloss.Width(right) > d.width {
		charts = left + "\n\n" + right
	} else {
		charts = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", chartGap), right)
	}

	var b strings.Builder
	b.WriteString(d.menu.View() + "\n\n")
	b.WriteString(Styles.Title.Render(p.Sprintf("Dashboard")) + "\n\n")
	b.WriteString(charts + "\n\n")
	b.WriteString(p.Sprintf("Date: %s", Styles.Section.Render(d.date.Format(DateLayout))) + "\n")
	b.WriteString(Styles.Hint.Render(p.Sprintf("←/→: change date")))
	return b.String()
}
