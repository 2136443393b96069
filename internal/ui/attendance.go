package ui

import (
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"schooldesk/internal/export"
	"schooldesk/internal/school"
)

// AttendanceView lists the day's attendance sheet and can export it to Excel.
type AttendanceView struct {
	menu      NavMenu
	printer   *message.Printer
	table     table.Model
	records   []school.AttendanceRecord
	exportDir string
	now       func() time.Time
	status    string
	failed    bool
}

// Ensure AttendanceView implements View.
var _ View = (*AttendanceView)(nil)

// NewAttendanceView creates the attendance table from the literal roll.
// Exports go to exportDir and are named after now().
func NewAttendanceView(nav Navigator, p *message.Printer, exportDir string, now func() time.Time) *AttendanceView {
	records := school.AttendanceRoll()
	headers := attendanceHeaders(p)
	widths := []int{4, 12, 10, 10, 8}
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(attendanceRows(records)),
		table.WithFocused(true),
		table.WithHeight(len(records)+1),
	)
	t.SetStyles(NewTableStyles())

	if now == nil {
		now = time.Now
	}
	return &AttendanceView{
		menu:      NewNavMenu(nav, KindAttendance, p),
		printer:   p,
		table:     t,
		records:   records,
		exportDir: exportDir,
		now:       now,
	}
}

func attendanceHeaders(p *message.Printer) []string {
	return []string{
		p.Sprintf("No."),
		p.Sprintf("Name"),
		p.Sprintf("Attended"),
		p.Sprintf("Late"),
		p.Sprintf("Missed"),
	}
}

func attendanceRows(records []school.AttendanceRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			strconv.Itoa(r.Number),
			r.Name,
			school.Mark(r.Present),
			school.Mark(r.Late),
			school.Mark(r.Absent),
		}
	}
	return rows
}

// Rows returns the rows currently shown by the table.
func (a *AttendanceView) Rows() []table.Row {
	return a.table.Rows()
}

// Init implements View.
func (a *AttendanceView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (a *AttendanceView) Update(msg tea.Msg) (View, tea.Cmd) {
	if cmd := a.menu.Update(msg); cmd != nil {
		return a, cmd
	}
	switch msg := msg.(type) {
	case attendanceExportedMsg:
		if msg.Err != nil {
			a.status = a.printer.Sprintf("Export failed: %v", msg.Err)
			a.failed = true
		} else {
			a.status = a.printer.Sprintf("Exported to %s", msg.Path)
			a.failed = false
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "x" {
			a.status = a.printer.Sprintf("Exporting…")
			a.failed = false
			return a, a.exportCmd()
		}
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// exportCmd writes the workbook off the update loop. Failures are logged
// here: the result message may reach a view mounted after this one.
func (a *AttendanceView) exportCmd() tea.Cmd {
	path := filepath.Join(a.exportDir, export.FileName(a.now().Format(DateLayout)))
	sheet := a.printer.Sprintf("Attendance")
	headers := attendanceHeaders(a.printer)
	records := append([]school.AttendanceRecord(nil), a.records...)
	return func() tea.Msg {
		err := export.WriteAttendance(path, sheet, headers, records)
		if err != nil {
			log.Printf("ui: attendance export failed: %v", err)
		}
		return attendanceExportedMsg{Path: path, Err: err}
	}
}

// Unmount implements Unmounter.
func (a *AttendanceView) Unmount() {
	a.table.Blur()
	a.table.SetRows(nil)
	a.records = nil
}

// View implements View.
func (a *AttendanceView) View() string {
	p := a.printer
	s := a.menu.View() + "\n\n"
	s += Styles.Title.Render(p.Sprintf("Attendance")) + "\n\n"
	s += a.table.View() + "\n\n"
	s += Styles.Hint.Render(p.Sprintf("x: export to Excel"))
	if a.status != "" {
		style := Styles.Status
		if a.failed {
			style = Styles.Error
		}
		s += "\n" + style.Render(a.status)
	}
	return s
}
