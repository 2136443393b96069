package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/message"

	"schooldesk/internal/chart"
	"schooldesk/internal/i18n"
	"schooldesk/internal/school"
)

// recordingNav records navigation requests instead of performing them.
type recordingNav struct {
	requests []Kind
}

func (n *recordingNav) Go(k Kind) tea.Cmd {
	n.requests = append(n.requests, k)
	return func() tea.Msg { return NavigateMsg{Kind: k} }
}

func english() *message.Printer {
	return i18n.NewPrinter("en")
}

func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestLoginView_SubmitGoesToDashboard(t *testing.T) {
	nav := &recordingNav{}
	v := NewLoginView(nav, english())

	typeText(v, "profe@colegio.edu")
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Kind: KindDashboard}, cmd())
	assert.Equal(t, []Kind{KindDashboard}, nav.requests)
}

func TestLoginView_EmptySubmitStillNavigates(t *testing.T) {
	nav := &recordingNav{}
	v := NewLoginView(nav, english())

	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, []Kind{KindDashboard}, nav.requests)
}

func TestLoginView_TabMovesFocusAndMasksPassword(t *testing.T) {
	v := NewLoginView(&recordingNav{}, english())
	assert.True(t, v.email.Focused())

	v.Update(keyMsg("tab"))
	assert.Equal(t, fieldPassword, v.focus.Current)
	assert.False(t, v.email.Focused())
	assert.True(t, v.password.Focused())

	typeText(v, "secret")
	assert.Equal(t, "secret", v.password.Value())
	assert.NotContains(t, v.View(), "secret")

	v.Update(keyMsg("shift+tab"))
	assert.Equal(t, fieldEmail, v.focus.Current)
	assert.True(t, v.CapturingInput())

	v.Unmount()
	assert.Empty(t, v.password.Value())
}

func TestLoginView_EscClearsAndRefocusesEmail(t *testing.T) {
	v := NewLoginView(&recordingNav{}, english())
	typeText(v, "profe@colegio.edu")
	v.Update(keyMsg("tab"))
	typeText(v, "secret")

	v.Update(keyMsg("esc"))
	assert.Empty(t, v.email.Value())
	assert.Empty(t, v.password.Value())
	assert.Equal(t, fieldEmail, v.focus.Current)
	assert.True(t, v.email.Focused())
	assert.False(t, v.password.Focused())
}

func TestLoginView_HintNamesCtrlCQuit(t *testing.T) {
	assert.Contains(t, NewLoginView(&recordingNav{}, english()).View(), "Ctrl+C: quit")
	assert.Contains(t, NewLoginView(&recordingNav{}, i18n.NewPrinter("es")).View(), "Ctrl+C: salir")
}

func TestLoginView_IgnoresMenuSelect(t *testing.T) {
	nav := &recordingNav{}
	v := NewLoginView(nav, english())

	v.Update(MenuSelectMsg{Kind: KindHelp})
	assert.Empty(t, nav.requests)
}

func TestLoginView_Spanish(t *testing.T) {
	v := NewLoginView(&recordingNav{}, i18n.NewPrinter("es"))
	out := v.View()
	assert.Contains(t, out, "Sistema de Gestión Escolar")
	assert.Contains(t, out, "Contraseña:")
}

func TestNavMenu_SelectNavigates(t *testing.T) {
	nav := &recordingNav{}
	m := NewNavMenu(nav, KindDashboard, english())

	assert.Nil(t, m.Update(keyMsg("x")))
	cmd := m.Update(MenuSelectMsg{Kind: KindTracking})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Kind: KindTracking}, cmd())

	out := m.View()
	for _, k := range MenuKinds() {
		assert.Contains(t, out, k.String())
		assert.Contains(t, out, "SPC "+menuKeys[k])
	}
	assert.NotContains(t, out, "Login")
}

func TestDashboardView_Charts(t *testing.T) {
	day := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	v := NewDashboardView(&recordingNav{}, english(), day)

	pie, bar := v.Charts()
	require.Len(t, pie.Points, 3)
	assert.Equal(t, "Present", pie.Points[0].Label)
	assert.Equal(t, []string{"66.7%", "22.2%", "11.1%"}, percents(pie.Fractions()))
	assert.Equal(t, float64(school.GradeScaleMax), bar.Max)
	assert.Equal(t, []int{8, 9, 7, 8}, bar.Heights())

	out := v.View()
	assert.Contains(t, out, "Daily attendance")
	assert.Contains(t, out, "Average grades")
	assert.Contains(t, out, "2024-03-15")
}

func percents(fs []float64) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = chart.Percent(f)
	}
	return out
}

func TestDashboardView_DateSelector(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	v := NewDashboardView(&recordingNav{}, english(), day)

	v.Update(keyMsg("left"))
	assert.Equal(t, "2024-02-29", v.Date().Format(DateLayout))
	v.Update(keyMsg("right"))
	v.Update(keyMsg("l"))
	assert.Equal(t, "2024-03-02", v.Date().Format(DateLayout))
}

func TestDashboardView_SpanishLabels(t *testing.T) {
	v := NewDashboardView(&recordingNav{}, i18n.NewPrinter("es"), time.Now())
	pie, _ := v.Charts()
	assert.Equal(t, "Presente", pie.Points[0].Label)
	assert.Contains(t, v.View(), "Asistencia del día")
}

func TestAttendanceView_Rows(t *testing.T) {
	v := NewAttendanceView(&recordingNav{}, english(), t.TempDir(), nil)

	rows := v.Rows()
	require.Len(t, rows, 5)
	for _, r := range rows {
		require.Len(t, r, 5)
		marks := 0
		for _, cell := range r[2:] {
			assert.Contains(t, []string{school.MarkYes, school.MarkNo}, cell)
			if cell == school.MarkYes {
				marks++
			}
		}
		assert.Equal(t, 1, marks, "row %v", r)
	}
	assert.Equal(t, []string{"1", "Juan", "✓", "", ""}, []string(rows[0]))
	assert.Equal(t, []string{"5", "Carlos", "", "", "✓"}, []string(rows[4]))

	out := v.View()
	assert.Contains(t, out, "Attended")
	assert.Contains(t, out, "Missed")
}

func TestAttendanceView_Export(t *testing.T) {
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
	v := NewAttendanceView(&recordingNav{}, english(), dir, now)

	_, cmd := v.Update(keyMsg("x"))
	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Exporting…")

	msg := cmd()
	done, ok := msg.(attendanceExportedMsg)
	require.True(t, ok, "got %T", msg)
	require.NoError(t, done.Err)
	assert.Equal(t, filepath.Join(dir, "attendance-2024-05-02.xlsx"), done.Path)
	_, err := os.Stat(done.Path)
	require.NoError(t, err)

	v.Update(msg)
	assert.Contains(t, v.View(), "Exported to "+done.Path)
}

func TestAttendanceView_ExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	v := NewAttendanceView(&recordingNav{}, english(), blocker, nil)

	_, cmd := v.Update(keyMsg("x"))
	require.NotNil(t, cmd)
	v.Update(cmd())
	assert.Contains(t, v.View(), "Export failed:")
}

func TestAttendanceView_UnmountClears(t *testing.T) {
	v := NewAttendanceView(&recordingNav{}, english(), t.TempDir(), nil)
	v.Unmount()
	assert.Empty(t, v.Rows())
}

func TestTrackingView_SearchShowsPlaceholderStats(t *testing.T) {
	v := NewTrackingView(&recordingNav{}, english())
	assert.True(t, v.CapturingInput())
	assert.Nil(t, v.Snapshot())

	typeText(v, "Ana")
	v.Update(keyMsg("enter"))
	require.NotNil(t, v.Snapshot())
	assert.Equal(t, "Ana", v.Snapshot().Name)
	assert.False(t, v.CapturingInput(), "search leaves the field")

	out := v.View()
	assert.Contains(t, out, "Student: Ana")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "15.5")
	assert.Contains(t, out, "85%")

	// A different name yields the same figures.
	v.Update(keyMsg("/"))
	assert.True(t, v.CapturingInput())
	v.input.SetValue("Zzz")
	v.Update(keyMsg("enter"))
	assert.Equal(t, "Zzz", v.Snapshot().Name)
	assert.Equal(t, school.Lookup("Ana").Stats, v.Snapshot().Stats)
}

func TestTrackingView_BehaviorCycles(t *testing.T) {
	v := NewTrackingView(&recordingNav{}, english())
	v.Update(keyMsg("enter"))
	assert.Empty(t, v.Behavior())

	v.Update(keyMsg("right"))
	assert.Equal(t, "Excellent", v.Behavior())
	v.Update(keyMsg("left"))
	assert.Equal(t, "Poor", v.Behavior())
	v.Update(keyMsg("h"))
	assert.Equal(t, "Fair", v.Behavior())
	assert.Contains(t, v.View(), "‹ ")

	// A new search resets the selection.
	v.Update(keyMsg("tab"))
	v.Update(keyMsg("enter"))
	assert.Empty(t, v.Behavior())
}

func TestTrackingView_EscLeavesField(t *testing.T) {
	v := NewTrackingView(&recordingNav{}, english())
	v.Update(keyMsg("esc"))
	assert.False(t, v.CapturingInput())
	assert.Nil(t, v.Snapshot())
}

func TestTrackingView_SpanishStats(t *testing.T) {
	v := NewTrackingView(&recordingNav{}, i18n.NewPrinter("es"))
	v.Update(keyMsg("enter"))
	out := v.View()
	assert.Contains(t, out, "% de asistencias")
	assert.NotContains(t, out, "%%")
}

func TestHelpView_ListsFAQ(t *testing.T) {
	v := NewHelpView(&recordingNav{}, english())
	v.Update(tea.WindowSizeMsg{Width: 200, Height: 40})

	out := v.View()
	assert.Contains(t, out, "Frequently asked questions")
	for _, e := range school.FAQ() {
		assert.Contains(t, out, e.Question)
	}
	assert.Less(t, strings.Index(out, school.FAQ()[0].Question), strings.Index(out, school.FAQ()[2].Question))
}

func TestHelpView_WrapWidth(t *testing.T) {
	v := NewHelpView(&recordingNav{}, english())
	assert.Equal(t, faqMaxWidth, v.wrapWidth())
	v.Update(tea.WindowSizeMsg{Width: 10})
	assert.Equal(t, faqMinWidth, v.wrapWidth())
	v.Update(tea.WindowSizeMsg{Width: 50})
	assert.Equal(t, 46, v.wrapWidth())
}

func TestConfirmModal_Keys(t *testing.T) {
	var confirmed bool
	m := NewConfirmModal("Sure?", "label", func() tea.Msg {
		confirmed = true
		return nil
	})

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())

	_, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, confirmed)

	_, cmd = m.Update(keyMsg("j"))
	assert.Nil(t, cmd)
}
