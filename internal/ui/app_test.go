package ui

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *appModelAdapter {
	t.Helper()
	return newTestAppIn(t, t.TempDir())
}

func newTestAppIn(t *testing.T, exportDir string) *appModelAdapter {
	t.Helper()
	m := NewAppModel(Options{
		Printer:   english(),
		ExportDir: exportDir,
		Now:       func() time.Time { return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC) },
	})
	a := m.AsTeaModel().(*appModelAdapter)
	a.Init()
	return a
}

// send feeds msg to the app and returns the command it produced.
func send(a *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

// press sends a key and returns the resulting command unexecuted.
func press(a *appModelAdapter, key string) tea.Cmd {
	return send(a, keyMsg(key))
}

// follow runs a navigation chain: menu selections and modal messages are fed
// back to the app until a NavigateMsg lands. The mounted view's Init command
// is dropped since cursor blinks would block.
func follow(t *testing.T, a *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case MenuSelectMsg, ShowQuitConfirmMsg, DismissModalMsg:
			cmd = send(a, msg)
		case NavigateMsg:
			send(a, msg)
			return
		default:
			t.Fatalf("unexpected message %T", msg)
		}
	}
}

func activeKind(t *testing.T, a *appModelAdapter) Kind {
	t.Helper()
	k, ok := a.Router.Active()
	require.True(t, ok, "no view mounted")
	return k
}

func TestApp_InitMountsLogin(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, KindLogin, activeKind(t, a))
	assert.Equal(t, 1, a.Router.Mounted())
	assert.Contains(t, a.View(), "School Management System")
}

func TestApp_LoginThenMenu(t *testing.T) {
	a := newTestApp(t)

	follow(t, a, press(a, "enter"))
	assert.Equal(t, KindDashboard, activeKind(t, a))

	assert.Nil(t, press(a, " "))
	assert.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, a.View(), "Attendance")
	follow(t, a, press(a, "a"))
	assert.Equal(t, KindAttendance, activeKind(t, a))

	press(a, " ")
	follow(t, a, press(a, "t"))
	assert.Equal(t, KindTracking, activeKind(t, a))

	// The search field has focus: space and letters are typed, not leader keys.
	press(a, " ")
	press(a, "h")
	assert.Equal(t, KindTracking, activeKind(t, a))
	assert.False(t, a.KeyHandler.LeaderWaiting)
	assert.Equal(t, " h", a.Router.Current().(*TrackingView).input.Value())

	press(a, "esc")
	press(a, " ")
	follow(t, a, press(a, "h"))
	assert.Equal(t, KindHelp, activeKind(t, a))

	press(a, " ")
	follow(t, a, press(a, "d"))
	assert.Equal(t, KindDashboard, activeKind(t, a))
	assert.Equal(t, 1, a.Router.Mounted())
}

func TestApp_LeaderIgnoredOnLogin(t *testing.T) {
	a := newTestApp(t)

	press(a, " ")
	press(a, "d")
	assert.Equal(t, KindLogin, activeKind(t, a))
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_QuitConfirm(t *testing.T) {
	a := newTestApp(t)
	follow(t, a, press(a, "enter"))

	press(a, " ")
	follow(t, a, press(a, "q"))
	require.Equal(t, 1, a.Modals.Len())
	assert.Contains(t, a.View(), "Quit?")

	// Keys go to the modal while it is open.
	day := a.Router.Current().(*DashboardView).Date()
	assert.Nil(t, press(a, "left"))
	assert.Equal(t, day, a.Router.Current().(*DashboardView).Date())

	assert.Nil(t, press(a, "esc"))
	assert.Zero(t, a.Modals.Len())

	press(a, " ")
	follow(t, a, press(a, "q"))
	cmd := press(a, "y")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_ModalCancelWithN(t *testing.T) {
	a := newTestApp(t)
	follow(t, a, press(a, "enter"))
	send(a, ShowQuitConfirmMsg{})
	require.Equal(t, 1, a.Modals.Len())

	follow(t, a, press(a, "n"))
	assert.Zero(t, a.Modals.Len())
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	a := newTestApp(t)
	cmd := send(a, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_WindowSizeReachesNewView(t *testing.T) {
	a := newTestApp(t)
	send(a, tea.WindowSizeMsg{Width: 50, Height: 30})

	follow(t, a, press(a, "enter"))
	press(a, " ")
	follow(t, a, press(a, "h"))
	help, ok := a.Router.Current().(*HelpView)
	require.True(t, ok)
	assert.Equal(t, 50, help.width)
}

func TestApp_LeaderHelpBar(t *testing.T) {
	a := newTestApp(t)
	follow(t, a, press(a, "enter"))
	assert.NotContains(t, a.View(), "cancel")

	press(a, " ")
	out := a.View()
	for _, want := range []string{"Dashboard", "Tracking", "Help", "Quit", "cancel"} {
		assert.Contains(t, out, want)
	}
}

func TestApp_ExportFailureLoggedAfterLeavingAttendance(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	a := newTestAppIn(t, blocker)

	follow(t, a, press(a, "enter"))
	press(a, " ")
	follow(t, a, press(a, "a"))
	export := press(a, "x")
	require.NotNil(t, export)

	press(a, " ")
	follow(t, a, press(a, "h"))
	require.Equal(t, KindHelp, activeKind(t, a))

	msg := export()
	done, ok := msg.(attendanceExportedMsg)
	require.True(t, ok, "got %T", msg)
	require.Error(t, done.Err)

	assert.Nil(t, send(a, msg))
	assert.Equal(t, KindHelp, activeKind(t, a))
	assert.Contains(t, logs.String(), "ui: attendance export failed")
}
