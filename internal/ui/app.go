package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"schooldesk/internal/i18n"
)

// Options configures NewAppModel. Zero values fall back to sensible defaults.
type Options struct {
	Printer   *message.Printer
	Tracer    trace.Tracer
	ExportDir string
	Now       func() time.Time
}

// AppModel is the root model. It owns the router, the leader-key handler
// and the modals drawn on top of the mounted view.
type AppModel struct {
	Router     *Router
	KeyHandler *KeyHandler
	Modals     ModalStack
	Printer    *message.Printer

	size tea.WindowSizeMsg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. No view is mounted until
// Init navigates to the login screen.
func NewAppModel(opts Options) *AppModel {
	p := opts.Printer
	if p == nil {
		p = i18n.NewPrinter(i18n.DefaultLocale)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	factories := map[Kind]Factory{
		KindLogin: func(nav Navigator) View {
			return NewLoginView(nav, p)
		},
		KindDashboard: func(nav Navigator) View {
			return NewDashboardView(nav, p, now())
		},
		KindAttendance: func(nav Navigator) View {
			return NewAttendanceView(nav, p, exportDir, now)
		},
		KindTracking: func(nav Navigator) View {
			return NewTrackingView(nav, p)
		},
		KindHelp: func(nav Navigator) View {
			return NewHelpView(nav, p)
		},
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	for _, k := range MenuKinds() {
		reg.BindWithDescForMode("SPC "+menuKeys[k], menuSelect(k), k.String(), MenuKinds())
	}
	reg.BindWithDesc("SPC q", func() tea.Msg { return ShowQuitConfirmMsg{} }, "Quit")

	return &AppModel{
		Router:     NewRouter(factories, WithTracer(opts.Tracer)),
		KeyHandler: NewKeyHandler(reg),
		Printer:    p,
	}
}

func menuSelect(k Kind) tea.Cmd {
	return func() tea.Msg { return MenuSelectMsg{Kind: k} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(a.Printer.Sprintf("School Management System")),
		a.Router.Navigate(KindLogin),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		cmd := a.Router.Navigate(msg.Kind)
		if a.size.Width > 0 {
			// The new view has not seen the terminal size yet.
			return a, tea.Batch(cmd, a.Router.Update(a.size))
		}
		return a, cmd
	case ShowQuitConfirmMsg:
		a.Modals.Open(Modal{View: NewQuitConfirmModal(a.Printer), DismissKey: "esc"})
		return a, nil
	case DismissModalMsg:
		a.Modals.Close()
		return a, nil
	case tea.WindowSizeMsg:
		a.size = msg
		return a, a.Router.Update(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.Router.Update(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if cmd, handled := a.Modals.HandleKey(msg); handled {
		return cmd
	}

	kind, _ := a.Router.Active()
	if !a.capturingInput() || a.KeyHandler.LeaderWaiting {
		if consumed, cmd := a.KeyHandler.Handle(msg, kind); consumed {
			return cmd
		}
	}
	return a.Router.Update(msg)
}

func (a *appModelAdapter) capturingInput() bool {
	c, ok := a.Router.Current().(InputCapturer)
	return ok && c.CapturingInput()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if modal, ok := a.Modals.Render(a.size.Width, a.size.Height); ok {
		return modal
	}
	base := a.Router.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		kind, _ := a.Router.Active()
		base += "\n" + RenderKeybindHelp(a.KeyHandler, kind, a.Printer)
	}
	return base
}
