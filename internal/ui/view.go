package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or modal with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Unmounter is implemented by views that own resources to release when the
// router tears them down.
type Unmounter interface {
	Unmount()
}

// InputCapturer is implemented by views with a text field. While it reports
// true, printable keys belong to the view and leader bindings are skipped.
type InputCapturer interface {
	CapturingInput() bool
}
