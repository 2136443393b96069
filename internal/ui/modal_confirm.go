package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title      string
	Label      string
	Help       string
	OnConfirm  func() tea.Msg
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:      title,
		Label:      label,
		Help:       "y/Enter: confirm  Esc: cancel",
		OnConfirm:  onConfirm,
		boxStyle:   Styles.BoxDanger,
		titleStyle: Styles.TitleWarning,
	}
}

// NewQuitConfirmModal asks before closing the application.
func NewQuitConfirmModal(p *message.Printer) *ConfirmModal {
	m := NewConfirmModal(p.Sprintf("Quit?"), p.Sprintf("Close the application"), tea.Quit)
	m.Help = p.Sprintf("y/Enter: confirm  Esc: cancel")
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += m.Label
	content += "\n\n" + Styles.Hint.Render(m.Help)
	return m.boxStyle.Render(content)
}
