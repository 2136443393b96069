package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"schooldesk/internal/school"
)

const (
	faqMaxWidth = 80
	faqMinWidth = 20
)

// HelpView lists the frequently asked questions.
type HelpView struct {
	menu    NavMenu
	printer *message.Printer
	width   int
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates the FAQ page. Answers wrap to the last known width.
func NewHelpView(nav Navigator, p *message.Printer) *HelpView {
	return &HelpView{menu: NewNavMenu(nav, KindHelp, p), printer: p}
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if cmd := h.menu.Update(msg); cmd != nil {
		return h, cmd
	}
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h.width = msg.Width
	}
	return h, nil
}

func (h *HelpView) wrapWidth() int {
	w := faqMaxWidth
	if h.width > 0 && h.width-4 < w {
		w = h.width - 4
	}
	if w < faqMinWidth {
		w = faqMinWidth
	}
	return w
}

// View implements View.
func (h *HelpView) View() string {
	p := h.printer
	wrap := lipgloss.NewStyle().Width(h.wrapWidth())

	s := h.menu.View() + "\n\n"
	s += Styles.Title.Render(p.Sprintf("Frequently asked questions"))
	for _, e := range school.FAQ() {
		s += "\n\n" + Styles.Section.Render(wrap.Render(p.Sprintf(e.Question)))
		s += "\n" + wrap.Render(p.Sprintf(e.Answer))
	}
	return s
}
