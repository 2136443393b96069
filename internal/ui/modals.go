package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a view drawn over the mounted screen. While open it takes every
// key; DismissKey (when set) closes it without consulting the view.
type Modal struct {
	View       View
	DismissKey string
}

// ModalStack holds the open modals. Only the most recently opened one is
// drawn and receives input.
type ModalStack struct {
	open []Modal
}

// Open shows m above any modal already open.
func (s *ModalStack) Open(m Modal) {
	s.open = append(s.open, m)
}

// Close drops the top modal; false when none was open.
func (s *ModalStack) Close() bool {
	if len(s.open) == 0 {
		return false
	}
	s.open = s.open[:len(s.open)-1]
	return true
}

// Len returns the number of open modals.
func (s *ModalStack) Len() int {
	return len(s.open)
}

func (s *ModalStack) top() *Modal {
	if len(s.open) == 0 {
		return nil
	}
	return &s.open[len(s.open)-1]
}

// Active returns the view of the top modal, or nil.
func (s *ModalStack) Active() View {
	if m := s.top(); m != nil {
		return m.View
	}
	return nil
}

// HandleKey routes a key to the top modal. handled is false when no modal
// is open, in which case the key belongs to the mounted screen.
func (s *ModalStack) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	m := s.top()
	if m == nil {
		return nil, false
	}
	if m.DismissKey != "" && msg.String() == m.DismissKey {
		s.Close()
		return nil, true
	}
	m.View, cmd = m.View.Update(msg)
	return cmd, true
}

// Render draws the top modal, centered when the terminal size is known.
func (s *ModalStack) Render(width, height int) (string, bool) {
	v := s.Active()
	if v == nil {
		return "", false
	}
	if width <= 0 || height <= 0 {
		return v.View(), true
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, v.View()), true
}
