package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

// menuKeys are the SPC bindings for each destination.
var menuKeys = map[Kind]string{
	KindDashboard:  "d",
	KindAttendance: "a",
	KindTracking:   "t",
	KindHelp:       "h",
}

// NavMenu is the destination bar shared by every screen except Login.
// Screens embed it rather than inheriting from a common base view.
type NavMenu struct {
	nav     Navigator
	active  Kind
	printer *message.Printer
}

// NewNavMenu creates the menu for the screen of kind active.
func NewNavMenu(nav Navigator, active Kind, p *message.Printer) NavMenu {
	return NavMenu{nav: nav, active: active, printer: p}
}

// Update turns a MenuSelectMsg into a navigation request. Any other message
// yields nil. Selecting the current screen rebuilds it.
func (m NavMenu) Update(msg tea.Msg) tea.Cmd {
	sel, ok := msg.(MenuSelectMsg)
	if !ok || m.nav == nil {
		return nil
	}
	return m.nav.Go(sel.Kind)
}

// View renders the menu line, highlighting the active screen.
func (m NavMenu) View() string {
	entries := make([]string, 0, len(MenuKinds()))
	for _, k := range MenuKinds() {
		label := m.printer.Sprintf(k.String())
		style := Styles.MenuInactive
		if k == m.active {
			style = Styles.MenuActive
		}
		entries = append(entries, style.Render(label)+" "+Styles.MenuKey.Render("SPC "+menuKeys[k]))
	}
	return strings.Join(entries, Styles.Muted.Render("  │  ")) + "\n" +
		Styles.Hint.Render(m.printer.Sprintf("Press [SPC] for commands"))
}
