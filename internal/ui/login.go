package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

const (
	fieldEmail    = "email"
	fieldPassword = "password"
)

// LoginView asks for an email and password. Submitting goes straight to the
// dashboard: no credential check exists yet.
type LoginView struct {
	nav      Navigator
	printer  *message.Printer
	email    textinput.Model
	password textinput.Model
	focus    *FocusManager
}

// Ensure LoginView implements View.
var _ View = (*LoginView)(nil)

// NewLoginView creates the login form with the email field focused.
func NewLoginView(nav Navigator, p *message.Printer) *LoginView {
	email := textinput.New()
	email.Placeholder = "nombre@colegio.edu"
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Width = 32

	v := &LoginView{
		nav:      nav,
		printer:  p,
		email:    email,
		password: password,
	}
	v.focus = &FocusManager{
		Current:  fieldEmail,
		Order:    []string{fieldEmail, fieldPassword},
		OnChange: v.onFocusChange,
	}
	return v
}

func (v *LoginView) input(id string) *textinput.Model {
	if id == fieldPassword {
		return &v.password
	}
	return &v.email
}

func (v *LoginView) onFocusChange(from, to string) {
	v.input(from).Blur()
	v.input(to).Focus()
}

// Init implements View.
func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *LoginView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			log.Printf("ui: login submitted")
			return v, v.nav.Go(KindDashboard)
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "esc":
			v.clear()
			return v, nil
		}
	}
	in := v.input(v.focus.Current)
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return v, cmd
}

// clear empties both fields and puts the cursor back on the email.
func (v *LoginView) clear() {
	v.email.SetValue("")
	v.password.SetValue("")
	v.focus.SetFocus(fieldEmail)
}

// CapturingInput implements InputCapturer; one of the fields always has focus.
func (v *LoginView) CapturingInput() bool {
	return true
}

// Unmount implements Unmounter. The typed password is dropped with the view.
func (v *LoginView) Unmount() {
	v.email.Blur()
	v.password.Blur()
	v.password.SetValue("")
}

// View implements View.
func (v *LoginView) View() string {
	p := v.printer
	content := Styles.Title.Render(p.Sprintf("School Management System")) + "\n\n"
	content += Styles.Label.Render(p.Sprintf("Email:")) + "\n" + v.email.View() + "\n\n"
	content += Styles.Label.Render(p.Sprintf("Password:")) + "\n" + v.password.View() + "\n\n"
	content += Styles.Section.Render("[ "+p.Sprintf("Login")+" ]") + "\n\n"
	content += Styles.Hint.Render(p.Sprintf("Enter: log in  Tab: next field  Esc: clear  Ctrl+C: quit"))
	return Styles.Box.Render(content)
}
