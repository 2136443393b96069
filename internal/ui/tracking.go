package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"schooldesk/internal/school"
)

// TrackingView searches a student by name and shows their snapshot next to
// a behavior selector for today.
type TrackingView struct {
	menu     NavMenu
	printer  *message.Printer
	input    textinput.Model
	snapshot *school.StudentSnapshot
	ratings  []string
	behavior int // index into ratings; -1 until chosen
}

// Ensure TrackingView implements View.
var _ View = (*TrackingView)(nil)

// NewTrackingView creates the tracking screen with the search field focused.
func NewTrackingView(nav Navigator, p *message.Printer) *TrackingView {
	in := textinput.New()
	in.Placeholder = p.Sprintf("Name")
	in.Width = 28
	in.Focus()
	return &TrackingView{
		menu:     NewNavMenu(nav, KindTracking, p),
		printer:  p,
		input:    in,
		ratings:  school.BehaviorRatings(),
		behavior: -1,
	}
}

// Snapshot returns the last search result, or nil before any search.
func (t *TrackingView) Snapshot() *school.StudentSnapshot {
	return t.snapshot
}

// Behavior returns the selected rating key, or "" when none is chosen.
func (t *TrackingView) Behavior() string {
	if t.behavior < 0 || t.behavior >= len(t.ratings) {
		return ""
	}
	return t.ratings[t.behavior]
}

// Init implements View.
func (t *TrackingView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (t *TrackingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if cmd := t.menu.Update(msg); cmd != nil {
		return t, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if t.input.Focused() {
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return t, cmd
		}
		return t, nil
	}

	if t.input.Focused() {
		switch key.String() {
		case "enter":
			t.search()
			return t, nil
		case "esc":
			t.input.Blur()
			return t, nil
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	switch key.String() {
	case "/", "tab":
		return t, t.input.Focus()
	case "left", "h":
		t.cycleBehavior(-1)
	case "right", "l":
		t.cycleBehavior(1)
	}
	return t, nil
}

func (t *TrackingView) search() {
	name := strings.TrimSpace(t.input.Value())
	snap := school.Lookup(name)
	t.snapshot = &snap
	t.behavior = -1
	t.input.Blur()
	log.Printf("ui: tracking lookup %q", name)
}

func (t *TrackingView) cycleBehavior(step int) {
	n := len(t.ratings)
	if n == 0 {
		return
	}
	if t.behavior < 0 {
		if step > 0 {
			t.behavior = 0
		} else {
			t.behavior = n - 1
		}
		return
	}
	t.behavior = (t.behavior + step + n) % n
}

// CapturingInput implements InputCapturer.
func (t *TrackingView) CapturingInput() bool {
	return t.input.Focused()
}

// Unmount implements Unmounter.
func (t *TrackingView) Unmount() {
	t.input.Blur()
	t.snapshot = nil
}

// View implements View.
func (t *TrackingView) View() string {
	p := t.printer
	s := t.menu.View() + "\n\n"
	s += Styles.Title.Render(p.Sprintf("Tracking")) + "\n\n"
	s += Styles.Label.Render(p.Sprintf("Search student:")) + " " + t.input.View() + "\n\n"

	if t.snapshot != nil {
		s += t.renderPanel() + "\n\n"
	}
	s += Styles.Hint.Render(p.Sprintf("Enter: search  Esc: leave field  /: search again  ←/→: behavior"))
	return s
}

func (t *TrackingView) renderPanel() string {
	p := t.printer
	snap := t.snapshot

	// Left column: who, behavior, courses.
	left := Styles.Section.Render(p.Sprintf("Student: %s", snap.Name)) + "\n\n"
	behavior := Styles.Empty.Render("-")
	if b := t.Behavior(); b != "" {
		behavior = Styles.Section.Render(p.Sprintf(b))
	}
	left += Styles.Label.Render(p.Sprintf("Behavior today:")) + " ‹ " + behavior + " ›\n\n"
	left += Styles.Label.Render(p.Sprintf("Enrolled courses:")) + "\n"
	if len(snap.Courses) == 0 {
		left += Styles.Empty.Render(p.Sprintf("(none)"))
	} else {
		left += "• " + strings.Join(snap.Courses, "\n• ")
	}

	// Right column: stats.
	var rows []string
	for _, st := range snap.Stats {
		rows = append(rows, Styles.Label.Render(p.Sprintf(st.Label)+":")+" "+st.Value)
	}
	right := strings.Join(rows, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Panel.Render(left),
		"  ",
		Styles.Panel.Render(right),
	)
}
