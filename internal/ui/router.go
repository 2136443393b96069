package ui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NavigateMsg asks the app to mount a view of the given kind.
type NavigateMsg struct {
	Kind Kind
}

// Navigator is handed to every view so it can request a view switch.
type Navigator interface {
	Go(k Kind) tea.Cmd
}

// Factory constructs a fresh view of one kind.
type Factory func(nav Navigator) View

// Router keeps exactly one view mounted at a time. Navigating tears the
// current view down before the next one is built, so two views are never
// live together.
type Router struct {
	factories map[Kind]Factory
	tracer    trace.Tracer

	current View
	kind    Kind
	mounted bool
}

// Ensure Router implements Navigator.
var _ Navigator = (*Router)(nil)

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithTracer records each navigation as a span on t.
func WithTracer(t trace.Tracer) RouterOption {
	return func(r *Router) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRouter creates an unmounted router. factories must cover every Kind;
// a missing factory is a programming error and panics.
func NewRouter(factories map[Kind]Factory, opts ...RouterOption) *Router {
	r := &Router{
		factories: make(map[Kind]Factory, len(factories)),
		tracer:    noop.NewTracerProvider().Tracer(""),
	}
	for _, k := range Kinds() {
		f := factories[k]
		if f == nil {
			panic(fmt.Sprintf("ui: no view factory for %s", k))
		}
		r.factories[k] = f
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Go implements Navigator. The returned command emits a NavigateMsg, which
// the app turns into Navigate after the requesting view's update returns.
func (r *Router) Go(k Kind) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Kind: k} }
}

// Navigate unmounts the current view (if any), mounts a new view of kind k
// and returns its Init command. k outside the declared kinds panics.
func (r *Router) Navigate(k Kind) tea.Cmd {
	if !k.Valid() {
		panic(fmt.Sprintf("ui: navigate to unknown view kind %d", int(k)))
	}
	from := "unmounted"
	if r.mounted {
		from = r.kind.String()
	}
	_, span := r.tracer.Start(context.Background(), "ui.navigate", trace.WithAttributes(
		attribute.String("schooldesk.view.from", from),
		attribute.String("schooldesk.view.to", k.String()),
	))
	defer span.End()

	r.unmount()

	v := r.factories[k](r)
	if v == nil {
		panic(fmt.Sprintf("ui: factory for %s returned nil", k))
	}
	r.current = v
	r.kind = k
	r.mounted = true
	log.Printf("ui: navigate %s -> %s", from, k)
	return v.Init()
}

func (r *Router) unmount() {
	if !r.mounted {
		return
	}
	if u, ok := r.current.(Unmounter); ok {
		u.Unmount()
	}
	r.current = nil
	r.mounted = false
}

// Active returns the mounted kind; ok is false before the first Navigate.
func (r *Router) Active() (k Kind, ok bool) {
	return r.kind, r.mounted
}

// Current returns the mounted view, or nil before the first Navigate.
func (r *Router) Current() View {
	return r.current
}

// Mounted returns how many views are live: 0 before the first Navigate, 1 after.
func (r *Router) Mounted() int {
	if r.mounted {
		return 1
	}
	return 0
}

// Update forwards msg to the mounted view and keeps the view it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if !r.mounted {
		return nil
	}
	v, cmd := r.current.Update(msg)
	if v != nil {
		r.current = v
	}
	return cmd
}

// View renders the mounted view.
func (r *Router) View() string {
	if !r.mounted {
		return ""
	}
	return r.current.View()
}
