package ui

// FocusManager tracks and rotates focus across the fields of a form.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) moveTo(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next field in order, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.moveTo(f.Order[(f.index()+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous field in order, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.moveTo(f.Order[i])
	return f.Current
}

// SetFocus sets focus to the given field ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.moveTo(id)
			return true
		}
	}
	return false
}
