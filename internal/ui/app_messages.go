package ui

// MenuSelectMsg is emitted by the SPC menu bindings. The mounted view's
// NavMenu turns it into navigation; views without a menu ignore it.
type MenuSelectMsg struct {
	Kind Kind
}

// ShowQuitConfirmMsg triggers the quit confirmation modal (SPC q).
type ShowQuitConfirmMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// attendanceExportedMsg reports the outcome of an xlsx export.
type attendanceExportedMsg struct {
	Path string
	Err  error
}
