// Package ui is the Bubble Tea front end of schooldesk.
//
// Core abstractions:
//   - View: a screen with its own model, update and view (Elm-style)
//   - Router: holds exactly one mounted View and swaps it on navigation
//   - NavMenu: the destination bar each screen composes (absent on Login)
//   - KeybindRegistry / KeyHandler: SPC-leader bindings, filtered by view kind
//   - ModalStack: modal views (quit confirmation) that take input first
//   - FocusManager: rotates focus across the fields of a form
package ui
