// Package tui presents a dialog in the terminal with Bubble Tea. It drives
// the same dialog model as the graphical front end and shares its key map,
// so every binding behaves the same in both.
//
// Message flow:
//   - Model.Update routes each tea.Msg through a typed handler registry.
//   - Key presses first pass the global bindings (abort, focus cycling,
//     submit), then the handler for the focused control: the entry list of
//     a file or menu dialog, the text field of an input dialog, or a button.
//   - Once the dialog resolves the model stops accepting input and returns
//     tea.Quit; Result reports the resolution to the caller.
//
// The view is redrawn from the dialog model on every update. Nothing in this
// package owns dialog state beyond focus and the terminal size.
package tui
