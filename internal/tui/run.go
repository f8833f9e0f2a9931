package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/imdialog/internal/dialog"
)

// Run presents d on the controlling terminal until it resolves. The view is
// drawn on stderr so stdout stays free for the result line.
func Run(d *dialog.Dialog) (Result, error) {
	model := NewModel(d)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
		tea.WithMouseCellMotion(),
	)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return Result{Quit: true}, nil
	}
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(*Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model %T", final)
	}
	return m.Result(), nil
}
