package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

var isTerminalFunc = term.IsTerminal

// SetIsTerminalFuncForTesting swaps the TTY check and returns a restore function.
func SetIsTerminalFuncForTesting(fn func(int) bool) func() {
	previous := isTerminalFunc
	isTerminalFunc = fn
	return func() {
		isTerminalFunc = previous
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(fileDescriptor)
	return ok && isTerminalFunc(int(file.Fd()))
}

// ShouldUseTUI is true for interactive runs: both streams are terminals and
// --quiet is off. Piped or redirected runs print plain text.
func ShouldUseTUI(quiet bool, in io.Reader, out io.Writer) bool {
	return !quiet && isTerminal(in) && isTerminal(out)
}

// ShouldColorize reports whether the report is headed for a terminal, even
// when stdin is not one.
func ShouldColorize(out io.Writer) bool {
	return isTerminal(out)
}

// ProgramOptions binds a program to the command streams. The renderer is
// dropped unless both streams are terminals.
func ProgramOptions(in io.Reader, out io.Writer) []tea.ProgramOption {
	options := []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if !isTerminal(in) || !isTerminal(out) {
		options = append(options, tea.WithoutRenderer())
	}
	return options
}
