package display

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	stepNameStyle = lipgloss.NewStyle().Bold(true)
	stepDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	stepFailStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	stepOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func init() {
	// CI logs are not terminals. Drop the color profile so step lines
	// stay grep-able instead of carrying escape sequences.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// StepStart prints a step-in-progress line: position, total, and name.
func StepStart(index, total int, name string) {
	fmt.Printf("%s %s\n",
		stepDimStyle.Render(fmt.Sprintf("[%d/%d]", index, total)),
		stepNameStyle.Render(name))
}

// StepDone prints a completion line with the step's wall-clock duration.
func StepDone(index, total int, name string, d time.Duration) {
	fmt.Printf("%s %s %s\n",
		stepDimStyle.Render(fmt.Sprintf("[%d/%d]", index, total)),
		stepOKStyle.Render("ok"),
		stepDimStyle.Render(fmt.Sprintf("%s (%s)", name, d.Round(time.Millisecond))))
}

// StepFailed prints a failure line for the step.
func StepFailed(index, total int, name string, err error) {
	fmt.Printf("%s %s %s: %v\n",
		stepDimStyle.Render(fmt.Sprintf("[%d/%d]", index, total)),
		stepFailStyle.Render("failed"),
		stepNameStyle.Render(name),
		err)
}
