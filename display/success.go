package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.AdaptiveColor{
		Light: "28",
		Dark:  "42",
	})

// Success prints the pipeline's closing line.
func Success(text string) {
	fmt.Println(successStyle.Render(text))
}
