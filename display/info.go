package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Info lines sit between step output in CI logs, so they stay compact:
// no vertical padding, just a muted blue.
var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{
		Light: "25",
		Dark:  "39",
	})

func Info(text string) {
	fmt.Println(infoStyle.Render(text))
}
