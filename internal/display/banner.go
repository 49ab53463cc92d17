// Package display holds console presentation helpers: the startup banner
// and human-readable value formatting for the run summary.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)

// PrintBanner prints the ASCII art banner. Lipgloss degrades the color
// automatically on dumb terminals and honors NO_COLOR.
func PrintBanner() {
	const art = ` ____ ____ _____   ____  _           _
/ ___| __ )__  /  | __ )(_)_ __   __| | ___ _ __
| |  |  _ \ / /   |  _ \| | '_ \ / _` + "`" + ` |/ _ \ '__|
| |__| |_) / /_   | |_) | | | | | (_| |  __/ |
\____|____/____|  |____/|_|_| |_|\__,_|\___|_|
`
	fmt.Fprintln(os.Stdout, bannerStyle.Render(art))
}
