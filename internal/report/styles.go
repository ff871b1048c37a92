// ABOUTME: Lipgloss styles for the console ROI report
// ABOUTME: Headers render bold and colored on terminals, plain text elsewhere

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Primary is the header color
var Primary = lipgloss.Color("#7C3AED") // Purple

// styles holds the renderer-bound styles for one output stream
type styles struct {
	header lipgloss.Style
}

// newStyles binds styles to w so color support is detected from the
// actual destination rather than the process's stdout.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(Primary),
	}
}

// render styles a single report line
func (s styles) render(line string) string {
	if isHeader(line) {
		return s.header.Render(line)
	}
	return line
}
