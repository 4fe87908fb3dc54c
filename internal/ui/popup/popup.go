// Package popup draws modal boxes over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Box wraps popup content in a rounded border sized to fit, capped to the
// screen.
func Box(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+6, max(screenW-4, 8))
	height := min(strings.Count(content, "\n")+5, max(screenH-2, 5))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Primary).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)
}

// RenderBordered boxes content and centers it on the screen.
func RenderBordered(content string, screenW, screenH int) string {
	return Center(Box(content, screenW, screenH), screenW, screenH)
}

// Center offsets pre-rendered content to the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(content))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Compose draws overlay on top of base. Leading and trailing blanks of
// each overlay line are transparent; styled text is cut ANSI-aware.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		startCol := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		endCol := ansi.StringWidth(trimmed)
		content := ansi.Cut(line, startCol, endCol)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, startCol)
		// A wide rune straddling startCol is dropped by Cut.
		if pw := ansi.StringWidth(prefix); pw < startCol {
			prefix += strings.Repeat(" ", startCol-pw)
		}

		result := prefix + content
		if endCol < width {
			suffix := ansi.Cut(under, endCol, width)
			if sw := ansi.StringWidth(suffix); sw < width-endCol {
				suffix += strings.Repeat(" ", width-endCol-sw)
			}
			result += suffix
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
