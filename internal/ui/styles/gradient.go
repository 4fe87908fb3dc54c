package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not #rrggbb (ANSI indexes).
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient colors each grapheme of text on a line from one color to the
// other, blended in HCL space.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	for gr := uniseg.NewGraphemes(text); gr.Next(); {
		clusters = append(clusters, gr.Str())
	}

	base := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blendColors(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

func blendColors(n int, from, to lipgloss.Color) []colorful.Color {
	start := lipglossToColor(from)
	if n < 2 {
		return []colorful.Color{start}
	}
	end := lipglossToColor(to)

	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func lipglossToColor(c lipgloss.Color) colorful.Color {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return fallbackGray
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return fallbackGray
	}
	return col
}
