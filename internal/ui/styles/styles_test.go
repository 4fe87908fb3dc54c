package styles

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "A", "My Playlist", "日本語 🎵"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got := Gradient(text, true, T().Primary, T().Secondary)
			assert.Equal(t, text, ansiRe.ReplaceAllString(got, ""))
		})
	}
}

func TestBlendColors_Size(t *testing.T) {
	assert.Len(t, blendColors(5, T().Primary, T().Secondary), 5)
	assert.Len(t, blendColors(1, T().Primary, T().Secondary), 1)
}

func TestLipglossToColor_ANSIFallback(t *testing.T) {
	c := lipglossToColor(lipgloss.Color("240"))

	assert.Equal(t, fallbackGray, c)
	assert.Equal(t, "#808080", c.Hex())
}

func TestThemeStyles_Cached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
