package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/tinypulse/arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "██", core.ColorSkyBlue)

	out := ansi.Strip(RenderScreen(s))
	assert.Equal(t, "abcd  \n██    ", out)
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}
