package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/weed-whacker/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "hello")
	s.DrawColoredText(0, 1, "$12", core.ColorMoney)
	s.DrawColoredText(4, 1, "@ ", core.ColorPlayer)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d newlines, want 2", got)
	}
	for _, want := range []string{"hello", "$12", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorGrass, core.ColorGrassAlt, core.ColorWeed,
		core.ColorToughWeed, core.ColorUnowned, core.ColorPurchasable, core.ColorSelected,
		core.ColorPlayer, core.ColorMoney, core.ColorWarning, core.ColorDanger,
		core.ColorInfo, core.ColorMuted, core.ColorHighlight,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %v", c)
		}
	}
}
