package game

import "github.com/vovakirdan/weed-whacker/internal/core"

// toastDurationMS is how long a notification stays on screen.
const toastDurationMS = 2000

// toast is a short-lived notification line.
type toast struct {
	text      string
	color     core.Color
	remaining int
}

func (t *toast) show(text string, c core.Color) {
	t.text = text
	t.color = c
	t.remaining = toastDurationMS
}

func (t *toast) update(dtMS int) {
	if t.remaining > 0 {
		t.remaining -= dtMS
	}
}

func (t *toast) active() bool {
	return t.remaining > 0 && t.text != ""
}

func (g *Game) notify(text string, c core.Color) {
	g.toast.show(text, c)
}
