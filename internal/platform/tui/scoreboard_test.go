package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weed-whacker/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{5*time.Minute + 7*time.Second, "5:07"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSessionRows(t *testing.T) {
	rows := sessionRows([]storage.SessionResult{
		{Player: "ana", TilesOwned: 40, Money: 12, WeedsCleared: 9, Duration: 90 * time.Second},
		{TilesOwned: 30},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "ana" || rows[0][2] != "40" || rows[0][3] != "$12" || rows[0][5] != "1:30" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous player shown as %q", rows[1][1])
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 120, 30)
	if !strings.Contains(m.View(), "No gardens recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, r := range []storage.SessionResult{
		{Player: "ana", TilesOwned: 30},
		{Player: "bo", TilesOwned: 50},
		{Player: "ana", TilesOwned: 40},
	} {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "ana", 120, 30)
	if len(m.sessions) != 2 || m.sessions[0].TilesOwned != 40 {
		t.Fatalf("best view = %+v, want ana's two gardens best first", m.sessions)
	}
	if m.summary == nil || m.summary.Sessions != 3 {
		t.Errorf("summary = %+v", m.summary)
	}
	if !strings.Contains(m.View(), "Totals") {
		t.Error("wide layout should show the totals sidebar")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || len(m.sessions) != 3 {
		t.Errorf("recent view has %d sessions", len(m.sessions))
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(ScoreboardModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
}
