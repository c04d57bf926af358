package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuChoicePlay},
		{"scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuChoiceScores},
		{"quit entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuChoiceQuit},
		{"cursor stops at bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuChoiceScores},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuChoiceScores},
		{"q quits", []tea.KeyMsg{runeKey('q')}, MenuChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, testRuntimeConfig())
			for _, k := range tt.keys {
				m = sendMenu(t, m, k)
			}
			if got := m.result().Choice; got != tt.want {
				t.Errorf("Choice = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, testRuntimeConfig())
	m = sendMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q, expected unchanged text", got)
	}
}

func TestSessionFlow(t *testing.T) {
	newGame := func() Game { return &fakeGame{} }
	m := NewSessionModel(newGame, Options{Embedded: true}, testRuntimeConfig())

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}

	step(runeKey('p'))
	step(TickMsg{})
	step(runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after leaving scores", m.screen)
	}

	step(runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should quit the session")
	}
}
