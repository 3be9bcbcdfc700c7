package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

// stubGame records what the platform does to it.
type stubGame struct {
	resets   int
	resized  [2]int
	inputs   []core.InputFrame
	state    core.GameState
	drawText string
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, g.drawText)
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newStubModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 11, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)
	if m.screen.Height() != 10 || m.config.ScreenH != 10 {
		t.Errorf("screen height = %d, want 10", m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelMapsKeysAndTaps(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})

	in := g.inputs[0]
	if !in.Has(core.ActionJump) || !in.Has(core.ActionAnyKey) {
		t.Errorf("space not mapped to jump and any key: %v", in.Actions)
	}
	if !in.HasTap || in.Tap != (core.Tap{X: 5, Y: 3}) {
		t.Errorf("tap = %+v (has=%v)", in.Tap, in.HasTap)
	}

	update(t, m, TickMsg{})
	if len(g.inputs[1].Actions) != 0 || g.inputs[1].HasTap {
		t.Error("input not cleared between ticks")
	}
}

func TestModelQuit(t *testing.T) {
	m := newStubModel(t, &stubGame{}, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !m.IsQuitting() {
		t.Error("q did not quit")
	}
}

func TestModelBackOnlyWhenOverOrPaused(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)
	b := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}

	m, _ = update(t, m, b)
	if m.BackToMenu() {
		t.Fatal("back accepted during play")
	}

	g.state.Paused = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, b)
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestModelResizeIsDebounced(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	stale := resizeMsg{seq: m.resizeSeq, width: 50, height: 20}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})

	m, _ = update(t, m, stale)
	if g.resized != [2]int{} {
		t.Fatalf("stale resize applied: %v", g.resized)
	}

	m, _ = update(t, m, resizeMsg{seq: m.resizeSeq, width: 60, height: 25})
	if g.resized != [2]int{60, 24} {
		t.Errorf("resized = %v, want [60 24]", g.resized)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 60x24", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newStubModel(t, g, store)

	g.state = core.GameState{GameOver: true, Score: 650, Collected: 22, Phase: "grid", Won: true}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	// A restart followed by a second game over is a second run.
	g.state = core.GameState{Phase: "runner"}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{GameOver: true, Score: 12, Phase: "runner"}
	update(t, m, TickMsg{})

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(runs))
	}
	if r := runs[0]; !r.Won || r.Collected != 22 || r.Score != 650 || r.Phase != "grid" {
		t.Errorf("first run = %+v", r)
	}
}

func TestModelViewAppliesMirror(t *testing.T) {
	g := &stubGame{drawText: "AB"}
	m := newStubModel(t, g, nil)

	g.state.Visual = core.Visuals{FlipX: true}
	m.View()
	row := m.screen.Row(0)
	if !strings.HasSuffix(row, "BA") {
		t.Errorf("row 0 = %q, want mirrored text at the right edge", row)
	}

	g.state.Visual = core.Visuals{}
	m.View()
	if !strings.HasPrefix(m.screen.Row(0), "AB") {
		t.Errorf("row 0 = %q after effects cleared", m.screen.Row(0))
	}
}
