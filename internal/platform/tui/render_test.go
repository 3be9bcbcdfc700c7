package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / defaultTickRate},
		{-5, time.Second / defaultTickRate},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorRed)
	s.SetColored(3, 0, '#', core.ColorRed)
	s.DrawTextColored(0, 1, "xyz", core.Color(200))

	for _, dark := range []bool{false, true} {
		out := ansi.Strip(RenderScreen(s, dark))
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("dark=%v: %d lines, want 2", dark, len(lines))
		}
		if lines[0] != "ab##  " || lines[1] != "xyz   " {
			t.Errorf("dark=%v: got %q", dark, lines)
		}
	}
}

func TestCellStylesFallback(t *testing.T) {
	unknown := core.Color(200)
	for _, dark := range []bool{false, true} {
		got := styles.get(unknown, dark).Render("x")
		want := styles.get(core.ColorDefault, dark).Render("x")
		if got != want {
			t.Errorf("dark=%v: unknown color rendered %q, want default %q", dark, got, want)
		}
	}
}
