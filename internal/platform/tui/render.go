package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// ansiColors maps core colors to terminal palette indices.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "94",
}

// darkBackground is the strobe background used while the dark flag is set.
var darkBackground = lipgloss.Color("0")

// cellStyles holds one style per color for each background mode.
type cellStyles struct {
	light map[core.Color]lipgloss.Style
	dark  map[core.Color]lipgloss.Style
}

var styles = newCellStyles()

func newCellStyles() cellStyles {
	cs := cellStyles{
		light: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()},
		dark: map[core.Color]lipgloss.Style{
			// Default cells would vanish on black, so they turn white.
			core.ColorDefault: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ansiColors[core.ColorBrightWhite])).
				Background(darkBackground),
		},
	}
	for c, code := range ansiColors {
		fg := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		cs.light[c] = fg
		cs.dark[c] = fg.Background(darkBackground)
	}
	return cs
}

// get returns the style for c, falling back to the default color.
func (cs cellStyles) get(c core.Color, dark bool) lipgloss.Style {
	table := cs.light
	if dark {
		table = cs.dark
	}
	if st, ok := table[c]; ok {
		return st
	}
	return table[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence. With dark
// set every cell is drawn on the strobe background.
func RenderScreen(s *core.Screen, dark bool) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styles.get(color, dark).Render(run.String()))
		}
	}
	return sb.String()
}
