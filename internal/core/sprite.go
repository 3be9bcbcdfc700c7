package core

import "unicode/utf8"

// Sprite is text art stretched over whatever rectangle it is drawn into.
type Sprite struct {
	Name  string
	Art   []string
	Color Color
}

// Placeholder is drawn in place of a sprite without usable art.
const Placeholder = '█'

// Valid reports whether the sprite has art to draw.
func (sp Sprite) Valid() bool {
	for _, line := range sp.Art {
		if line != "" {
			return true
		}
	}
	return false
}

// Draw renders the sprite into r with nearest-neighbour scaling.
// Sprites without art degrade to a flat placeholder rectangle.
func (sp Sprite) Draw(s *Screen, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if !sp.Valid() {
		s.FillRect(r, Placeholder, sp.Color)
		return
	}

	rows := make([][]rune, len(sp.Art))
	artW := 0
	for i, line := range sp.Art {
		rows[i] = []rune(line)
		if n := utf8.RuneCountInString(line); n > artW {
			artW = n
		}
	}
	artH := len(rows)

	for dy := 0; dy < r.H; dy++ {
		row := rows[dy*artH/r.H]
		for dx := 0; dx < r.W; dx++ {
			ax := dx * artW / r.W
			if ax >= len(row) || row[ax] == ' ' {
				continue
			}
			s.SetColored(r.X+dx, r.Y+dy, row[ax], sp.Color)
		}
	}
}
