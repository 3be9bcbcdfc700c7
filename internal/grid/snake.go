// Package grid implements the tile-based phase: a snake that collects judge
// variants, avoids a saboteur fruit and static obstacles, and speeds up with
// every collection.
package grid

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a tile coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{Y: -1}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// TagSnake is the tag of segments that carry no collected variant.
const TagSnake = -1

// Snake is the body (head first) and the tag drawn at each index.
// Tags belong to positions, not to segments: the head always shows the
// most recent collection.
type Snake struct {
	body []Point
	tags []int
	dir  Direction
	next Direction
}

// NewSnake creates a two-segment snake at start heading right.
func NewSnake(start Point) *Snake {
	return &Snake{
		body: []Point{start, {X: start.X - 1, Y: start.Y}},
		tags: []int{TagSnake, TagSnake},
		dir:  DirRight,
		next: DirRight,
	}
}

// Head returns the head position.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns the segments, head first. The slice must not be modified.
func (s *Snake) Body() []Point {
	return s.body
}

// Tag returns the tag drawn at segment i.
func (s *Snake) Tag(i int) int {
	if i < 0 || i >= len(s.tags) {
		return TagSnake
	}
	return s.tags[i]
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// ChangeDirection buffers a turn for the next move. The exact reverse of
// the current heading is ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.next = d
}

// Move applies the buffered turn and advances one tile at constant length.
func (s *Snake) Move() {
	if s.next != s.dir.Opposite() {
		s.dir = s.next
	}
	head := s.body[0].Add(s.dir.Delta())
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow appends a segment on top of the tail, which separates on the next
// move, and retags the head with tag.
func (s *Snake) Grow(tag int) {
	s.body = append(s.body, s.body[len(s.body)-1])
	s.tags = append(s.tags, tag)
	s.tags[0] = tag
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}
