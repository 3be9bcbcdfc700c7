package grid

import (
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

func gridConfig() config.GridConfig {
	return config.DefaultChaosConfig().Grid
}

// clearBoard removes foods and obstacles so tests can place their own.
func clearBoard(e *Engine) {
	e.judge = nil
	e.saboteur = nil
	e.obstacles = nil
}

func TestNewEngine(t *testing.T) {
	e := New(42, gridConfig())

	if head := e.Snake().Head(); head != (Point{X: 5, Y: 10}) {
		t.Errorf("head = %+v, want (5,10)", head)
	}
	if e.Snake().Len() != 2 || e.Snake().Body()[1] != (Point{X: 4, Y: 10}) {
		t.Errorf("body = %+v", e.Snake().Body())
	}
	if e.Snake().Direction() != DirRight {
		t.Errorf("direction = %v, want right", e.Snake().Direction())
	}
	if e.Judge() == nil || e.Saboteur() == nil || len(e.Obstacles()) != 4 {
		t.Fatalf("board not populated: judge=%v saboteur=%v obstacles=%d", e.Judge(), e.Saboteur(), len(e.Obstacles()))
	}

	seen := map[Point]string{}
	mark := func(p Point, what string) {
		if prev, ok := seen[p]; ok {
			t.Errorf("%s shares %+v with %s", what, p, prev)
		}
		seen[p] = what
	}
	for _, b := range e.Snake().Body() {
		mark(b, "snake")
	}
	mark(e.Judge().Point, "judge")
	mark(*e.Saboteur(), "saboteur")
	for _, o := range e.Obstacles() {
		mark(o.Point, "obstacle")
	}
}

func TestSnakeGrow(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5})
	for tag := 0; tag < 5; tag++ {
		before := s.Len()
		s.Grow(tag)
		if s.Len() != before+1 {
			t.Fatalf("Len() = %d, want %d", s.Len(), before+1)
		}
		if s.Tag(0) != tag {
			t.Errorf("head tag = %d, want %d", s.Tag(0), tag)
		}
		if s.Tag(s.Len()-1) != tag {
			t.Errorf("tail tag = %d, want %d", s.Tag(s.Len()-1), tag)
		}
		s.Move()
	}
	if s.Tag(1) != TagSnake {
		t.Errorf("neck tag = %d, want untagged", s.Tag(1))
	}
}

func TestSnakeGrowSeparatesOnMove(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5})
	s.Grow(0)
	body := s.Body()
	if body[1] != body[2] {
		t.Fatalf("new segment should sit on the tail: %+v", body)
	}
	s.Move()
	want := []Point{{6, 5}, {5, 5}, {4, 5}}
	for i, w := range want {
		if s.Body()[i] != w {
			t.Errorf("segment %d = %+v, want %+v", i, s.Body()[i], w)
		}
	}
}

func TestReversalGuard(t *testing.T) {
	tests := []struct {
		name  string
		turns []Direction
		want  Direction
	}{
		{"reverse ignored", []Direction{DirLeft}, DirRight},
		{"turn applied", []Direction{DirUp}, DirUp},
		{"reverse after turn ignored", []Direction{DirUp, DirLeft}, DirUp},
		{"last valid turn wins", []Direction{DirUp, DirDown}, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(Point{X: 5, Y: 5})
			for _, d := range tt.turns {
				s.ChangeDirection(d)
			}
			if s.Direction() != DirRight {
				t.Fatal("turn applied before the move")
			}
			s.Move()
			if s.Direction() != tt.want {
				t.Errorf("direction = %v, want %v", s.Direction(), tt.want)
			}
		})
	}
}

func TestFindEmptyTileNeverOccupied(t *testing.T) {
	cfg := gridConfig()
	cfg.Size = 5
	cfg.Obstacles = 0
	e := New(1, cfg)
	clearBoard(e)

	free := Point{X: 3, Y: 1}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := Point{X: x, Y: y}
			if p == free || e.Snake().Occupies(p) {
				continue
			}
			e.obstacles = append(e.obstacles, Obstacle{Point: p})
		}
	}

	for i := 0; i < 20; i++ {
		p, ok := e.FindEmptyTile()
		if !ok || p != free {
			t.Fatalf("FindEmptyTile() = %+v, %v; want %+v", p, ok, free)
		}
	}

	e.obstacles = append(e.obstacles, Obstacle{Point: free})
	if p, ok := e.FindEmptyTile(); ok {
		t.Errorf("full board returned %+v", p)
	}
}

func TestFindEmptyTileRandomBoards(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		e := New(seed, gridConfig())
		for i := 0; i < 30; i++ {
			p, ok := e.FindEmptyTile()
			if !ok {
				t.Fatalf("seed %d: no free tile", seed)
			}
			if e.occupied(p) {
				t.Fatalf("seed %d: returned occupied tile %+v", seed, p)
			}
			e.obstacles = append(e.obstacles, Obstacle{Point: p})
		}
	}
}

func TestCollectJudge(t *testing.T) {
	e := New(7, gridConfig())
	clearBoard(e)
	head := e.Snake().Head()
	e.judge = &Food{Point: Point{X: head.X + 1, Y: head.Y}, Index: 9}

	e.Update()

	if e.Collected() != 1 || e.Snake().Len() != 3 {
		t.Fatalf("collected=%d len=%d", e.Collected(), e.Snake().Len())
	}
	if e.Snake().Tag(0) != 9 {
		t.Errorf("head tag = %d, want 9", e.Snake().Tag(0))
	}
	cfg := gridConfig()
	if want := cfg.InitialIntervalMs * cfg.SpeedFactor; e.Interval() != want {
		t.Errorf("interval = %v, want %v", e.Interval(), want)
	}
	if e.Judge() == nil || e.Judge().Index == 9 {
		t.Errorf("new judge = %+v", e.Judge())
	}
	if e.Saboteur() == nil {
		t.Error("saboteur not respawned")
	}
	if e.GameOver() {
		t.Error("collecting ended the game")
	}
}

func TestSaboteurLossIsLatched(t *testing.T) {
	e := New(3, gridConfig())
	clearBoard(e)
	head := e.Snake().Head()
	e.saboteur = &Point{X: head.X + 1, Y: head.Y}

	e.Update()
	if !e.GameOver() {
		t.Fatal("eating the saboteur did not end the game")
	}
	e.saboteur = &Point{X: 0, Y: 0}
	e.Update()
	if e.Snake().Head() == (Point{X: head.X + 1, Y: head.Y}) {
		t.Fatal("head did not move away")
	}
	if !e.GameOver() {
		t.Error("loss flag not sticky")
	}
}

func TestSelfCollisionSkip(t *testing.T) {
	e := New(1, gridConfig())
	clearBoard(e)

	head := Point{X: 5, Y: 5}
	body := []Point{head, {6, 5}, {6, 6}, {5, 6}, {4, 6}, {4, 5}}

	e.snake.body = append([]Point(nil), body...)
	e.snake.body[3] = head
	if e.GameOver() {
		t.Error("head on segment 3 must not count")
	}

	e.snake.body = append([]Point(nil), body...)
	e.snake.body[4] = head
	if !e.GameOver() {
		t.Error("head on segment 4 must count")
	}
}

func TestBoundsAndObstacles(t *testing.T) {
	e := New(1, gridConfig())
	clearBoard(e)
	e.snake = NewSnake(Point{X: 19, Y: 3})
	e.Update()
	if !e.GameOver() {
		t.Error("leaving the board did not end the game")
	}

	e = New(1, gridConfig())
	clearBoard(e)
	head := e.Snake().Head()
	e.obstacles = []Obstacle{{Point: Point{X: head.X + 1, Y: head.Y}}}
	e.Update()
	if !e.GameOver() {
		t.Error("hitting an obstacle did not end the game")
	}
}

func TestSpeedFloor(t *testing.T) {
	e := New(1, gridConfig())
	for i := 0; i < 500; i++ {
		e.increaseSpeed()
	}
	if e.Interval() != 50 {
		t.Errorf("interval = %v, want floor 50", e.Interval())
	}
	if e.SpeedMultiplier() != 3 {
		t.Errorf("SpeedMultiplier() = %d, want 3", e.SpeedMultiplier())
	}
}

func TestAdvanceDropsRemainder(t *testing.T) {
	e := New(1, gridConfig())
	clearBoard(e)

	if e.Advance(100) {
		t.Fatal("moved before the interval")
	}
	if !e.Advance(60) {
		t.Fatal("did not move at 160ms")
	}
	// The extra 10ms are not carried over.
	if e.Advance(140) {
		t.Error("remainder carried into the next interval")
	}
	if !e.Advance(10) {
		t.Error("did not move after a full interval")
	}
}

func TestVictoryStopsUpdates(t *testing.T) {
	e := New(1, gridConfig())
	for i := 0; i < e.Total(); i++ {
		e.collected[i] = true
	}
	head := e.Snake().Head()
	e.Update()
	if e.Snake().Head() != head {
		t.Error("snake moved after victory")
	}
	if !e.Victory() || e.Snapshot().State != StateWon {
		t.Errorf("snapshot state = %v", e.Snapshot().State)
	}

	e.spawnJudge()
	if e.Judge() != nil {
		t.Error("judge spawned with nothing left to collect")
	}
}

func TestDirectionToward(t *testing.T) {
	e := New(1, gridConfig()) // head at (5,10), centre (5.5,10.5)
	tests := []struct {
		x, y float64
		want Direction
	}{
		{15, 10.5, DirRight},
		{0, 11, DirLeft},
		{5, 18, DirDown},
		{6, 2, DirUp},
		{7.5, 12.5, DirDown}, // tie goes vertical
	}
	for _, tt := range tests {
		if got := e.DirectionToward(tt.x, tt.y); got != tt.want {
			t.Errorf("DirectionToward(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := gridConfig()
	e1 := New(12345, cfg)
	e2 := New(12345, cfg)

	turns := map[int]Direction{5: DirDown, 9: DirLeft, 14: DirUp, 20: DirRight}
	for i := 0; i < 30; i++ {
		if d, ok := turns[i]; ok {
			e1.ChangeDirection(d)
			e2.ChangeDirection(d)
		}
		e1.Advance(160)
		e2.Advance(160)
	}

	if e1.Snapshot() != e2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", e1.Snapshot(), e2.Snapshot())
	}
}

func TestDraw(t *testing.T) {
	e := New(1, gridConfig())
	dst := core.NewScreen(44, 22)
	region := core.NewRect(1, 1, 40, 20)
	e.Draw(dst, region)

	vp := e.Viewport(region)
	head := tile(vp, e.Snake().Head())
	if c := dst.GetCell(head.X, head.Y); c.Rune != HeadChar {
		t.Errorf("head cell = %q, want %q", c.Rune, HeadChar)
	}
	if dst.Get(0, 0) != '┌' {
		t.Errorf("border corner = %q", dst.Get(0, 0))
	}
	sab := tile(vp, *e.Saboteur())
	if dst.Get(sab.X, sab.Y) != SaboteurChar {
		t.Error("saboteur not drawn")
	}
}

func TestJudgeLookPlaceholder(t *testing.T) {
	cfg := gridConfig()
	cfg.JudgeGlyphs = "AB"
	e := New(1, cfg)
	if r, _ := e.judgeLook(1); r != 'B' {
		t.Errorf("glyph 1 = %q", r)
	}
	if r, _ := e.judgeLook(5); r != core.Placeholder {
		t.Errorf("missing glyph = %q, want placeholder", r)
	}
}
