package grid

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/chaos-arcade/internal/config"
)

// obstacleVariants is the number of obstacle looks to pick from.
const obstacleVariants = 3

// Food is a collectible judge: its tile and variant index.
type Food struct {
	Point
	Index int
}

// Obstacle is a static blocked tile.
type Obstacle struct {
	Point
	Variant int
}

// Engine runs the grid phase.
type Engine struct {
	cfg       config.GridConfig
	rng       *rand.Rand
	snake     *Snake
	judge     *Food
	saboteur  *Point
	obstacles []Obstacle
	collected map[int]bool

	interval float64 // ms between moves
	accum    float64
	lost     bool // latched by the saboteur
	ticks    uint64
}

// New creates an engine with the snake at (size/4, size/2), one judge, one
// saboteur and the configured obstacles.
func New(seed int64, cfg config.GridConfig) *Engine {
	e := &Engine{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		snake:     NewSnake(Point{X: cfg.Size / 4, Y: cfg.Size / 2}),
		collected: make(map[int]bool),
		interval:  cfg.InitialIntervalMs,
	}
	e.spawnJudge()
	e.spawnSaboteur()
	e.spawnObstacles(cfg.Obstacles)
	return e
}

// Advance accumulates dt milliseconds and performs at most one move once
// the interval is reached. The remainder is dropped. Reports whether a move
// happened.
func (e *Engine) Advance(dt float64) bool {
	e.accum += dt
	if e.accum < e.interval {
		return false
	}
	e.Update()
	e.accum = 0
	return true
}

// Update performs one move and resolves what the head landed on.
func (e *Engine) Update() {
	if e.Victory() {
		return
	}
	e.ticks++
	e.snake.Move()
	head := e.snake.Head()

	if e.judge != nil && head == e.judge.Point {
		e.collected[e.judge.Index] = true
		e.snake.Grow(e.judge.Index)
		e.spawnJudge()
		e.spawnSaboteur()
		e.increaseSpeed()
	}

	if e.saboteur != nil && head == *e.saboteur {
		e.lost = true
	}
}

// ChangeDirection buffers a turn for the next move.
func (e *Engine) ChangeDirection(d Direction) {
	e.snake.ChangeDirection(d)
}

// GameOver reports a loss: out of bounds, head on its own body from index
// SelfCollisionSkip on, the latched saboteur flag, or an obstacle.
func (e *Engine) GameOver() bool {
	head := e.snake.Head()
	if head.X < 0 || head.X >= e.cfg.Size || head.Y < 0 || head.Y >= e.cfg.Size {
		return true
	}
	body := e.snake.Body()
	for i := e.cfg.SelfCollisionSkip; i < len(body); i++ {
		if body[i] == head {
			return true
		}
	}
	if e.lost {
		return true
	}
	for _, o := range e.obstacles {
		if o.Point == head {
			return true
		}
	}
	return false
}

// Victory reports whether every judge variant has been collected.
func (e *Engine) Victory() bool {
	return len(e.collected) >= e.cfg.Collectibles
}

func (e *Engine) increaseSpeed() {
	e.interval *= e.cfg.SpeedFactor
	if e.interval < e.cfg.MinIntervalMs {
		e.interval = e.cfg.MinIntervalMs
	}
}

// uncollected picks a random variant not collected yet, or -1.
func (e *Engine) uncollected() int {
	var left []int
	for i := 0; i < e.cfg.Collectibles; i++ {
		if !e.collected[i] {
			left = append(left, i)
		}
	}
	if len(left) == 0 {
		return -1
	}
	return left[e.rng.Intn(len(left))]
}

func (e *Engine) spawnJudge() {
	idx := e.uncollected()
	if idx < 0 {
		e.judge = nil
		return
	}
	p, ok := e.FindEmptyTile()
	if !ok {
		e.judge = nil
		return
	}
	e.judge = &Food{Point: p, Index: idx}
}

func (e *Engine) spawnSaboteur() {
	if e.Victory() {
		return
	}
	p, ok := e.FindEmptyTile()
	if !ok {
		e.saboteur = nil
		return
	}
	e.saboteur = &p
}

func (e *Engine) spawnObstacles(count int) {
	for i := 0; i < count; i++ {
		p, ok := e.FindEmptyTile()
		if !ok {
			return
		}
		e.obstacles = append(e.obstacles, Obstacle{Point: p, Variant: e.rng.Intn(obstacleVariants)})
	}
}

// occupied reports whether p holds a segment, a food or an obstacle.
func (e *Engine) occupied(p Point) bool {
	if e.snake.Occupies(p) {
		return true
	}
	if e.judge != nil && e.judge.Point == p {
		return true
	}
	if e.saboteur != nil && *e.saboteur == p {
		return true
	}
	for _, o := range e.obstacles {
		if o.Point == p {
			return true
		}
	}
	return false
}

// FindEmptyTile returns a uniformly random free tile. Rejection sampling is
// bounded; a scan of the whole board follows, so a full board reports false
// instead of looping forever.
func (e *Engine) FindEmptyTile() (Point, bool) {
	n := e.cfg.Size
	if n <= 0 {
		return Point{}, false
	}
	for try := 0; try < n*n*4; try++ {
		p := Point{X: e.rng.Intn(n), Y: e.rng.Intn(n)}
		if !e.occupied(p) {
			return p, true
		}
	}
	var free []Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if p := (Point{X: x, Y: y}); !e.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// DirectionToward infers a turn from a tap at (x, y) in tile units: the
// dominant axis of the offset from the head's centre decides.
func (e *Engine) DirectionToward(x, y float64) Direction {
	head := e.snake.Head()
	dx := x - (float64(head.X) + 0.5)
	dy := y - (float64(head.Y) + 0.5)
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// Snake returns the snake.
func (e *Engine) Snake() *Snake {
	return e.snake
}

// Judge returns the current collectible, or nil.
func (e *Engine) Judge() *Food {
	return e.judge
}

// Saboteur returns the saboteur tile, or nil.
func (e *Engine) Saboteur() *Point {
	return e.saboteur
}

// Obstacles returns the static obstacles.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles
}

// Collected returns how many variants have been collected.
func (e *Engine) Collected() int {
	return len(e.collected)
}

// Total returns how many variants must be collected to win.
func (e *Engine) Total() int {
	return e.cfg.Collectibles
}

// Interval returns the current move interval in milliseconds.
func (e *Engine) Interval() float64 {
	return e.interval
}

// SpeedMultiplier is the start interval over the current one, rounded.
func (e *Engine) SpeedMultiplier() int {
	if e.interval <= 0 {
		return 0
	}
	return int(math.Round(e.cfg.InitialIntervalMs / e.interval))
}

// Size returns the board side length in tiles.
func (e *Engine) Size() int {
	return e.cfg.Size
}
