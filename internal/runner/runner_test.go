package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

func testConfig() config.ChaosConfig {
	return config.DefaultChaosConfig()
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newSpawner(seed int64) (*Spawner, config.ChaosConfig) {
	cfg := testConfig()
	return NewSpawner(seed, cfg.Runner, cfg.Hazard), cfg
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name     string
		actor    core.Box
		obstacle core.Box
		want     bool
	}{
		{"disjoint horizontally", core.Box{X: 0, Y: 100, W: 50, H: 50}, core.Box{X: 200, Y: 100, W: 30, H: 60}, false},
		{"full overlap", core.Box{X: 100, Y: 100, W: 50, H: 50}, core.Box{X: 100, Y: 100, W: 50, H: 50}, true},
		// Raw boxes touch but the divided widths do not reach.
		{"grazing right edge", core.Box{X: 0, Y: 100, W: 56, H: 50}, core.Box{X: 45, Y: 100, W: 30, H: 60}, false},
		{"inside divided width", core.Box{X: 0, Y: 100, W: 56, H: 50}, core.Box{X: 35, Y: 100, W: 30, H: 60}, true},
		// Obstacle left edge: actor.X < o.X + o.W/1.4 = 100 + 21.43
		{"past obstacle divided width", core.Box{X: 122, Y: 100, W: 50, H: 50}, core.Box{X: 100, Y: 100, W: 30, H: 60}, false},
		{"within obstacle divided width", core.Box{X: 121, Y: 100, W: 50, H: 50}, core.Box{X: 100, Y: 100, W: 30, H: 60}, true},
		// Last term: actor.H + actor.Y/1.4 > o.Y, i.e. 50 + 70 = 120 against 125.
		{"actor y divided alone", core.Box{X: 100, Y: 98, W: 50, H: 50}, core.Box{X: 100, Y: 125, W: 30, H: 60}, false},
		{"actor above obstacle top", core.Box{X: 100, Y: 98, W: 50, H: 50}, core.Box{X: 100, Y: 119, W: 30, H: 60}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.actor, tt.obstacle, 1.4); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpawnerCountdownRange(t *testing.T) {
	s, cfg := newSpawner(7)
	for i := 0; i < 200; i++ {
		s.nextCountdown()
		if s.countdown < float64(cfg.Runner.Spawn.IntervalMinMs) || s.countdown > float64(cfg.Runner.Spawn.IntervalMaxMs) {
			t.Fatalf("countdown %v outside [%d, %d]", s.countdown, cfg.Runner.Spawn.IntervalMinMs, cfg.Runner.Spawn.IntervalMaxMs)
		}
	}
}

func TestSpawnerSpawnsBeyondRightEdge(t *testing.T) {
	s, cfg := newSpawner(1)
	player := NewPlayer(cfg.Runner).Box

	s.Update(2000, 1, false, player)
	obs := s.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected one obstacle after 2000ms, got %d", len(obs))
	}
	o := obs[0]
	wantX := cfg.Runner.GameWidth*cfg.Runner.Spawn.Offset - cfg.Runner.BaseSpeed*2000
	if !approx(o.X, wantX) {
		t.Errorf("X = %v, want %v", o.X, wantX)
	}
	if !approx(o.Bottom(), cfg.Runner.GameHeight) {
		t.Errorf("obstacle bottom = %v, want ground %v", o.Bottom(), cfg.Runner.GameHeight)
	}
	if o.Even {
		t.Error("first spawn should not carry the parity tag")
	}
}

func TestSpawnerParityTag(t *testing.T) {
	s, cfg := newSpawner(3)
	player := NewPlayer(cfg.Runner).Box
	for i := 0; i < 6; i++ {
		s.countdown = 0
		s.Update(1, 0, false, player)
	}
	obs := s.Obstacles()
	if len(obs) != 6 {
		t.Fatalf("got %d obstacles, want 6", len(obs))
	}
	for i, o := range obs {
		if want := (i+1)%2 == 0; o.Even != want {
			t.Errorf("obstacle %d Even = %v, want %v", i, o.Even, want)
		}
	}
}

func TestSpawnerRemovalInvariant(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s, cfg := newSpawner(seed)
		player := NewPlayer(cfg.Runner).Box
		rng := rand.New(rand.NewSource(seed))
		for step := 0; step < 2000; step++ {
			dt := 1 + rng.Float64()*50
			speed := 0.5 + rng.Float64()*3
			s.Update(dt, speed, rng.Intn(2) == 0, player)
			for _, o := range s.Obstacles() {
				if o.X+o.W <= 0 {
					t.Fatalf("seed %d step %d: obstacle past left edge at x=%v w=%v", seed, step, o.X, o.W)
				}
				if o.Y+o.H <= 0 {
					t.Fatalf("seed %d step %d: obstacle above the top at y=%v", seed, step, o.Y)
				}
			}
		}
		if s.Spawned() == 0 {
			t.Errorf("seed %d: nothing spawned", seed)
		}
	}
}

func TestSpawnerHazardRising(t *testing.T) {
	s, cfg := newSpawner(5)
	player := NewPlayer(cfg.Runner).Box

	near := &Obstacle{Box: core.Box{X: player.X + 200, Y: 150, W: 30, H: 50}, Even: true}
	far := &Obstacle{Box: core.Box{X: player.X + 600, Y: 150, W: 30, H: 50}, Even: true}
	odd := &Obstacle{Box: core.Box{X: player.X + 100, Y: 150, W: 30, H: 50}}
	s.obstacles = []*Obstacle{near, far, odd}
	s.countdown = 1e9

	s.Update(10, 1, false, player)
	if near.Rising {
		t.Fatal("obstacle rose without the hazard")
	}

	s.Update(10, 1, true, player)
	if !near.Rising || near.VerticalSpeed != cfg.Hazard.RiseSpeed {
		t.Errorf("near even obstacle: rising=%v speed=%v", near.Rising, near.VerticalSpeed)
	}
	if far.Rising || odd.Rising {
		t.Errorf("far=%v odd=%v should not rise", far.Rising, odd.Rising)
	}

	// Rise speed ignores the game speed.
	y := near.Y
	s.Update(10, 5, false, player)
	if got := y - near.Y; !approx(got, cfg.Hazard.RiseSpeed*10) {
		t.Errorf("rose %v, want %v", got, cfg.Hazard.RiseSpeed*10)
	}
	if !near.Rising {
		t.Error("rising reverted after the hazard ended")
	}
}

func TestSpawnerCollideFirstMatch(t *testing.T) {
	s, _ := newSpawner(1)
	a := &Obstacle{Box: core.Box{X: 110, Y: 100, W: 30, H: 60}}
	b := &Obstacle{Box: core.Box{X: 100, Y: 100, W: 30, H: 60}}
	s.obstacles = []*Obstacle{a, b}

	actor := core.Box{X: 100, Y: 100, W: 50, H: 50}
	if got := s.CollideWith(actor); got != a {
		t.Errorf("CollideWith returned %p, want first inserted %p", got, a)
	}

	s.Remove(a)
	if got := s.CollideWith(actor); got != b {
		t.Errorf("after Remove: got %p, want %p", got, b)
	}
	if len(s.Obstacles()) != 1 {
		t.Errorf("Remove left %d obstacles", len(s.Obstacles()))
	}
}

func TestSpawnerTransformVisuals(t *testing.T) {
	s, cfg := newSpawner(2)
	s.obstacles = []*Obstacle{{Box: core.Box{X: 300, Y: 120, W: 30, H: 80}}}
	skin := Template{Sprite: core.Sprite{Name: "dino"}, W: 58, H: 62}

	s.TransformVisuals(skin)
	o := s.Obstacles()[0]
	if o.W != 58 || o.H != 62 || o.Sprite.Name != "dino" {
		t.Errorf("obstacle not re-skinned: %+v", o)
	}
	if !approx(o.Bottom(), cfg.Runner.GameHeight) {
		t.Errorf("re-skinned obstacle left the ground: bottom=%v", o.Bottom())
	}

	s.countdown = 0
	s.Update(1, 0, false, core.Box{})
	if n := s.Obstacles()[1]; n.Sprite.Name != "dino" || n.W != 58 {
		t.Errorf("future spawn not re-skinned: %+v", n)
	}

	s.Reset(2)
	if len(s.Obstacles()) != 0 || s.Spawned() != 0 {
		t.Error("Reset kept obstacles")
	}
	if s.templates[0].Sprite.Name != cfg.Runner.Obstacles[0].Name {
		t.Errorf("Reset kept re-skinned templates: %q", s.templates[0].Sprite.Name)
	}
}

func TestPlayerJump(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Runner)
	ground := p.Y

	if !p.Jump() {
		t.Fatal("grounded player could not jump")
	}
	if p.Jump() {
		t.Error("double jump allowed")
	}

	minY := p.Y
	for i := 0; i < 200 && !p.Grounded(); i++ {
		p.Update(10, 1)
		if p.Y < minY {
			minY = p.Y
		}
	}
	if !p.Grounded() || p.Y != ground {
		t.Fatalf("player did not land: y=%v grounded=%v", p.Y, p.Grounded())
	}
	// v^2 / 2g = 150px apex
	if h := ground - minY; h < 140 || h > 160 {
		t.Errorf("jump height = %v, want ~150", h)
	}
}

func TestPlayerDisguiseKeepsHitbox(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Runner)
	before := p.Box

	p.Disguise()
	if !p.Disguised() || p.Box != before {
		t.Errorf("disguise changed the hitbox: %+v -> %+v", before, p.Box)
	}
	b, sp := p.drawBox()
	if b.W != cfg.Runner.Disguise.Width || sp.Name != cfg.Runner.Disguise.Name {
		t.Errorf("disguise not drawn: %+v %q", b, sp.Name)
	}
	if !approx(b.Bottom(), p.Bottom()) {
		t.Errorf("disguise bottom %v, hitbox bottom %v", b.Bottom(), p.Bottom())
	}

	p.Reset()
	if p.Disguised() {
		t.Error("Reset kept the disguise")
	}
}

func TestScore(t *testing.T) {
	s := NewScore(0.01)
	s.Update(4999)
	if s.Value() != 49 {
		t.Errorf("Value() = %d, want 49", s.Value())
	}
	s.Update(2)
	if s.Value() != 50 {
		t.Errorf("Value() = %d, want 50", s.Value())
	}
	s.Update(-100)
	if s.Value() != 50 {
		t.Error("score decreased")
	}

	if !s.Record() || s.High() != 50 {
		t.Errorf("Record() did not raise high score: %d", s.High())
	}
	s.Reset()
	if s.Value() != 0 || s.High() != 50 || s.Record() {
		t.Errorf("after Reset: value=%d high=%d", s.Value(), s.High())
	}
}

func TestDrawWithPlaceholderSprites(t *testing.T) {
	cfg := testConfig()
	cfg.Runner.Obstacles = []config.SpriteConfig{{Name: "broken", Width: 30, Height: 60}}
	s := NewSpawner(1, cfg.Runner, cfg.Hazard)
	s.obstacles = []*Obstacle{{Box: core.Box{X: 400, Y: 140, W: 30, H: 60}}}

	dst := core.NewScreen(80, 20)
	vp := core.FitViewport(core.NewRect(0, 0, 80, 20), cfg.Runner.GameWidth, cfg.Runner.GameHeight)
	g := NewGround(cfg.Runner)
	g.Update(100, 1)
	g.Draw(dst, vp)
	s.Draw(dst, vp)

	if c := dst.GetCell(40, 15); c.Rune != core.Placeholder {
		t.Errorf("cell (40,15) = %q, want placeholder", c.Rune)
	}
	if dst.Get(0, 19) == ' ' {
		t.Error("ground not drawn on the last row")
	}
}
