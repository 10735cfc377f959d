package game

import (
	"math"
	"testing"

	"github.com/gavrojas/reef-adventures-game/internal/core"
)

func testJellyfish() Enemy {
	return Enemy{
		Variant: VariantJellyfish,
		Pos:     core.Vec2{X: 200, Y: 300},
		Base:    core.Vec2{X: 200, Y: 300},
		Size:    25,
		Alive:   true,
		Amp:     10,
		Omega:   0.05,
	}
}

func testCrab() Enemy {
	return Enemy{
		Variant:   VariantCrab,
		Pos:       core.Vec2{X: 500, Y: 600},
		Base:      core.Vec2{X: 500, Y: 600},
		Size:      25,
		Alive:     true,
		Speed:     2,
		Dir:       1,
		PatrolMin: 400,
		PatrolMax: 600,
	}
}

func testShark() Enemy {
	return Enemy{
		Variant: VariantShark,
		Pos:     core.Vec2{X: 100, Y: 100},
		Size:    35,
		Alive:   true,
		Speed:   3,
		Dir:     1,
	}
}

func TestAdvanceEnemyDeterministic(t *testing.T) {
	player := core.Vec2{X: 800, Y: 500}

	for _, e := range []Enemy{testJellyfish(), testCrab(), testShark()} {
		a, b := e, e
		for range 100 {
			a = AdvanceEnemy(a, 1, player)
			b = AdvanceEnemy(b, 1, player)
		}
		if a != b {
			t.Errorf("%v: identical inputs diverged: %+v vs %+v", e.Variant, a, b)
		}
	}
}

func TestAdvanceEnemyZeroDt(t *testing.T) {
	player := core.Vec2{X: 800, Y: 500}

	for _, e := range []Enemy{testJellyfish(), testCrab(), testShark()} {
		for _, dt := range []float64{0, -1} {
			got := AdvanceEnemy(e, dt, player)
			if got != e {
				t.Errorf("%v: dt=%v changed state: %+v", e.Variant, dt, got)
			}
		}
	}
}

func TestAdvanceEnemyDeadUnchanged(t *testing.T) {
	e := testShark()
	e.Alive = false
	got := AdvanceEnemy(e, 1, core.Vec2{X: 800, Y: 500})
	if got != e {
		t.Errorf("dead enemy moved: %+v", got)
	}
}

func TestJellyfishOscillation(t *testing.T) {
	e := testJellyfish()
	player := core.Vec2{}

	minY, maxY := e.Pos.Y, e.Pos.Y
	for range 500 {
		e = AdvanceEnemy(e, 1, player)
		if e.Pos.X != e.Base.X {
			t.Fatalf("jellyfish drifted horizontally to %v", e.Pos.X)
		}
		minY = math.Min(minY, e.Pos.Y)
		maxY = math.Max(maxY, e.Pos.Y)
	}

	if minY < e.Base.Y-e.Amp-1e-9 || maxY > e.Base.Y+e.Amp+1e-9 {
		t.Errorf("oscillation out of range: [%v, %v] with base %v amp %v", minY, maxY, e.Base.Y, e.Amp)
	}
	// Full amplitude must actually be explored over many periods.
	if maxY-minY < e.Amp {
		t.Errorf("oscillation range %v too small for amplitude %v", maxY-minY, e.Amp)
	}
	if e.Phase < 0 || e.Phase >= 2*math.Pi {
		t.Errorf("phase %v not wrapped into [0, 2π)", e.Phase)
	}
}

func TestCrabPatrolStaysInRange(t *testing.T) {
	e := testCrab()
	player := core.Vec2{}

	flips := 0
	prevDir := e.Dir
	for range 1000 {
		e = AdvanceEnemy(e, 1, player)
		if e.Pos.X < e.PatrolMin || e.Pos.X > e.PatrolMax {
			t.Fatalf("crab left patrol range: x=%v range=[%v, %v]", e.Pos.X, e.PatrolMin, e.PatrolMax)
		}
		if e.Pos.Y != e.Base.Y {
			t.Fatalf("crab drifted vertically to %v", e.Pos.Y)
		}
		if e.Dir != prevDir {
			flips++
			prevDir = e.Dir
		}
	}
	if flips < 2 {
		t.Errorf("crab flipped direction %d times, expected at least 2", flips)
	}
}

func TestCrabLargeStepReflects(t *testing.T) {
	e := testCrab()
	e.Pos.X = 595
	// A step far past the boundary must reflect back inside, not clamp.
	e = AdvanceEnemy(e, 20, core.Vec2{})
	if e.Pos.X < e.PatrolMin || e.Pos.X > e.PatrolMax {
		t.Fatalf("reflection failed: x=%v range=[%v, %v]", e.Pos.X, e.PatrolMin, e.PatrolMax)
	}
	if e.Dir != -1 {
		t.Errorf("direction after reflection = %v, want -1", e.Dir)
	}
}

func TestSharkPursuit(t *testing.T) {
	e := testShark()
	player := core.Vec2{X: 700, Y: 400}

	prev := e.Pos.Dist(player)
	for range 300 {
		e = AdvanceEnemy(e, 1, player)
		d := e.Pos.Dist(player)
		if d > prev+1e-9 {
			t.Fatalf("shark moved away from player: %v -> %v", prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("shark never reached the player, distance %v", prev)
	}
}

func TestSharkSpeedCap(t *testing.T) {
	e := testShark()
	player := core.Vec2{X: 700, Y: 400}

	moved := e.Pos
	e = AdvanceEnemy(e, 1, player)
	if step := e.Pos.Dist(moved); step > e.Speed+1e-9 {
		t.Errorf("shark moved %v in one tick, speed limit %v", step, e.Speed)
	}
}

func TestSharkNoOvershoot(t *testing.T) {
	e := testShark()
	player := core.Vec2{X: e.Pos.X + 1, Y: e.Pos.Y}

	e = AdvanceEnemy(e, 1, player)
	if e.Pos != player {
		t.Errorf("shark at %+v, want exactly the target %+v", e.Pos, player)
	}
}
