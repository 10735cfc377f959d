package game

import (
	"math/rand"
	"testing"

	"github.com/gavrojas/reef-adventures-game/internal/config"
	"github.com/gavrojas/reef-adventures-game/internal/core"
)

// newTestGame builds a game with default config and a fixed seed,
// bypassing file loading, with empty populations ready for a scenario.
func newTestGame() *Game {
	cfg := config.DefaultReefConfig()
	g := New()
	g.runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	g.cfg = cfg
	g.rules = NewRules(cfg.Scoring)
	g.rng = rand.New(rand.NewSource(42)) //#nosec G404 -- test RNG
	g.level = 1
	g.player = Player{
		Pos:    core.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height / 2},
		Size:   cfg.Player.Size,
		Health: cfg.Player.Health,
		Facing: 1,
	}
	return g
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestPearlCollection(t *testing.T) {
	g := newTestGame()
	g.pearls = []Pearl{
		{Pos: g.player.Pos, Size: 15, Points: 27},
		{Pos: core.Vec2{X: 50, Y: 50}, Size: 15, Points: 27},
	}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventPearlCollected); got != 1 {
		t.Fatalf("pearl events = %d, want 1", got)
	}
	if g.score != 27 {
		t.Errorf("score = %d, want 27", g.score)
	}
	if !g.pearls[0].Collected || g.pearls[1].Collected {
		t.Errorf("wrong pearl collected: %+v", g.pearls)
	}

	// A collected pearl never scores again.
	events = g.resolveCollisions()
	if len(events) != 0 || g.score != 27 {
		t.Errorf("second pass scored again: events=%v score=%d", events, g.score)
	}
}

func TestPlayerHitLosesHealth(t *testing.T) {
	g := newTestGame()
	g.enemies = []Enemy{{
		Variant: VariantCrab,
		Pos:     g.player.Pos,
		Size:    25,
		Points:  80,
		Alive:   true,
	}}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventPlayerHit); got != 1 {
		t.Fatalf("hit events = %d, want 1", got)
	}
	if g.player.Health != g.cfg.Player.Health-1 {
		t.Errorf("health = %d, want %d", g.player.Health, g.cfg.Player.Health-1)
	}
	if !g.enemies[0].Alive {
		t.Error("enemy died from touching the player")
	}
	if g.player.InvulnLeft != float64(g.cfg.Player.InvulnTicks) {
		t.Errorf("invulnerability = %v, want %v", g.player.InvulnLeft, g.cfg.Player.InvulnTicks)
	}
	if g.score != 0 {
		t.Errorf("score changed on hit: %d", g.score)
	}

	// Invulnerable: no further damage while overlapping.
	events = g.resolveCollisions()
	if got := countEvents(events, core.EventPlayerHit); got != 0 {
		t.Errorf("hit while invulnerable: %d events", got)
	}
}

func TestPlayerHitAtMostOncePerTick(t *testing.T) {
	g := newTestGame()
	for range 3 {
		g.enemies = append(g.enemies, Enemy{
			Variant: VariantCrab,
			Pos:     g.player.Pos,
			Size:    25,
			Alive:   true,
		})
	}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventPlayerHit); got != 1 {
		t.Errorf("overlapping 3 enemies produced %d hits, want 1", got)
	}
	if g.player.Health != g.cfg.Player.Health-1 {
		t.Errorf("health = %d, want %d", g.player.Health, g.cfg.Player.Health-1)
	}
}

func TestShieldDefeatsEnemy(t *testing.T) {
	g := newTestGame()
	g.player.ShieldLeft = 100
	g.enemies = []Enemy{{
		Variant: VariantShark,
		Pos:     g.player.Pos,
		Size:    35,
		Points:  80,
		Alive:   true,
	}}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventEnemyDefeated); got != 1 {
		t.Fatalf("defeat events = %d, want 1", got)
	}
	if countEvents(events, core.EventPlayerHit) != 0 {
		t.Error("player took damage through the shield")
	}
	if g.enemies[0].Alive {
		t.Error("enemy survived the shield")
	}
	if g.score != 80 {
		t.Errorf("score = %d, want 80", g.score)
	}
	if g.player.Health != g.cfg.Player.Health {
		t.Errorf("health = %d, want %d", g.player.Health, g.cfg.Player.Health)
	}
}

func TestBubbleDefeatsEnemy(t *testing.T) {
	g := newTestGame()
	pos := core.Vec2{X: 300, Y: 300}
	g.enemies = []Enemy{{Variant: VariantJellyfish, Pos: pos, Size: 25, Points: 80, Alive: true}}
	g.bubbles = []Bubble{{Pos: pos, Size: 8, VX: 8, Active: true}}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventEnemyDefeated); got != 1 {
		t.Fatalf("defeat events = %d, want 1", got)
	}
	if g.enemies[0].Alive {
		t.Error("enemy survived the bubble")
	}
	if g.bubbles[0].Active {
		t.Error("bubble survived the hit")
	}
	if g.score != 80 {
		t.Errorf("score = %d, want 80", g.score)
	}
}

func TestBubblePopsOnFirstHitOnly(t *testing.T) {
	g := newTestGame()
	pos := core.Vec2{X: 300, Y: 300}
	g.enemies = []Enemy{
		{Variant: VariantJellyfish, Pos: pos, Size: 25, Points: 80, Alive: true},
		{Variant: VariantJellyfish, Pos: pos, Size: 25, Points: 80, Alive: true},
	}
	g.bubbles = []Bubble{{Pos: pos, Size: 8, VX: 8, Active: true}}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventEnemyDefeated); got != 1 {
		t.Errorf("one bubble defeated %d enemies, want 1", got)
	}
}

func TestPowerUpRefreshesNotStacks(t *testing.T) {
	g := newTestGame()
	g.player.BoostLeft = 50
	g.powerups = []PowerUp{{Kind: PowerSpeedBoost, Pos: g.player.Pos, Size: 20}}

	events := g.resolveCollisions()

	if got := countEvents(events, core.EventPowerUpCollected); got != 1 {
		t.Fatalf("collect events = %d, want 1", got)
	}
	if g.player.BoostLeft != float64(g.cfg.PowerUps.DurationTicks) {
		t.Errorf("boost timer = %v, want refreshed to %v", g.player.BoostLeft, g.cfg.PowerUps.DurationTicks)
	}
}

func TestCompactEntitiesKeepsDeadEnemies(t *testing.T) {
	g := newTestGame()
	g.enemies = []Enemy{{Variant: VariantCrab, Alive: false}}
	g.pearls = []Pearl{{Collected: true}, {Collected: false}}
	g.powerups = []PowerUp{{Collected: true}}
	g.bubbles = []Bubble{{Active: false}, {Active: true}}

	g.compactEntities()

	if len(g.enemies) != 1 {
		t.Errorf("dead enemies dropped: %d left", len(g.enemies))
	}
	if len(g.pearls) != 1 {
		t.Errorf("pearls = %d, want 1", len(g.pearls))
	}
	if len(g.powerups) != 0 {
		t.Errorf("powerups = %d, want 0", len(g.powerups))
	}
	if len(g.bubbles) != 1 {
		t.Errorf("bubbles = %d, want 1", len(g.bubbles))
	}
}
