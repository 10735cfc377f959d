package game

import (
	"testing"

	"github.com/gavrojas/reef-adventures-game/internal/core"
)

func TestAdvanceOnThreshold(t *testing.T) {
	g := newTestGame()
	g.enemies = g.spawnEnemies(1)
	g.pearls = g.spawnPearls(1)
	g.score = LevelThreshold(1)

	events := g.checkLevelProgression()

	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if countEvents(events, core.EventLevelAdvanced) != 1 {
		t.Errorf("no level advance event in %v", events)
	}
	if g.score != LevelThreshold(1) {
		t.Errorf("score reset on advance: %d", g.score)
	}
}

func TestNoAdvanceBelowThreshold(t *testing.T) {
	g := newTestGame()
	g.enemies = g.spawnEnemies(1)
	g.score = LevelThreshold(1) - 1

	g.checkLevelProgression()

	if g.level != 1 {
		t.Errorf("level = %d, want 1", g.level)
	}
}

func TestAdvanceWhenAllEnemiesDefeated(t *testing.T) {
	g := newTestGame()
	g.enemies = g.spawnEnemies(1)
	for i := range g.enemies {
		g.enemies[i].Alive = false
	}
	g.score = 0

	g.checkLevelProgression()

	if g.level != 2 {
		t.Errorf("level = %d, want 2 after clearing all enemies", g.level)
	}
}

func TestAdvanceRebuildsPopulations(t *testing.T) {
	g := newTestGame()
	g.enemies = g.spawnEnemies(1)
	g.pearls = []Pearl{{Pos: core.Vec2{X: 100, Y: 100}, Size: 15, Points: 27}}
	g.powerups = []PowerUp{{Kind: PowerShield, Pos: core.Vec2{X: 200, Y: 200}, Size: 20}}
	g.bubbles = []Bubble{{Pos: core.Vec2{X: 300, Y: 300}, Size: 8, VX: 8, Active: true}}
	g.score = LevelThreshold(1)

	g.checkLevelProgression()

	if len(g.enemies) != enemyCountForLevel(2) {
		t.Errorf("enemies = %d, want %d", len(g.enemies), enemyCountForLevel(2))
	}
	for i := range g.enemies {
		if !g.enemies[i].Alive {
			t.Errorf("enemy %d spawned dead", i)
		}
		if g.enemies[i].Points != g.rules.EnemyValue(2) {
			t.Errorf("enemy %d worth %d, want %d", i, g.enemies[i].Points, g.rules.EnemyValue(2))
		}
	}
	if len(g.pearls) == 0 {
		t.Error("no pearls after advance")
	}
	for i := range g.pearls {
		if g.pearls[i].Points != g.rules.PearlValue(2) {
			t.Errorf("pearl %d worth %d, want %d", i, g.pearls[i].Points, g.rules.PearlValue(2))
		}
	}
	if len(g.powerups) != 0 {
		t.Errorf("power-ups carried over: %d", len(g.powerups))
	}
	if len(g.bubbles) != 0 {
		t.Errorf("bubbles carried over: %d", len(g.bubbles))
	}
}

func TestMilestoneBannerOnCompletedLevel(t *testing.T) {
	// The banner celebrates the level just finished, so it appears
	// when level 10 is completed, not when it is entered.
	g := newTestGame()
	g.level = 10
	g.enemies = g.spawnEnemies(10)
	g.score = LevelThreshold(10)

	events := g.checkLevelProgression()

	if g.level != 11 {
		t.Fatalf("level = %d, want 11", g.level)
	}
	if countEvents(events, core.EventMilestone) != 1 {
		t.Errorf("no milestone event in %v", events)
	}
	for _, ev := range events {
		if ev.Kind == core.EventMilestone && ev.Value != 10 {
			t.Errorf("milestone value = %d, want 10", ev.Value)
		}
	}
	if g.banner != MilestoneMessage(10) {
		t.Errorf("banner = %q, want %q", g.banner, MilestoneMessage(10))
	}
	if g.bannerLeft <= 0 {
		t.Errorf("bannerLeft = %v, want > 0", g.bannerLeft)
	}
}

func TestNoMilestoneEnteringTenthLevel(t *testing.T) {
	g := newTestGame()
	g.level = 9
	g.enemies = g.spawnEnemies(9)
	g.score = LevelThreshold(9)

	events := g.checkLevelProgression()

	if g.level != 10 {
		t.Fatalf("level = %d, want 10", g.level)
	}
	if countEvents(events, core.EventMilestone) != 0 {
		t.Errorf("unexpected milestone event in %v", events)
	}
	if g.banner != "" {
		t.Errorf("banner = %q, want empty", g.banner)
	}
}

func TestEnemyCountForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 3}, {3, 3},
		{4, 5}, {10, 5},
		{11, 7}, {20, 7},
		{21, 8}, {50, 8},
	}
	for _, tt := range tests {
		if got := enemyCountForLevel(tt.level); got != tt.want {
			t.Errorf("enemyCountForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestVariantAvailability(t *testing.T) {
	g := newTestGame()

	for range 50 {
		if v := g.pickVariant(1); v != VariantJellyfish {
			t.Fatalf("level 1 spawned %v", v)
		}
	}
	for range 50 {
		if v := g.pickVariant(5); v == VariantShark {
			t.Fatal("level 5 spawned a shark")
		}
	}

	// High levels must eventually produce sharks.
	sawShark := false
	for range 200 {
		if g.pickVariant(15) == VariantShark {
			sawShark = true
			break
		}
	}
	if !sawShark {
		t.Error("level 15 never spawned a shark in 200 draws")
	}
}

func TestPearlSpacing(t *testing.T) {
	g := newTestGame()
	pearls := g.spawnPearls(1)

	if len(pearls) == 0 {
		t.Fatal("no pearls spawned")
	}
	for i := range pearls {
		for j := i + 1; j < len(pearls); j++ {
			if d := pearls[i].Pos.Dist(pearls[j].Pos); d < g.cfg.Pearls.MinSpacing {
				t.Errorf("pearls %d and %d only %v apart, min %v", i, j, d, g.cfg.Pearls.MinSpacing)
			}
		}
	}
}

func TestSpawnInsideWorld(t *testing.T) {
	g := newTestGame()

	for _, e := range g.spawnEnemies(25) {
		if e.Pos.X < 0 || e.Pos.X > g.cfg.World.Width || e.Pos.Y < 0 || e.Pos.Y > g.cfg.World.Height {
			t.Errorf("enemy spawned outside world: %+v", e.Pos)
		}
	}
	for _, p := range g.spawnPearls(25) {
		if p.Pos.X < 0 || p.Pos.X > g.cfg.World.Width || p.Pos.Y < 0 || p.Pos.Y > g.cfg.World.Height {
			t.Errorf("pearl spawned outside world: %+v", p.Pos)
		}
	}
}
