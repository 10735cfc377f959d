package game

import (
	"math"

	"github.com/gavrojas/reef-adventures-game/internal/core"
)

// Spawn margins keep new entities away from the world edges.
const (
	enemySpawnMargin = 100
	itemSpawnMargin  = 50
)

// enemyCountForLevel returns how many enemies a level starts with.
// Balanced, not excessive: the difficulty comes from point thresholds.
func enemyCountForLevel(level int) int {
	switch {
	case level <= 3:
		return 3
	case level <= 10:
		return 5
	case level <= 20:
		return 7
	default:
		return 8
	}
}

// variantsForLevel returns which enemy variants may appear at a level.
// Jellyfish only at the start, crabs from level 4, sharks from level 9.
func variantsForLevel(level int) []Variant {
	switch {
	case level <= 3:
		return []Variant{VariantJellyfish}
	case level <= 8:
		return []Variant{VariantJellyfish, VariantCrab}
	default:
		return []Variant{VariantJellyfish, VariantCrab, VariantShark}
	}
}

// variantWeightsForLevel returns the selection weights matching
// variantsForLevel. High levels favor sharks.
func variantWeightsForLevel(level int) []int {
	switch {
	case level >= 15:
		return []int{1, 2, 4}
	case level >= 9:
		return []int{2, 3, 2}
	case level >= 4:
		return []int{3, 4}
	default:
		return []int{1}
	}
}

// pearlCountForLevel returns how many pearls a level starts with.
func pearlCountForLevel(level int) int {
	switch {
	case level <= 5:
		return 8
	case level <= 15:
		return 12
	default:
		return 15
	}
}

// pickVariant selects an enemy variant for the level using the level's
// weights and the game's deterministic RNG.
func (g *Game) pickVariant(level int) Variant {
	variants := variantsForLevel(level)
	weights := variantWeightsForLevel(level)

	total := 0
	for _, w := range weights {
		total += w
	}
	roll := g.rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return variants[i]
		}
	}
	return variants[len(variants)-1]
}

// randomPos returns a position inside the world with the given margin
// from every edge.
func (g *Game) randomPos(margin float64) core.Vec2 {
	return core.Vec2{
		X: margin + g.rng.Float64()*(g.cfg.World.Width-2*margin),
		Y: margin + g.rng.Float64()*(g.cfg.World.Height-2*margin),
	}
}

// spawnEnemies creates the enemy population for a level. Point values
// are derived from the spawn level and never change afterwards.
func (g *Game) spawnEnemies(level int) []Enemy {
	count := enemyCountForLevel(level)
	points := g.rules.EnemyValue(level)
	enemies := make([]Enemy, 0, count)

	for range count {
		variant := g.pickVariant(level)
		pos := g.randomPos(enemySpawnMargin)

		e := Enemy{
			Variant: variant,
			Pos:     pos,
			Base:    pos,
			Points:  points,
			Alive:   true,
		}

		switch variant {
		case VariantJellyfish:
			e.Size = g.cfg.Enemies.Size
			e.Amp = g.cfg.Enemies.JellyfishAmplitude
			e.Omega = g.cfg.Enemies.JellyfishAngular
			e.Phase = g.rng.Float64() * 2 * math.Pi
		case VariantCrab:
			e.Size = g.cfg.Enemies.Size
			e.Speed = g.cfg.Enemies.CrabSpeed
			e.Dir = 1
			if g.rng.Intn(2) == 0 {
				e.Dir = -1
			}
			e.PatrolMin = core.ClampF(pos.X-g.cfg.Enemies.CrabPatrolRange, 0, g.cfg.World.Width)
			e.PatrolMax = core.ClampF(pos.X+g.cfg.Enemies.CrabPatrolRange, 0, g.cfg.World.Width)
		case VariantShark:
			e.Size = g.cfg.Enemies.SharkSize
			e.Speed = g.cfg.Enemies.SharkSpeed
			e.Dir = 1
		}

		enemies = append(enemies, e)
	}
	return enemies
}

// spawnPearls creates the pearl population for a level, keeping a
// minimum distance between pearls. Bounded attempts so a crowded world
// cannot loop forever.
func (g *Game) spawnPearls(level int) []Pearl {
	count := pearlCountForLevel(level)
	points := g.rules.PearlValue(level)
	pearls := make([]Pearl, 0, count)

	attempts := 0
	maxAttempts := count * 3
	for len(pearls) < count && attempts < maxAttempts {
		attempts++
		pos := g.randomPos(itemSpawnMargin)

		tooClose := false
		for _, p := range pearls {
			if pos.Dist(p.Pos) < g.cfg.Pearls.MinSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		pearls = append(pearls, Pearl{
			Pos:    pos,
			Size:   g.cfg.Pearls.Size,
			Points: points,
		})
	}
	return pearls
}

// maybeSpawnPowerUp occasionally drops a random power-up somewhere in
// the world. Called once per elapsed tick.
func (g *Game) maybeSpawnPowerUp() {
	if g.rng.Intn(g.cfg.PowerUps.SpawnChance) != 0 {
		return
	}

	kind := PowerSpeedBoost
	if g.rng.Intn(2) == 0 {
		kind = PowerShield
	}
	g.powerups = append(g.powerups, PowerUp{
		Kind: kind,
		Pos:  g.randomPos(itemSpawnMargin),
		Size: g.cfg.PowerUps.Size,
	})
}
