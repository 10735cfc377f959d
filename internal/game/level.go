package game

import "github.com/gavrojas/reef-adventures-game/internal/core"

// checkLevelProgression advances the level when the score reaches the
// current threshold or when every enemy is defeated. Returns the
// events produced by an advance, or nil.
func (g *Game) checkLevelProgression() []core.Event {
	if g.score < LevelThreshold(g.level) && g.anyEnemyAlive() {
		return nil
	}
	return g.advanceLevel()
}

func (g *Game) anyEnemyAlive() bool {
	for i := range g.enemies {
		if g.enemies[i].Alive {
			return true
		}
	}
	return false
}

// advanceLevel moves to the next level and rebuilds its population.
// Score carries over; leftover pearls, power-ups and bubbles do not.
func (g *Game) advanceLevel() []core.Event {
	g.level++

	g.enemies = g.spawnEnemies(g.level)
	g.pearls = g.spawnPearls(g.level)
	g.powerups = nil
	g.bubbles = nil

	events := []core.Event{{
		Kind:  core.EventLevelAdvanced,
		Value: g.level,
		Pos:   g.player.Pos,
	}}
	if completed := g.level - 1; IsMilestone(completed) {
		g.banner = MilestoneMessage(completed)
		g.bannerLeft = bannerTicks
		events = append(events, core.Event{
			Kind:  core.EventMilestone,
			Value: completed,
			Pos:   g.player.Pos,
		})
	}
	return events
}
