package game

import "github.com/gavrojas/reef-adventures-game/internal/core"

// resolveCollisions handles every overlap for the current tick and
// returns the events it produced. Order matters: bubbles hit enemies
// before the player is checked against them, so a point-blank shot
// still counts as a kill rather than a hit.
func (g *Game) resolveCollisions() []core.Event {
	var events []core.Event

	events = append(events, g.collideBubbles()...)
	events = append(events, g.collectPearls()...)
	events = append(events, g.collidePlayer()...)
	events = append(events, g.collectPowerUps()...)

	return events
}

// collideBubbles defeats any enemy overlapping an active bubble. Each
// bubble pops on its first hit.
func (g *Game) collideBubbles() []core.Event {
	var events []core.Event
	for bi := range g.bubbles {
		b := &g.bubbles[bi]
		if !b.Active {
			continue
		}
		for ei := range g.enemies {
			e := &g.enemies[ei]
			if !e.Alive || !b.Rect().Intersects(e.Rect()) {
				continue
			}
			e.Alive = false
			b.Active = false
			g.score += e.Points
			events = append(events, core.Event{
				Kind:  core.EventEnemyDefeated,
				Value: e.Points,
				Pos:   e.Pos,
			})
			break
		}
	}
	return events
}

// collectPearls awards every pearl overlapping the player.
func (g *Game) collectPearls() []core.Event {
	var events []core.Event
	pr := g.player.Rect()
	for i := range g.pearls {
		p := &g.pearls[i]
		if p.Collected || !pr.Intersects(p.Rect()) {
			continue
		}
		p.Collected = true
		g.score += p.Points
		events = append(events, core.Event{
			Kind:  core.EventPearlCollected,
			Value: p.Points,
			Pos:   p.Pos,
		})
	}
	return events
}

// collidePlayer resolves player-enemy contact. With an active shield
// the enemy is defeated and scored; otherwise the player loses one
// health and becomes invulnerable for a while. At most one hit is
// taken per tick.
func (g *Game) collidePlayer() []core.Event {
	var events []core.Event
	pr := g.player.Rect()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !pr.Intersects(e.Rect()) {
			continue
		}
		if g.player.ShieldActive() {
			e.Alive = false
			g.score += e.Points
			events = append(events, core.Event{
				Kind:  core.EventEnemyDefeated,
				Value: e.Points,
				Pos:   e.Pos,
			})
			continue
		}
		if !g.player.CanTakeDamage() {
			continue
		}
		g.player.Health--
		g.player.InvulnLeft = float64(g.cfg.Player.InvulnTicks)
		events = append(events, core.Event{
			Kind:  core.EventPlayerHit,
			Value: g.player.Health,
			Pos:   g.player.Pos,
		})
	}
	return events
}

// collectPowerUps applies every power-up overlapping the player.
// Picking up a kind that is already active refreshes its timer rather
// than stacking.
func (g *Game) collectPowerUps() []core.Event {
	var events []core.Event
	pr := g.player.Rect()
	duration := float64(g.cfg.PowerUps.DurationTicks)
	for i := range g.powerups {
		p := &g.powerups[i]
		if p.Collected || !pr.Intersects(p.Rect()) {
			continue
		}
		p.Collected = true
		switch p.Kind {
		case PowerSpeedBoost:
			g.player.BoostLeft = duration
		case PowerShield:
			g.player.ShieldLeft = duration
		}
		events = append(events, core.Event{
			Kind:  core.EventPowerUpCollected,
			Value: int(p.Kind),
			Pos:   p.Pos,
		})
	}
	return events
}

// compactEntities drops collected pearls and power-ups and inactive
// bubbles so the slices stay small. Dead enemies are kept: the level
// controller needs them to tell "all defeated" from "none spawned".
func (g *Game) compactEntities() {
	pearls := g.pearls[:0]
	for _, p := range g.pearls {
		if !p.Collected {
			pearls = append(pearls, p)
		}
	}
	g.pearls = pearls

	powerups := g.powerups[:0]
	for _, p := range g.powerups {
		if !p.Collected {
			powerups = append(powerups, p)
		}
	}
	g.powerups = powerups

	bubbles := g.bubbles[:0]
	for _, b := range g.bubbles {
		if b.Active {
			bubbles = append(bubbles, b)
		}
	}
	g.bubbles = bubbles
}
