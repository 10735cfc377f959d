package game

import (
	"math"

	"github.com/gavrojas/reef-adventures-game/internal/core"
)

// BehaviorFunc is a pure movement transition for one enemy variant.
// Given the current state, the elapsed ticks, and the player position,
// it returns the next state. No hidden randomness: each variant is
// independently testable and replayable.
type BehaviorFunc func(e Enemy, dt float64, player core.Vec2) Enemy

// behaviors dispatches variant tags to their movement functions.
var behaviors = map[Variant]BehaviorFunc{
	VariantJellyfish: jellyfishAdvance,
	VariantCrab:      crabAdvance,
	VariantShark:     sharkAdvance,
}

// AdvanceEnemy moves an enemy according to its variant behavior.
// Dead enemies no longer move.
func AdvanceEnemy(e Enemy, dt float64, player core.Vec2) Enemy {
	if !e.Alive || dt <= 0 {
		return e
	}
	advance, ok := behaviors[e.Variant]
	if !ok {
		return e
	}
	return advance(e, dt, player)
}

// jellyfishAdvance drifts the jellyfish up and down around its base
// position: a lazy, bounded oscillation. The phase wraps at 2*pi so the
// motion is infinite and restartable.
func jellyfishAdvance(e Enemy, dt float64, _ core.Vec2) Enemy {
	e.Phase += e.Omega * dt
	if e.Phase >= 2*math.Pi {
		e.Phase = math.Mod(e.Phase, 2*math.Pi)
	}
	e.Pos.X = e.Base.X
	e.Pos.Y = e.Base.Y + e.Amp*math.Sin(e.Phase)
	return e
}

// crabAdvance scuttles the crab between its patrol bounds, reflecting
// the overshoot at each bound rather than teleporting.
func crabAdvance(e Enemy, dt float64, _ core.Vec2) Enemy {
	e.Pos.X += e.Dir * e.Speed * dt

	// Reflect at the bounds. The loop handles steps longer than the
	// patrol width without losing distance.
	for {
		if e.Pos.X < e.PatrolMin {
			e.Pos.X = e.PatrolMin + (e.PatrolMin - e.Pos.X)
			e.Dir = 1
			continue
		}
		if e.Pos.X > e.PatrolMax {
			e.Pos.X = e.PatrolMax - (e.Pos.X - e.PatrolMax)
			e.Dir = -1
			continue
		}
		break
	}
	return e
}

// sharkAdvance steers the shark straight at the player: greedy pursuit
// with no path prediction. The step is capped at the shark's speed and
// clamped to the remaining distance so the shark never overshoots,
// which makes the player distance strictly non-increasing.
func sharkAdvance(e Enemy, dt float64, player core.Vec2) Enemy {
	to := player.Sub(e.Pos)
	dist := to.Len()
	if dist == 0 {
		return e
	}

	step := e.Speed * dt
	if step > dist {
		step = dist
	}
	e.Pos = e.Pos.Add(to.Norm().Scale(step))
	if to.X != 0 {
		e.Dir = math.Copysign(1, to.X)
	}
	return e
}
