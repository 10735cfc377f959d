// Package game implements the reef adventure simulation: a
// player-controlled fish collects pearls, dodges or shoots enemies, and
// advances through an infinite sequence of levels with exponential
// score targets. The package is pure logic with no terminal
// dependencies; the platform layer drives it tick by tick.
package game

import "github.com/gavrojas/reef-adventures-game/internal/core"

// Variant identifies an enemy movement behavior.
type Variant int

const (
	VariantJellyfish Variant = iota // Lazy sinusoidal oscillation
	VariantCrab                     // Linear patrol between bounds
	VariantShark                    // Greedy pursuit of the player
)

// String returns the display name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantJellyfish:
		return "Jellyfish"
	case VariantCrab:
		return "Crab"
	case VariantShark:
		return "Shark"
	default:
		return "Unknown"
	}
}

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	PowerSpeedBoost PowerKind = iota // Temporary speed multiplier
	PowerShield                      // Temporary damage immunity
)

// String returns the display name of the power-up kind.
func (k PowerKind) String() string {
	switch k {
	case PowerSpeedBoost:
		return "SpeedBoost"
	case PowerShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// Player is the player-controlled fish. Timers count down in ticks and
// revert their effect exactly when they reach zero.
type Player struct {
	Pos    core.Vec2
	Size   float64
	Health int
	Facing float64 // +1 facing right, -1 facing left

	BoostLeft  float64 // Remaining speed-boost ticks
	ShieldLeft float64 // Remaining shield ticks
	InvulnLeft float64 // Remaining post-hit invulnerability ticks
	ShootCool  float64 // Ticks until the next bubble may be fired
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.RectAround(p.Pos, p.Size)
}

// BoostActive reports whether the speed boost is in effect.
func (p Player) BoostActive() bool {
	return p.BoostLeft > 0
}

// ShieldActive reports whether the shield is in effect.
func (p Player) ShieldActive() bool {
	return p.ShieldLeft > 0
}

// CanTakeDamage reports whether a collision with an enemy hurts the
// player this tick.
func (p Player) CanTakeDamage() bool {
	return p.InvulnLeft <= 0 && !p.ShieldActive()
}

// Enemy is a tagged variant record. Behavior state beyond the common
// fields is variant-specific: Phase for jellyfish oscillation,
// PatrolMin/PatrolMax and Dir for the crab, Speed for crab and shark.
type Enemy struct {
	Variant Variant
	Pos     core.Vec2
	Base    core.Vec2 // Spawn anchor; jellyfish oscillate around it
	Size    float64
	Points  int // Derived from the spawn level, never mutated
	Alive   bool

	Phase     float64 // Oscillation phase, wraps at 2*pi
	Amp       float64 // Oscillation amplitude
	Omega     float64 // Oscillation angular speed, radians per tick
	Dir       float64 // Patrol heading, +1 or -1
	PatrolMin float64 // Left patrol bound (x)
	PatrolMax float64 // Right patrol bound (x)
	Speed     float64 // Movement speed per tick
}

// Rect returns the enemy's collision box.
func (e Enemy) Rect() core.RectF {
	return core.RectAround(e.Pos, e.Size)
}

// Pearl is a collectible. Its point value is fixed at spawn time from
// the level it appeared at.
type Pearl struct {
	Pos       core.Vec2
	Size      float64
	Points    int
	Collected bool
}

// Rect returns the pearl's collision box.
func (p Pearl) Rect() core.RectF {
	return core.RectAround(p.Pos, p.Size)
}

// PowerUp is a collectible temporary modifier.
type PowerUp struct {
	Kind      PowerKind
	Pos       core.Vec2
	Size      float64
	Collected bool
}

// Rect returns the power-up's collision box.
func (p PowerUp) Rect() core.RectF {
	return core.RectAround(p.Pos, p.Size)
}

// Bubble is a player projectile travelling horizontally.
type Bubble struct {
	Pos    core.Vec2
	Size   float64
	VX     float64 // Horizontal velocity per tick, sign = direction
	Active bool
}

// Rect returns the bubble's collision box.
func (b Bubble) Rect() core.RectF {
	return core.RectAround(b.Pos, b.Size)
}
