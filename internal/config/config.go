// Package config provides YAML-based game configuration loading and
// validation for the reef platform.
package config

import (
	"errors"
	"fmt"
)

// ReefConfig contains all tunable parameters for the reef game.
// The simulation core receives these as injected values; difficulty
// can be tuned without touching game logic.
type ReefConfig struct {
	World    WorldConfig   `yaml:"world"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Player   PlayerConfig  `yaml:"player"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Pearls   PearlConfig   `yaml:"pearls"`
	PowerUps PowerUpConfig `yaml:"powerups"`
}

// WorldConfig defines the simulation space. Positions and sizes are in
// world units; the platform projects them onto the terminal grid.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig defines the dynamic point system. Pearl and enemy
// values grow linearly with the level they are spawned at.
type ScoringConfig struct {
	PearlBase int `yaml:"pearl_base"`
	PearlStep int `yaml:"pearl_step"`
	EnemyBase int `yaml:"enemy_base"`
	EnemyStep int `yaml:"enemy_step"`
}

// PlayerConfig defines player movement, health, and bubble shooting.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`          // World units per tick
	Size          float64 `yaml:"size"`           // Hitbox edge length
	Health        int     `yaml:"health"`         // Hits before game over
	InvulnTicks   int     `yaml:"invuln_ticks"`   // Invulnerability window after a hit
	BoostFactor   float64 `yaml:"boost_factor"`   // Speed multiplier while boosted
	BubbleSpeed   float64 `yaml:"bubble_speed"`   // Projectile speed per tick
	BubbleSize    float64 `yaml:"bubble_size"`    // Projectile hitbox edge length
	ShootCooldown int     `yaml:"shoot_cooldown"` // Ticks between shots
}

// EnemyConfig defines per-variant enemy parameters.
type EnemyConfig struct {
	Size               float64 `yaml:"size"`                // Jellyfish and crab hitbox
	SharkSize          float64 `yaml:"shark_size"`          // Sharks are bigger
	JellyfishAmplitude float64 `yaml:"jellyfish_amplitude"` // Oscillation half-height
	JellyfishAngular   float64 `yaml:"jellyfish_angular"`   // Radians per tick
	CrabSpeed          float64 `yaml:"crab_speed"`          // Patrol speed per tick
	CrabPatrolRange    float64 `yaml:"crab_patrol_range"`   // Half-width of the patrol
	SharkSpeed         float64 `yaml:"shark_speed"`         // Pursuit speed cap per tick
}

// PearlConfig defines collectible placement.
type PearlConfig struct {
	Size       float64 `yaml:"size"`
	MinSpacing float64 `yaml:"min_spacing"` // Minimum distance between pearls
}

// PowerUpConfig defines power-up spawning and effect duration.
type PowerUpConfig struct {
	Size          float64 `yaml:"size"`
	DurationTicks int     `yaml:"duration_ticks"` // Effect length (300 = 5s at 60 FPS)
	SpawnChance   int     `yaml:"spawn_chance"`   // 1-in-N roll per tick
}

// Validate checks the configuration for values the core cannot operate
// with. It fails fast at initialization rather than clamping silently
// during gameplay.
func (c ReefConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Scoring.PearlBase <= 0 {
		errs = append(errs, fmt.Errorf("scoring.pearl_base must be positive, got %d", c.Scoring.PearlBase))
	}
	if c.Scoring.EnemyBase <= 0 {
		errs = append(errs, fmt.Errorf("scoring.enemy_base must be positive, got %d", c.Scoring.EnemyBase))
	}
	if c.Scoring.PearlStep < 0 {
		errs = append(errs, fmt.Errorf("scoring.pearl_step must not decrease values with level, got %d", c.Scoring.PearlStep))
	}
	if c.Scoring.EnemyStep < 0 {
		errs = append(errs, fmt.Errorf("scoring.enemy_step must not decrease values with level, got %d", c.Scoring.EnemyStep))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %g", c.Player.Speed))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", c.Player.Health))
	}
	if c.Player.BoostFactor < 1 {
		errs = append(errs, fmt.Errorf("player.boost_factor must be at least 1, got %g", c.Player.BoostFactor))
	}
	if c.Player.BubbleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.bubble_speed must be positive, got %g", c.Player.BubbleSpeed))
	}
	if c.Enemies.Size <= 0 || c.Enemies.SharkSize <= 0 {
		errs = append(errs, fmt.Errorf("enemy sizes must be positive, got %g and %g", c.Enemies.Size, c.Enemies.SharkSize))
	}
	if c.Enemies.CrabSpeed <= 0 || c.Enemies.SharkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enemy speeds must be positive, got crab %g, shark %g", c.Enemies.CrabSpeed, c.Enemies.SharkSpeed))
	}
	if c.Enemies.JellyfishAngular <= 0 {
		errs = append(errs, fmt.Errorf("enemies.jellyfish_angular must be positive, got %g", c.Enemies.JellyfishAngular))
	}
	if c.Pearls.Size <= 0 {
		errs = append(errs, fmt.Errorf("pearls.size must be positive, got %g", c.Pearls.Size))
	}
	if c.PowerUps.DurationTicks <= 0 {
		errs = append(errs, fmt.Errorf("powerups.duration_ticks must be positive, got %d", c.PowerUps.DurationTicks))
	}
	if c.PowerUps.SpawnChance < 1 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be at least 1, got %d", c.PowerUps.SpawnChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
