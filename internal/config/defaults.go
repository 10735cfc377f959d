package config

import (
	_ "embed"
)

//go:embed defaults/reef.yaml
var defaultReefYAML []byte

// DefaultReefConfig returns the default reef game configuration.
// Values mirror the embedded defaults/reef.yaml.
func DefaultReefConfig() ReefConfig {
	return ReefConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 700,
		},
		Scoring: ScoringConfig{
			PearlBase: 25,
			PearlStep: 2,
			EnemyBase: 75,
			EnemyStep: 5,
		},
		Player: PlayerConfig{
			Speed:         5,
			Size:          30,
			Health:        3,
			InvulnTicks:   120,
			BoostFactor:   1.5,
			BubbleSpeed:   8,
			BubbleSize:    8,
			ShootCooldown: 15,
		},
		Enemies: EnemyConfig{
			Size:               25,
			SharkSize:          35,
			JellyfishAmplitude: 10,
			JellyfishAngular:   0.05,
			CrabSpeed:          2,
			CrabPatrolRange:    120,
			SharkSpeed:         3,
		},
		Pearls: PearlConfig{
			Size:       15,
			MinSpacing: 40,
		},
		PowerUps: PowerUpConfig{
			Size:          20,
			DurationTicks: 300,
			SpawnChance:   300,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultReefYAML
}
