package game

import (
	"fmt"

	"github.com/gavrojas/reef-adventures-game/internal/config"
)

// Rules holds the scoring parameters injected from configuration.
// All value functions are pure and deterministic in the level.
type Rules struct {
	PearlBase int
	PearlStep int
	EnemyBase int
	EnemyStep int
}

// NewRules builds scoring rules from a validated scoring config.
func NewRules(sc config.ScoringConfig) Rules {
	return Rules{
		PearlBase: sc.PearlBase,
		PearlStep: sc.PearlStep,
		EnemyBase: sc.EnemyBase,
		EnemyStep: sc.EnemyStep,
	}
}

// mustValidLevel enforces the level >= 1 contract. Querying a
// non-positive level is a programming error, not a game state.
func mustValidLevel(level int) {
	if level < 1 {
		panic(fmt.Sprintf("game: level must be >= 1, got %d", level))
	}
}

// PearlValue returns the points a pearl spawned at the given level is
// worth. Monotonically non-decreasing in the level.
func (r Rules) PearlValue(level int) int {
	mustValidLevel(level)
	return r.PearlBase + r.PearlStep*level
}

// EnemyValue returns the points a defeated enemy spawned at the given
// level is worth. Monotonically non-decreasing in the level.
func (r Rules) EnemyValue(level int) int {
	mustValidLevel(level)
	return r.EnemyBase + r.EnemyStep*level
}

// thresholdTable holds the authored score targets for levels 1-30.
// Increments grow every level, giving the aggressive exponential feel:
// 50, 120, 280, ... 3200 at level 10, 46300 at level 30.
var thresholdTable = [...]int{
	50, 120, 280, 450, 700,
	1000, 1400, 1900, 2500, 3200,
	4000, 4900, 5900, 7000, 8200,
	9500, 11000, 12600, 14400, 16300,
	18400, 20700, 23200, 25900, 28800,
	31900, 35200, 38700, 42400, 46300,
}

// thresholdTailStep is the per-level increase past the authored table.
const thresholdTailStep = 5000

// LevelThreshold returns the cumulative score required to advance past
// the given level. Strictly increasing for all levels; int arithmetic
// keeps it exact far beyond level 10,000 on 64-bit platforms.
func LevelThreshold(level int) int {
	mustValidLevel(level)
	if level <= len(thresholdTable) {
		return thresholdTable[level-1]
	}
	extra := level - len(thresholdTable)
	return thresholdTable[len(thresholdTable)-1] + extra*thresholdTailStep
}

// Zone is a cosmetic difficulty tier derived from the level.
type Zone int

const (
	ZoneReef     Zone = iota // Levels 1-9
	ZoneAdvanced             // Levels 10-19
	ZoneExpert               // Levels 20-29
	ZoneMaster               // Level 30 and beyond
)

// String returns the display name of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneReef:
		return "Reef"
	case ZoneAdvanced:
		return "Advanced"
	case ZoneExpert:
		return "Expert"
	case ZoneMaster:
		return "Master"
	default:
		return "Unknown"
	}
}

// ZoneFor returns the cosmetic zone tag for a level. Pure function of
// the level, never stored. All tiers past Master share its tag.
func ZoneFor(level int) Zone {
	mustValidLevel(level)
	switch {
	case level >= 30:
		return ZoneMaster
	case level >= 20:
		return ZoneExpert
	case level >= 10:
		return ZoneAdvanced
	default:
		return ZoneReef
	}
}

// IsMilestone reports whether completing the given level deserves a
// special message (every tenth level).
func IsMilestone(level int) bool {
	return level >= 10 && level%10 == 0
}

// MilestoneMessage returns the celebration text for a completed
// milestone level.
func MilestoneMessage(level int) string {
	switch level {
	case 10:
		return "Congratulations! You reached level 10!"
	case 20:
		return "Incredible! Level 20 conquered!"
	case 30:
		return "MASTER OF THE REEF! Level 30 complete!"
	case 40:
		return "SEA LEGEND! Level 40 reached!"
	case 50:
		return "EMPEROR OF THE OCEAN! Level 50 mastered!"
	default:
		return fmt.Sprintf("Level %d complete!", level)
	}
}
