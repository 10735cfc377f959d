package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	Health   int  // Remaining player health
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies a discrete occurrence during a simulation tick.
type EventKind int

const (
	EventPearlCollected   EventKind = iota // Value = points awarded
	EventEnemyDefeated                     // Value = points awarded
	EventPowerUpCollected                  // Value = power-up kind
	EventPowerUpExpired                    // Value = power-up kind
	EventPlayerHit                         // Value = remaining health
	EventLevelAdvanced                     // Value = new level
	EventMilestone                         // Value = completed milestone level
	EventGameOver                          // Value = final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPearlCollected:
		return "PearlCollected"
	case EventEnemyDefeated:
		return "EnemyDefeated"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventPowerUpExpired:
		return "PowerUpExpired"
	case EventPlayerHit:
		return "PlayerHit"
	case EventLevelAdvanced:
		return "LevelAdvanced"
	case EventMilestone:
		return "Milestone"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete occurrence reported by a tick, so the presentation
// layer can react (sound, flashes, status messages) without diffing state.
type Event struct {
	Kind  EventKind
	Value int  // Kind-specific payload (points, level, health, ...)
	Pos   Vec2 // World position the event happened at, if any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
