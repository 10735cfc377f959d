package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gavrojas/reef-adventures-game/internal/config"
	"github.com/gavrojas/reef-adventures-game/internal/core"
	"github.com/gavrojas/reef-adventures-game/internal/registry"
)

// Glyphs for rendering entities on the terminal grid.
const (
	PlayerRightChar = '>'
	PlayerLeftChar  = '<'
	JellyfishChar   = 'ʬ'
	CrabChar        = 'Ж'
	SharkChar       = '◄'
	SharkRightChar  = '►'
	PearlChar       = '•'
	BubbleChar      = 'o'
	BoostChar       = '»'
	ShieldChar      = '◉'
)

// bannerTicks is how long a milestone banner stays on screen.
const bannerTicks = 180

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath points the game at a custom config file. The file is
// loaded and validated immediately so an invalid config aborts startup
// with the loader's error instead of surfacing mid-game. An empty path
// selects the default search order.
func SetConfigPath(path string) error {
	if _, err := config.LoadReef(path); err != nil {
		return err
	}
	configPath = path
	return nil
}

// Game implements the Reef Adventures simulation. All state transitions
// happen in Step; rendering only reads.
type Game struct {
	// World entities
	player   Player
	enemies  []Enemy
	pearls   []Pearl
	powerups []PowerUp
	bubbles  []Bubble

	// Progression
	score int
	level int

	// Game state
	gameOver   bool
	paused     bool
	tickCount  int
	banner     string
	bannerLeft float64

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.ReefConfig
	rules   Rules
	rng     *rand.Rand

	// Minimum screen size guard
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Reef Adventures game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("reef", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "reef"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reef Adventures"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Entry points validate through SetConfigPath before creating a
	// game, so a failure here means the file changed underneath us.
	cfg, err := config.LoadReef(configPath)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	g.cfg = cfg
	g.rules = NewRules(cfg.Scoring)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay RNG

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.banner = ""
	g.bannerLeft = 0

	g.player = Player{
		Pos:    core.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height / 2},
		Size:   cfg.Player.Size,
		Health: cfg.Player.Health,
		Facing: 1,
	}

	g.enemies = g.spawnEnemies(g.level)
	g.pearls = g.spawnPearls(g.level)
	g.powerups = nil
	g.bubbles = nil
}

// Step advances the simulation by dt ticks. dt is measured in 60 Hz
// frames; the platform passes 1.0. A non-positive dt changes nothing
// and returns the current state with no events.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if dt <= 0 || g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	var events []core.Event
	events = append(events, g.updateTimers(dt)...)

	g.movePlayer(dt, in)
	g.handleShooting(in)
	g.moveBubbles(dt)
	for i := range g.enemies {
		g.enemies[i] = AdvanceEnemy(g.enemies[i], dt, g.player.Pos)
	}

	events = append(events, g.resolveCollisions()...)
	g.compactEntities()
	g.maybeSpawnPowerUp()

	events = append(events, g.checkLevelProgression()...)

	if g.player.Health <= 0 {
		g.gameOver = true
		events = append(events, core.Event{
			Kind:  core.EventGameOver,
			Value: g.score,
			Pos:   g.player.Pos,
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// updateTimers counts down the player's power-up, invulnerability and
// shoot cooldown timers, emitting an expiry event when an effect ends.
func (g *Game) updateTimers(dt float64) []core.Event {
	var events []core.Event

	if g.player.BoostLeft > 0 {
		g.player.BoostLeft -= dt
		if g.player.BoostLeft <= 0 {
			g.player.BoostLeft = 0
			events = append(events, core.Event{
				Kind:  core.EventPowerUpExpired,
				Value: int(PowerSpeedBoost),
				Pos:   g.player.Pos,
			})
		}
	}
	if g.player.ShieldLeft > 0 {
		g.player.ShieldLeft -= dt
		if g.player.ShieldLeft <= 0 {
			g.player.ShieldLeft = 0
			events = append(events, core.Event{
				Kind:  core.EventPowerUpExpired,
				Value: int(PowerShield),
				Pos:   g.player.Pos,
			})
		}
	}
	if g.player.InvulnLeft > 0 {
		g.player.InvulnLeft = math.Max(0, g.player.InvulnLeft-dt)
	}
	if g.player.ShootCool > 0 {
		g.player.ShootCool = math.Max(0, g.player.ShootCool-dt)
	}
	if g.bannerLeft > 0 {
		g.bannerLeft = math.Max(0, g.bannerLeft-dt)
		if g.bannerLeft == 0 {
			g.banner = ""
		}
	}

	return events
}

// movePlayer applies directional input, clamped to the world bounds.
func (g *Game) movePlayer(dt float64, in core.InputFrame) {
	mv := in.MoveVector()
	if mv.X == 0 && mv.Y == 0 {
		return
	}

	speed := g.cfg.Player.Speed
	if g.player.BoostActive() {
		speed *= g.cfg.Player.BoostFactor
	}

	g.player.Pos = g.player.Pos.Add(mv.Scale(speed * dt))
	half := g.player.Size / 2
	g.player.Pos.X = core.ClampF(g.player.Pos.X, half, g.cfg.World.Width-half)
	g.player.Pos.Y = core.ClampF(g.player.Pos.Y, half, g.cfg.World.Height-half)

	if mv.X > 0 {
		g.player.Facing = 1
	} else if mv.X < 0 {
		g.player.Facing = -1
	}
}

// handleShooting fires a bubble in the facing direction, subject to the
// shoot cooldown.
func (g *Game) handleShooting(in core.InputFrame) {
	if !in.Has(core.ActionShoot) || g.player.ShootCool > 0 {
		return
	}
	g.player.ShootCool = float64(g.cfg.Player.ShootCooldown)
	g.bubbles = append(g.bubbles, Bubble{
		Pos:    core.Vec2{X: g.player.Pos.X + g.player.Facing*g.player.Size/2, Y: g.player.Pos.Y},
		Size:   g.cfg.Player.BubbleSize,
		VX:     g.player.Facing * g.cfg.Player.BubbleSpeed,
		Active: true,
	})
}

// moveBubbles advances active bubbles and deactivates those that left
// the world.
func (g *Game) moveBubbles(dt float64) {
	for i := range g.bubbles {
		b := &g.bubbles[i]
		if !b.Active {
			continue
		}
		b.Pos.X += b.VX * dt
		if b.Pos.X < -b.Size || b.Pos.X > g.cfg.World.Width+b.Size {
			b.Active = false
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Health:   g.player.Health,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Zone returns the difficulty zone for the current level.
func (g *Game) Zone() Zone {
	return ZoneFor(g.level)
}
