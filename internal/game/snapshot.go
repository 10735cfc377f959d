package game

import "math"

// Snapshot contains the complete game state for replay and save.
// Uses primitive types only for stable serialization. Float fields
// are stored as IEEE 754 bit patterns so equality is exact.
type Snapshot struct {
	Tick  uint64
	Score int
	Level int

	PlayerX    uint64
	PlayerY    uint64
	Health     int
	Facing     uint64
	BoostLeft  uint64
	ShieldLeft uint64
	InvulnLeft uint64
	ShootCool  uint64
	GameOver   bool
	Paused     bool

	// Enemy state (each enemy is 12 values, floats as bits)
	EnemyCount int
	EnemyData  []uint64

	// Pearl state (each pearl is 4 values)
	PearlCount int
	PearlData  []uint64

	// Power-up state (each power-up is 3 values)
	PowerUpCount int
	PowerUpData  []uint64

	// Bubble state (each bubble is 4 values)
	BubbleCount int
	BubbleData  []uint64
}

func fbits(f float64) uint64 { return math.Float64bits(f) }

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]uint64, 0, len(g.enemies)*12)
	for i := range g.enemies {
		e := &g.enemies[i]
		enemyData = append(enemyData,
			uint64(e.Variant), //#nosec G115 -- small enum
			fbits(e.Pos.X), fbits(e.Pos.Y),
			fbits(e.Base.X), fbits(e.Base.Y),
			boolBit(e.Alive),
			fbits(e.Phase), fbits(e.Dir),
			fbits(e.PatrolMin), fbits(e.PatrolMax),
			fbits(e.Speed),
			uint64(e.Points), //#nosec G115 -- points are positive
		)
	}

	pearlData := make([]uint64, 0, len(g.pearls)*4)
	for i := range g.pearls {
		p := &g.pearls[i]
		pearlData = append(pearlData,
			fbits(p.Pos.X), fbits(p.Pos.Y),
			uint64(p.Points), //#nosec G115 -- points are positive
			boolBit(p.Collected),
		)
	}

	powerUpData := make([]uint64, 0, len(g.powerups)*3)
	for i := range g.powerups {
		p := &g.powerups[i]
		powerUpData = append(powerUpData,
			uint64(p.Kind), //#nosec G115 -- small enum
			fbits(p.Pos.X), fbits(p.Pos.Y),
		)
	}

	bubbleData := make([]uint64, 0, len(g.bubbles)*4)
	for i := range g.bubbles {
		b := &g.bubbles[i]
		bubbleData = append(bubbleData,
			fbits(b.Pos.X), fbits(b.Pos.Y),
			fbits(b.VX),
			boolBit(b.Active),
		)
	}

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score: g.score,
		Level: g.level,

		PlayerX:    fbits(g.player.Pos.X),
		PlayerY:    fbits(g.player.Pos.Y),
		Health:     g.player.Health,
		Facing:     fbits(g.player.Facing),
		BoostLeft:  fbits(g.player.BoostLeft),
		ShieldLeft: fbits(g.player.ShieldLeft),
		InvulnLeft: fbits(g.player.InvulnLeft),
		ShootCool:  fbits(g.player.ShootCool),
		GameOver:   g.gameOver,
		Paused:     g.paused,

		EnemyCount:   len(g.enemies),
		EnemyData:    enemyData,
		PearlCount:   len(g.pearls),
		PearlData:    pearlData,
		PowerUpCount: len(g.powerups),
		PowerUpData:  powerUpData,
		BubbleCount:  len(g.bubbles),
		BubbleData:   bubbleData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + snap.Facing
	h = h*31 + snap.BoostLeft
	h = h*31 + snap.ShieldLeft
	h = h*31 + snap.InvulnLeft
	h = h*31 + snap.ShootCool
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.PearlData {
		h = h*31 + v
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + v
	}
	for _, v := range snap.BubbleData {
		h = h*31 + v
	}

	return h
}
