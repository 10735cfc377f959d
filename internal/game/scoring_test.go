package game

import (
	"testing"

	"github.com/gavrojas/reef-adventures-game/internal/config"
)

func testRules() Rules {
	return NewRules(config.DefaultReefConfig().Scoring)
}

func TestPearlValue(t *testing.T) {
	r := testRules()

	tests := []struct {
		level int
		want  int
	}{
		{1, 27},
		{5, 35},
		{10, 45},
	}

	for _, tt := range tests {
		if got := r.PearlValue(tt.level); got != tt.want {
			t.Errorf("PearlValue(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestEnemyValue(t *testing.T) {
	r := testRules()

	tests := []struct {
		level int
		want  int
	}{
		{1, 80},
		{5, 100},
		{10, 125},
	}

	for _, tt := range tests {
		if got := r.EnemyValue(tt.level); got != tt.want {
			t.Errorf("EnemyValue(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 50},
		{3, 280},
		{10, 3200},
	}

	for _, tt := range tests {
		if got := LevelThreshold(tt.level); got != tt.want {
			t.Errorf("LevelThreshold(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelThresholdMonotonic(t *testing.T) {
	prev := LevelThreshold(1)
	for level := 2; level <= 100; level++ {
		cur := LevelThreshold(level)
		if cur <= prev {
			t.Fatalf("LevelThreshold(%d) = %d, not greater than LevelThreshold(%d) = %d",
				level, cur, level-1, prev)
		}
		prev = cur
	}
}

func TestLevelThresholdGapsGrow(t *testing.T) {
	// Gaps between consecutive thresholds never shrink through the
	// tabulated range.
	prevGap := LevelThreshold(2) - LevelThreshold(1)
	for level := 3; level <= 30; level++ {
		gap := LevelThreshold(level) - LevelThreshold(level-1)
		if gap < prevGap {
			t.Fatalf("gap at level %d is %d, smaller than previous gap %d", level, gap, prevGap)
		}
		prevGap = gap
	}
}

func TestLevelThresholdTail(t *testing.T) {
	// Beyond the table the curve is linear.
	for level := 31; level <= 40; level++ {
		got := LevelThreshold(level) - LevelThreshold(level-1)
		if got != thresholdTailStep {
			t.Errorf("tail gap at level %d = %d, want %d", level, got, thresholdTailStep)
		}
	}
}

func TestInvalidLevelPanics(t *testing.T) {
	r := testRules()

	for _, level := range []int{0, -1, -100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("PearlValue(%d) did not panic", level)
				}
			}()
			r.PearlValue(level)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LevelThreshold(%d) did not panic", level)
				}
			}()
			LevelThreshold(level)
		}()
	}
}

func TestZoneFor(t *testing.T) {
	tests := []struct {
		level int
		want  Zone
	}{
		{1, ZoneReef},
		{9, ZoneReef},
		{10, ZoneAdvanced},
		{19, ZoneAdvanced},
		{20, ZoneExpert},
		{29, ZoneExpert},
		{30, ZoneMaster},
		{100, ZoneMaster},
	}

	for _, tt := range tests {
		if got := ZoneFor(tt.level); got != tt.want {
			t.Errorf("ZoneFor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMilestones(t *testing.T) {
	for _, level := range []int{10, 20, 30, 50, 110} {
		if !IsMilestone(level) {
			t.Errorf("IsMilestone(%d) = false, want true", level)
		}
		if MilestoneMessage(level) == "" {
			t.Errorf("MilestoneMessage(%d) is empty", level)
		}
	}
	for _, level := range []int{1, 5, 9, 11, 25} {
		if IsMilestone(level) {
			t.Errorf("IsMilestone(%d) = true, want false", level)
		}
	}
}
