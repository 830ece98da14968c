package main

// Formation drives the whole enemy set as one rigid body: a shared
// horizontal direction, edge reversal with a fixed descent, and a latch so
// one edge contact causes exactly one descent no matter how many enemies
// sit past the boundary.
type Formation struct {
	Direction float64 // +1 right, -1 left
	movedDown bool    // latch: already reversed for the current edge contact
}

// NewFormation creates a formation moving right
func NewFormation() *Formation {
	return &Formation{Direction: 1}
}

// Reset restores the wave-start movement state
func (f *Formation) Reset() {
	f.Direction = 1
	f.movedDown = false
}

// SpeedForWave returns the shared horizontal speed: 150 px/s at wave 1,
// +20 px/s per wave after that.
func SpeedForWave(wave int) float64 {
	return InitialEnemySpeed + SpeedIncreasePerWave*float64(wave-1)
}

// Advance moves every enemy one tick, then handles edge reversal. When any
// enemy has crossed a screen boundary and the latch is clear, the shared
// direction flips and every enemy descends by DescentStep — once for the
// whole formation, not once per crossing enemy. Returns true if the
// formation descended this tick.
func (f *Formation) Advance(enemies []*Enemy, wave int, dt float64) bool {
	speed := SpeedForWave(wave)

	reachedEdge := false
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		e.Advance(f.Direction, speed, dt)
		if e.AtEdge() {
			reachedEdge = true
		}
	}

	if reachedEdge && !f.movedDown {
		f.Direction = -f.Direction
		f.movedDown = true
		for _, e := range enemies {
			if e.Alive {
				e.MoveDown(DescentStep)
			}
		}
		return true
	}
	if !reachedEdge {
		f.movedDown = false
	}
	return false
}

// Breached reports whether any alive enemy is past the defender line.
// Called every tick, independent of reversal or collision results.
func Breached(enemies []*Enemy) bool {
	for _, e := range enemies {
		if e.Alive && e.BreachedDefenderLine() {
			return true
		}
	}
	return false
}

// AliveCount returns the number of alive enemies; zero means wave clear
func AliveCount(enemies []*Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
