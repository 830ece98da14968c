package main

import (
	"testing"
)

func TestSpeedForWave(t *testing.T) {
	cases := []struct {
		wave int
		want float64
	}{
		{1, 150},
		{2, 170},
		{5, 230},
		{10, 330},
	}
	for _, c := range cases {
		if got := SpeedForWave(c.wave); got != c.want {
			t.Errorf("wave %d: expected speed %f, got %f", c.wave, c.want, got)
		}
	}
}

func TestFormationReversesAtEdge(t *testing.T) {
	f := NewFormation()
	e := NewEnemy(1000, 100, EnemyStandard)
	enemies := []*Enemy{e}

	descended := false
	for i := 0; i < 10; i++ {
		if f.Advance(enemies, 1, TickDT) {
			descended = true
			break
		}
	}
	if !descended {
		t.Fatal("formation should descend after reaching the right edge")
	}
	if f.Direction != -1 {
		t.Errorf("direction should flip to -1, got %f", f.Direction)
	}
	if e.Y != 140 {
		t.Errorf("enemy should descend by %f to 140, got %f", DescentStep, e.Y)
	}
}

func TestFormationDescendsOncePerContact(t *testing.T) {
	f := NewFormation()
	// Start deep past the edge so AtEdge stays true for several ticks
	// after the reversal while the enemy crawls back inside.
	e := NewEnemy(1015, 100, EnemyStandard)
	enemies := []*Enemy{e}

	descents := 0
	for i := 0; i < 30; i++ {
		if f.Advance(enemies, 1, TickDT) {
			descents++
		}
	}
	if descents != 1 {
		t.Errorf("one edge contact should cause exactly one descent, got %d", descents)
	}
}

func TestFormationDescendsAllEnemies(t *testing.T) {
	f := NewFormation()
	edge := NewEnemy(1003, 100, EnemyStandard)
	middle := NewEnemy(500, 150, EnemyStandard)
	dead := NewEnemy(500, 200, EnemyStandard)
	dead.Alive = false
	enemies := []*Enemy{edge, middle, dead}

	for i := 0; i < 10; i++ {
		if f.Advance(enemies, 1, TickDT) {
			break
		}
	}
	if middle.Y != 190 {
		t.Errorf("non-edge enemy should also descend, got y=%f", middle.Y)
	}
	if dead.Y != 200 {
		t.Errorf("dead enemy should not move, got y=%f", dead.Y)
	}
}

func TestFormationOrderIndependence(t *testing.T) {
	run := func(order []int) (float64, float64) {
		f := NewFormation()
		base := []*Enemy{
			NewEnemy(990, 100, EnemyStandard),
			NewEnemy(400, 100, EnemyStandard),
			NewEnemy(100, 100, EnemyStandard),
		}
		enemies := make([]*Enemy, len(order))
		for i, idx := range order {
			enemies[i] = base[idx]
		}
		for i := 0; i < 60; i++ {
			f.Advance(enemies, 1, TickDT)
		}
		return base[1].X, base[1].Y
	}

	x1, y1 := run([]int{0, 1, 2})
	x2, y2 := run([]int{2, 1, 0})
	if x1 != x2 || y1 != y2 {
		t.Errorf("enemy order changed the outcome: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
	}
}

func TestEnemyYNeverDecreases(t *testing.T) {
	f := NewFormation()
	enemies := GenerateWave(8) // includes swoopers

	prev := make(map[string]float64)
	for _, e := range enemies {
		prev[e.ID] = e.Y
	}
	for i := 0; i < 600; i++ {
		f.Advance(enemies, 8, TickDT)
		for _, e := range enemies {
			if e.Y < prev[e.ID] {
				t.Fatalf("enemy %s moved up: %f -> %f", e.ID, prev[e.ID], e.Y)
			}
			prev[e.ID] = e.Y
		}
	}
}

func TestBreached(t *testing.T) {
	safe := NewEnemy(500, 100, EnemyStandard)
	if Breached([]*Enemy{safe}) {
		t.Error("enemy at y=100 should not breach")
	}

	deep := NewEnemy(500, ScreenHeight-DefenderLine+1, EnemyStandard)
	if !Breached([]*Enemy{safe, deep}) {
		t.Error("enemy past the defender line should breach")
	}

	deep.Alive = false
	if Breached([]*Enemy{safe, deep}) {
		t.Error("dead enemy should not breach")
	}
}

func TestAliveCount(t *testing.T) {
	enemies := GenerateWave(1)
	if AliveCount(enemies) != 30 {
		t.Errorf("expected 30 alive, got %d", AliveCount(enemies))
	}
	enemies[0].Alive = false
	enemies[1].Alive = false
	if AliveCount(enemies) != 28 {
		t.Errorf("expected 28 alive, got %d", AliveCount(enemies))
	}
}
