package main

import (
	"testing"
)

func TestCheckCollision(t *testing.T) {
	if !CheckCollision(100, 100, 100, 100) {
		t.Error("dead center should collide")
	}
	if !CheckCollision(100, 100, 100+CollisionRadius, 100) {
		t.Error("exactly at the radius should collide")
	}
	if CheckCollision(100, 100, 100+CollisionRadius+0.1, 100) {
		t.Error("just past the radius should not collide")
	}
	if CheckCollision(100, 100, 115, 115) {
		t.Error("diagonal 21.2 px apart should not collide")
	}
}

func TestResolveCollisionsHit(t *testing.T) {
	var grid SpatialGrid
	e := NewEnemy(500, 300, EnemyStandard)
	b := NewBullet(505, 305)

	delta, destroyed := ResolveCollisions(&grid, []*Bullet{b}, []*Enemy{e})
	if delta != 10 {
		t.Errorf("expected 10 points, got %d", delta)
	}
	if len(destroyed) != 1 {
		t.Fatalf("expected 1 destroyed enemy, got %d", len(destroyed))
	}
	if e.Alive {
		t.Error("enemy should be dead")
	}
	if b.Alive {
		t.Error("bullet should be consumed")
	}
}

func TestResolveCollisionsMiss(t *testing.T) {
	var grid SpatialGrid
	e := NewEnemy(500, 300, EnemyStandard)
	b := NewBullet(500, 350)

	delta, destroyed := ResolveCollisions(&grid, []*Bullet{b}, []*Enemy{e})
	if delta != 0 || len(destroyed) != 0 {
		t.Errorf("expected no hit, got delta=%d destroyed=%d", delta, len(destroyed))
	}
	if !b.Alive || !e.Alive {
		t.Error("miss should leave both alive")
	}
}

func TestTankNeedsThreeHits(t *testing.T) {
	var grid SpatialGrid
	e := NewEnemy(500, 300, EnemyTank)
	bullets := []*Bullet{
		NewBullet(500, 300),
		NewBullet(501, 300),
		NewBullet(502, 300),
	}

	delta, destroyed := ResolveCollisions(&grid, bullets, []*Enemy{e})
	if delta != 30 {
		t.Errorf("tank should award its points exactly once, got %d", delta)
	}
	if len(destroyed) != 1 {
		t.Errorf("tank should appear once in destroyed, got %d", len(destroyed))
	}
	for i, b := range bullets {
		if b.Alive {
			t.Errorf("bullet %d should be consumed", i)
		}
	}
	if e.Alive {
		t.Error("tank should be dead after three hits")
	}
}

func TestTankSurvivesPartialDamage(t *testing.T) {
	var grid SpatialGrid
	e := NewEnemy(500, 300, EnemyTank)
	b := NewBullet(500, 300)

	delta, _ := ResolveCollisions(&grid, []*Bullet{b}, []*Enemy{e})
	if delta != 0 {
		t.Errorf("damaged but surviving tank should award nothing, got %d", delta)
	}
	if !e.Alive {
		t.Error("tank should survive one hit")
	}
	if e.HP != 2 {
		t.Errorf("tank HP should drop to 2, got %d", e.HP)
	}
	if b.Alive {
		t.Error("bullet should still be consumed on a non-lethal hit")
	}
}

func TestOneBulletOneEnemy(t *testing.T) {
	var grid SpatialGrid
	// Two overlapping enemies, one bullet: only one dies
	a := NewEnemy(500, 300, EnemyStandard)
	b := NewEnemy(505, 300, EnemyStandard)
	bullet := NewBullet(502, 300)

	delta, destroyed := ResolveCollisions(&grid, []*Bullet{bullet}, []*Enemy{a, b})
	if delta != 10 {
		t.Errorf("one bullet should award one kill, got %d", delta)
	}
	if len(destroyed) != 1 {
		t.Errorf("expected 1 destroyed, got %d", len(destroyed))
	}
	if a.Alive == b.Alive {
		t.Error("exactly one of the overlapping enemies should die")
	}
}

func TestDeadEnemiesIgnored(t *testing.T) {
	var grid SpatialGrid
	e := NewEnemy(500, 300, EnemyStandard)
	e.Alive = false
	b := NewBullet(500, 300)

	delta, destroyed := ResolveCollisions(&grid, []*Bullet{b}, []*Enemy{e})
	if delta != 0 || len(destroyed) != 0 {
		t.Error("dead enemies should not be hit")
	}
	if !b.Alive {
		t.Error("bullet should pass through a dead enemy")
	}
}

func TestSpatialGridQuery(t *testing.T) {
	var grid SpatialGrid
	grid.InsertCircle(100, 100, CollisionRadius, 0)
	grid.InsertCircle(900, 700, CollisionRadius, 1)

	buf := grid.QueryBuf(105, 105, CollisionRadius, nil)
	found := false
	for _, idx := range buf {
		if idx == 0 {
			found = true
		}
		if idx == 1 {
			t.Error("far entity should not appear in a local query")
		}
	}
	if !found {
		t.Error("nearby entity missing from query")
	}
}
