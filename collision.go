package main

// CheckCollision reports a bullet/enemy hit: true when the distance between
// the two centers is within the fixed collision radius.
func CheckCollision(bx, by, ex, ey float64) bool {
	dx := ex - bx
	dy := ey - by
	return dx*dx+dy*dy <= CollisionRadius*CollisionRadius
}

// ResolveCollisions pairs alive bullets against alive enemies. Every hit
// consumes the bullet; the enemy's HP decrement and the destroyed check are
// applied before the next pairing, so an enemy's points are awarded exactly
// once even when several bullets reach it in the same tick.
//
// Returns the score delta and the enemies destroyed this tick.
func ResolveCollisions(grid *SpatialGrid, bullets []*Bullet, enemies []*Enemy) (int, []*Enemy) {
	grid.Clear()
	for i, e := range enemies {
		if e.Alive {
			grid.InsertCircle(e.X, e.Y, CollisionRadius, i)
		}
	}

	scoreDelta := 0
	var destroyed []*Enemy
	var buf []int

	for _, b := range bullets {
		if !b.Alive {
			continue
		}
		buf = grid.QueryBuf(b.X, b.Y, CollisionRadius, buf[:0])
		for _, idx := range buf {
			e := enemies[idx]
			if !e.Alive {
				continue
			}
			if !CheckCollision(b.X, b.Y, e.X, e.Y) {
				continue
			}
			b.Alive = false
			if e.TakeDamage(1) {
				scoreDelta += e.Points()
				destroyed = append(destroyed, e)
			}
			break
		}
	}

	return scoreDelta, destroyed
}
