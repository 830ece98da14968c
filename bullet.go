package main

// Bullet is a player shot moving straight up at a fixed speed. It expires
// when it leaves the screen; no collision is needed for that.
type Bullet struct {
	ID    string
	X, Y  float64
	Alive bool
}

// NewBullet creates a bullet at the given position
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		ID:    GenerateID(3),
		X:     x,
		Y:     y,
		Alive: true,
	}
}

// Update moves the bullet one tick and expires it off-screen
func (b *Bullet) Update(dt float64) {
	if !b.Alive {
		return
	}
	b.Y -= BulletSpeed * dt
	if b.OutOfBounds() {
		b.Alive = false
	}
}

// OutOfBounds reports whether the bullet has left the visible screen
func (b *Bullet) OutOfBounds() bool {
	return b.Y < 0 || b.X < 0 || b.X > ScreenWidth
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		ID: b.ID,
		X:  round1(b.X),
		Y:  round1(b.Y),
	}
}
