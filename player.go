package main

// Player is the defender at the bottom of the screen. It widens and gains
// an extra simultaneous shot after each cleared wave.
type Player struct {
	X              float64
	BaseWidth      float64
	AvailableShots int
}

// NewPlayer creates a player at the default starting position
func NewPlayer() *Player {
	return &Player{
		X:              ScreenWidth / 2,
		BaseWidth:      PlayerBaseWidth,
		AvailableShots: 1,
	}
}

// MoveLeft moves the player left one tick
func (p *Player) MoveLeft(dt float64) {
	p.X -= PlayerSpeed * dt
	p.clamp()
}

// MoveRight moves the player right one tick
func (p *Player) MoveRight(dt float64) {
	p.X += PlayerSpeed * dt
	p.clamp()
}

func (p *Player) clamp() {
	p.X = Clamp(p.X, p.BaseWidth/2, ScreenWidth-p.BaseWidth/2)
}

// Shoot returns a volley of bullets spread evenly across the base width,
// one per available shot.
func (p *Player) Shoot() []*Bullet {
	bullets := make([]*Bullet, 0, p.AvailableShots)
	offset := p.BaseWidth / float64(p.AvailableShots+1)
	for i := 0; i < p.AvailableShots; i++ {
		x := p.X - p.BaseWidth/2 + offset*float64(i+1)
		bullets = append(bullets, NewBullet(x, PlayerY))
	}
	return bullets
}

// Upgrade is applied on wave clear: wider base, one more shot per volley
func (p *Player) Upgrade() {
	p.AvailableShots++
	p.BaseWidth += BaseWidthIncrease
	p.clamp()
}

// Reset restores the player to its wave-1 state
func (p *Player) Reset() {
	p.X = ScreenWidth / 2
	p.BaseWidth = PlayerBaseWidth
	p.AvailableShots = 1
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		X:     round1(p.X),
		Width: round1(p.BaseWidth),
		Shots: p.AvailableShots,
	}
}
