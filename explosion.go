package main

const (
	ExplosionFrames        = 3
	ExplosionFrameDuration = 0.1 // seconds per frame
)

// Explosion is a short stop-motion animation left behind by a destroyed
// enemy. It carries no gameplay weight; the renderer draws whatever frame
// it is on and the game drops it once finished.
type Explosion struct {
	X, Y       float64
	Frame      int
	Finished   bool
	frameTimer float64
}

// NewExplosion creates an explosion at the given position
func NewExplosion(x, y float64) *Explosion {
	return &Explosion{X: x, Y: y}
}

// Update advances the animation one tick
func (e *Explosion) Update(dt float64) {
	if e.Finished {
		return
	}
	e.frameTimer += dt
	if e.frameTimer >= ExplosionFrameDuration {
		e.frameTimer -= ExplosionFrameDuration
		e.Frame++
		if e.Frame >= ExplosionFrames {
			e.Frame = ExplosionFrames - 1
			e.Finished = true
		}
	}
}

// ToState converts to protocol state
func (e *Explosion) ToState() ExplosionState {
	return ExplosionState{
		X:     round1(e.X),
		Y:     round1(e.Y),
		Frame: e.Frame,
	}
}
