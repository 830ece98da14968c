package main

import "math"

// EnemyType identifies the enemy variant
type EnemyType int

const (
	EnemyStandard EnemyType = 0
	EnemyFast     EnemyType = 1
	EnemyTank     EnemyType = 2
	EnemySwooper  EnemyType = 3
)

// EnemyTypeDef holds the stats for an enemy type
type EnemyTypeDef struct {
	Name     string
	HP       int
	Points   int
	SpeedMul float64
	SwayAmp  float64 // horizontal sway amplitude (Swooper only)
	SwayFreq float64 // sway radians/s
}

var EnemyTypes = [4]EnemyTypeDef{
	// Standard: the baseline invader
	{Name: "standard", HP: 1, Points: 10, SpeedMul: 1.0},
	// Fast: quick and fragile
	{Name: "fast", HP: 1, Points: 20, SpeedMul: 1.5},
	// Tank: slow, soaks three hits
	{Name: "tank", HP: 3, Points: 30, SpeedMul: 0.7},
	// Swooper: sways side to side while descending with the formation
	{Name: "swooper", HP: 2, Points: 50, SpeedMul: 1.2, SwayAmp: 30.0, SwayFreq: 2.0},
}

// GetEnemyTypeDef returns the definition for an enemy type
func GetEnemyTypeDef(t EnemyType) EnemyTypeDef {
	if t < 0 || int(t) >= len(EnemyTypes) {
		return EnemyTypes[EnemyStandard]
	}
	return EnemyTypes[t]
}

// Enemy is one member of the wave formation. Horizontal movement is driven
// by the formation's shared direction; descent only ever adds to Y.
type Enemy struct {
	ID    string
	X, Y  float64
	Type  EnemyType
	HP    int
	Alive bool

	SwayPhase float64 // fixed at generation, keyed by formation slot
	swayT     float64 // accumulated sway time
}

// NewEnemy creates an alive enemy of the given type at a position
func NewEnemy(x, y float64, t EnemyType) *Enemy {
	return &Enemy{
		ID:    GenerateID(3),
		X:     x,
		Y:     y,
		Type:  t,
		HP:    GetEnemyTypeDef(t).HP,
		Alive: true,
	}
}

// Advance moves the enemy horizontally one tick. direction and speed are
// shared across the formation; the per-type multiplier and the Swooper sway
// are the only individual contributions.
func (e *Enemy) Advance(direction, speed, dt float64) {
	def := GetEnemyTypeDef(e.Type)
	e.X += direction * speed * def.SpeedMul * dt

	if def.SwayAmp > 0 {
		prev := math.Sin(e.SwayPhase+e.swayT*def.SwayFreq) * def.SwayAmp
		e.swayT += dt
		next := math.Sin(e.SwayPhase+e.swayT*def.SwayFreq) * def.SwayAmp
		e.X += next - prev
	}
}

// MoveDown applies a formation descent step
func (e *Enemy) MoveDown(step float64) {
	e.Y += step
}

// AtEdge reports whether the enemy is past a horizontal screen margin
func (e *Enemy) AtEdge() bool {
	return e.X < EnemyEdgeMargin || e.X > ScreenWidth-EnemyEdgeMargin
}

// BreachedDefenderLine reports the game-over condition for this enemy
func (e *Enemy) BreachedDefenderLine() bool {
	return e.Y > ScreenHeight-DefenderLine
}

// TakeDamage reduces HP and returns true if the enemy was destroyed by it
func (e *Enemy) TakeDamage(dmg int) bool {
	if !e.Alive {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
		return true
	}
	return false
}

// Points returns the score value awarded when this enemy is destroyed
func (e *Enemy) Points() int {
	return GetEnemyTypeDef(e.Type).Points
}

// ToState converts to protocol state
func (e *Enemy) ToState() EnemyState {
	return EnemyState{
		ID:   e.ID,
		X:    round1(e.X),
		Y:    round1(e.Y),
		Type: int(e.Type),
		HP:   e.HP,
	}
}
