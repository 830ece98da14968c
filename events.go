package main

// Event kinds fired by the core. The presentation side (audio, remote
// spectators) subscribes through EventSink; the core never knows how an
// event is drawn or sounded.
const (
	EvBulletFired    = "bullet_fired"
	EvEnemyDestroyed = "enemy_destroyed"
	EvWaveCleared    = "wave_cleared"
	EvGameOver       = "game_over"
)

// Event is a discrete gameplay occurrence
type Event struct {
	Kind      string  `json:"kind" msgpack:"k"`
	X         float64 `json:"x,omitempty" msgpack:"x,omitempty"`
	Y         float64 `json:"y,omitempty" msgpack:"y,omitempty"`
	EnemyType int     `json:"type,omitempty" msgpack:"t,omitempty"`
	Points    int     `json:"points,omitempty" msgpack:"p,omitempty"`
	Bullets   int     `json:"bullets,omitempty" msgpack:"b,omitempty"`
	Wave      int     `json:"wave,omitempty" msgpack:"w,omitempty"`
	Score     int     `json:"score,omitempty" msgpack:"s,omitempty"`
}

// EventSink receives core events
type EventSink interface {
	HandleEvent(ev Event)
}
