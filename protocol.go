package main

import "encoding/json"

// Remote client -> server message types
const (
	MsgSpectate = "spectate"
	MsgControl  = "control" // phone controller attach
	MsgInput    = "input"
)

// Server -> remote client message types
const (
	MsgWelcome   = "welcome"
	MsgState     = "state" // binary, msgpack-encoded FrameState
	MsgEvent     = "event"
	MsgControlOK = "control_ok"
	MsgError     = "error"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids
// double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ControlMsg is sent by a phone controller to take over the player.
// The token comes from the join URL minted at startup.
type ControlMsg struct {
	Token string `json:"token"`
}

// RemoteInput carries controller key state, sent on every change
type RemoteInput struct {
	Left    bool `json:"l"`
	Right   bool `json:"r"`
	Fire    bool `json:"f"`
	Confirm bool `json:"c"`
	Restart bool `json:"rs"`
}

// WelcomeMsg tells a remote client what it connected as
type WelcomeMsg struct {
	Mode string `json:"mode"` // "spectator" or "controller"
}

// ErrorMsg sends an error to a remote client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// PlayerState is the defender part of a frame snapshot
type PlayerState struct {
	X     float64 `json:"x" msgpack:"x"`
	Width float64 `json:"w" msgpack:"w"`
	Shots int     `json:"s" msgpack:"s"`
}

// EnemyState is broadcast per alive enemy
type EnemyState struct {
	ID   string  `json:"id" msgpack:"id"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Type int     `json:"t" msgpack:"t"`
	HP   int     `json:"hp" msgpack:"hp"`
}

// BulletState is broadcast per live bullet
type BulletState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// ExplosionState is broadcast per running explosion animation
type ExplosionState struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Frame int     `json:"f" msgpack:"f"`
}

// FrameState is the read-only snapshot of one simulated frame. The
// renderer and remote spectators consume it by value; nothing in it aliases
// core state.
type FrameState struct {
	Tick       uint64           `json:"tick" msgpack:"tk"`
	Phase      int              `json:"phase" msgpack:"ph"`
	Wave       int              `json:"wave" msgpack:"wv"`
	Score      int              `json:"score" msgpack:"sc"`
	Name       string           `json:"name" msgpack:"n"`
	Player     PlayerState      `json:"player" msgpack:"p"`
	Enemies    []EnemyState     `json:"enemies" msgpack:"e"`
	Bullets    []BulletState    `json:"bullets" msgpack:"b"`
	Explosions []ExplosionState `json:"explosions" msgpack:"x"`
	ScrollX    float64          `json:"scroll_x" msgpack:"sx"`
	BannerX    float64          `json:"banner_x" msgpack:"bx"`
}
