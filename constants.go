package main

const (
	ScreenWidth  = 1024.0
	ScreenHeight = 768.0

	PlayerSpeed     = 300.0 // pixels/s
	PlayerBaseWidth = 50.0
	PlayerHeight    = 20.0
	PlayerY         = ScreenHeight - 50.0

	BulletSpeed = 700.0 // pixels/s, upward

	InitialEnemySpeed    = 150.0 // pixels/s at wave 1
	SpeedIncreasePerWave = 20.0
	EnemyEdgeMargin      = 20.0  // reversal triggers past this margin
	DescentStep          = 40.0  // pixels dropped on each reversal
	DefenderLine         = 100.0 // distance from bottom edge

	CollisionRadius = 20.0

	BaseWidthIncrease = 20.0 // player base growth per cleared wave

	TextScrollSpeed       = 100.0 // banner pixels/s
	BackgroundScrollSpeed = 50.0  // parallax pixels/s

	MaxNameLen = 20
)

// TickRate matches the ebiten default TPS; the core is stepped with a
// fixed dt derived from it.
const (
	TickRate = 60
	TickDT   = 1.0 / float64(TickRate)
)
