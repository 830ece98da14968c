package main

import (
	"log"
	"unicode"
)

// Phase is the top-level game state
type Phase int

const (
	PhaseMenu     Phase = 0
	PhasePlaying  Phase = 1
	PhaseGameOver Phase = 2
)

// Input is the per-tick input sample the core consumes. Left/Right are
// level signals, the rest are edges.
type Input struct {
	Left      bool
	Right     bool
	Fire      bool
	Confirm   bool
	Restart   bool
	Backspace bool
	Chars     []rune
}

// Game is the single-threaded simulation core: entities, the formation
// rule, scoring, and the Menu -> Playing -> GameOver cycle. It owns the
// scroll counters and hands them to the renderer by value in FrameState.
type Game struct {
	phase      Phase
	player     *Player
	bullets    []*Bullet
	enemies    []*Enemy
	formation  *Formation
	explosions []*Explosion
	grid       SpatialGrid

	wave       int
	score      int
	playerName string
	scoreSaved bool
	elapsed    float64 // seconds in the current Playing run
	tick       uint64

	scrollX   float64 // parallax background offset
	bannerX   float64
	bannerDir float64

	scores    *HighscoreStore
	archive   *DB        // optional run archive, nil when disabled
	analytics *Analytics // optional, nil when disabled
	sinks     []EventSink
}

// NewGame creates a game in the menu phase
func NewGame(scores *HighscoreStore) *Game {
	g := &Game{
		phase:     PhaseMenu,
		player:    NewPlayer(),
		formation: NewFormation(),
		wave:      1,
		bannerX:   ScreenWidth,
		bannerDir: -1,
		scores:    scores,
	}
	g.enemies = GenerateWave(1)
	return g
}

// SetArchive attaches the optional sqlite run archive
func (g *Game) SetArchive(db *DB, analytics *Analytics) {
	g.archive = db
	g.analytics = analytics
}

// AddSink subscribes a presentation-side event consumer
func (g *Game) AddSink(s EventSink) {
	g.sinks = append(g.sinks, s)
}

func (g *Game) emit(ev Event) {
	for _, s := range g.sinks {
		s.HandleEvent(ev)
	}
}

// Phase returns the current top-level state
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current session score
func (g *Game) Score() int { return g.score }

// Wave returns the current wave number
func (g *Game) Wave() int { return g.wave }

// PlayerName returns the name entered in the menu
func (g *Game) PlayerName() string { return g.playerName }

// SetPlayerName prefills the menu name field, truncated to the cap
func (g *Game) SetPlayerName(name string) {
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		runes = runes[:MaxNameLen]
	}
	g.playerName = string(runes)
}

// Step advances the simulation one tick. All per-tick work completes
// synchronously before the caller renders.
func (g *Game) Step(dt float64, in Input) {
	g.tick++
	g.updateScroll(dt)

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		g.stepPlaying(dt, in)
	case PhaseGameOver:
		if in.Restart {
			g.returnToMenu()
		}
	}
}

func (g *Game) updateScroll(dt float64) {
	g.scrollX -= BackgroundScrollSpeed * dt

	g.bannerX += g.bannerDir * TextScrollSpeed * dt
	if g.bannerX <= 0 && g.bannerDir < 0 {
		g.bannerDir = 1
	} else if g.bannerX >= ScreenWidth && g.bannerDir > 0 {
		g.bannerDir = -1
	}
}

func (g *Game) stepMenu(in Input) {
	for _, r := range in.Chars {
		if (unicode.IsLetter(r) || unicode.IsDigit(r)) && len([]rune(g.playerName)) < MaxNameLen {
			g.playerName += string(r)
		}
	}
	if in.Backspace && len(g.playerName) > 0 {
		runes := []rune(g.playerName)
		g.playerName = string(runes[:len(runes)-1])
	}
	if in.Confirm && g.playerName != "" {
		g.startGame()
	}
}

func (g *Game) startGame() {
	g.phase = PhasePlaying
	g.score = 0
	g.wave = 1
	g.elapsed = 0
	g.scoreSaved = false
	g.player.Reset()
	g.bullets = nil
	g.explosions = nil
	g.formation.Reset()
	g.enemies = GenerateWave(1)
	if g.analytics != nil {
		g.analytics.Track(EvtSessionStart, g.playerName, "")
	}
	log.Printf("session start: player %q", g.playerName)
}

func (g *Game) stepPlaying(dt float64, in Input) {
	g.elapsed += dt

	// Player movement
	if in.Left {
		g.player.MoveLeft(dt)
	}
	if in.Right {
		g.player.MoveRight(dt)
	}

	// Fire: one volley per fire edge, one bullet per available shot
	if in.Fire {
		volley := g.player.Shoot()
		g.bullets = append(g.bullets, volley...)
		g.emit(Event{Kind: EvBulletFired, Bullets: len(volley)})
	}

	// Bullets
	for _, b := range g.bullets {
		b.Update(dt)
	}

	// Formation
	g.formation.Advance(g.enemies, g.wave, dt)

	// Collisions
	delta, destroyed := ResolveCollisions(&g.grid, g.bullets, g.enemies)
	if delta > 0 {
		g.score += delta
		for _, e := range destroyed {
			g.explosions = append(g.explosions, NewExplosion(e.X, e.Y))
			g.emit(Event{Kind: EvEnemyDestroyed, X: e.X, Y: e.Y, EnemyType: int(e.Type), Points: e.Points()})
			if g.analytics != nil {
				g.analytics.Track(EvtEnemyDestroyed, g.playerName, intJSON("type", int(e.Type)))
			}
		}
	}

	// Compact expired bullets and dead enemies
	g.bullets = filterBullets(g.bullets)
	g.enemies = filterEnemies(g.enemies)

	// Explosions
	for _, ex := range g.explosions {
		ex.Update(dt)
	}
	g.explosions = filterExplosions(g.explosions)

	// Defender line: checked every tick, regardless of collision results
	if Breached(g.enemies) {
		g.endGame()
		return
	}

	// Wave clear: alive-count is the sole criterion
	if AliveCount(g.enemies) == 0 {
		g.emit(Event{Kind: EvWaveCleared, Wave: g.wave, Score: g.score})
		if g.analytics != nil {
			g.analytics.Track(EvtWaveCleared, g.playerName, intJSON("wave", g.wave))
		}
		g.wave++
		g.player.Upgrade()
		g.formation.Reset()
		g.enemies = GenerateWave(g.wave)
	}
}

// endGame performs the Playing -> GameOver transition. The score is
// committed to the highscore store exactly once per transition, even if
// the breach condition keeps holding on later ticks.
func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.emit(Event{Kind: EvGameOver, Wave: g.wave, Score: g.score})
	log.Printf("game over: player %q score %d wave %d", g.playerName, g.score, g.wave)

	if g.scoreSaved {
		return
	}
	g.scoreSaved = true

	if g.playerName != "" && g.score > 0 {
		if err := g.scores.Append(g.playerName, g.score); err != nil {
			log.Printf("highscore save failed: %v", err)
		}
	}
	if g.archive != nil {
		if _, err := g.archive.RecordSession(g.playerName, g.score, g.wave, g.elapsed); err != nil {
			log.Printf("session archive failed: %v", err)
		}
	}
	if g.analytics != nil {
		g.analytics.Track(EvtGameOver, g.playerName, intJSON("score", g.score))
	}
}

// returnToMenu clears the session without saving the score again
func (g *Game) returnToMenu() {
	g.phase = PhaseMenu
	g.score = 0
	g.wave = 1
	g.elapsed = 0
	g.playerName = ""
	g.player.Reset()
	g.bullets = nil
	g.explosions = nil
	g.formation.Reset()
	g.enemies = GenerateWave(1)
	g.scrollX = 0
	g.bannerX = ScreenWidth
	g.bannerDir = -1
}

// Snapshot builds the read-only frame state for the renderer and for
// remote spectators.
func (g *Game) Snapshot() FrameState {
	fs := FrameState{
		Tick:    g.tick,
		Phase:   int(g.phase),
		Wave:    g.wave,
		Score:   g.score,
		Name:    g.playerName,
		Player:  g.player.ToState(),
		ScrollX: round1(g.scrollX),
		BannerX: round1(g.bannerX),
	}
	fs.Enemies = make([]EnemyState, 0, len(g.enemies))
	for _, e := range g.enemies {
		if e.Alive {
			fs.Enemies = append(fs.Enemies, e.ToState())
		}
	}
	fs.Bullets = make([]BulletState, 0, len(g.bullets))
	for _, b := range g.bullets {
		if b.Alive {
			fs.Bullets = append(fs.Bullets, b.ToState())
		}
	}
	fs.Explosions = make([]ExplosionState, 0, len(g.explosions))
	for _, ex := range g.explosions {
		if !ex.Finished {
			fs.Explosions = append(fs.Explosions, ex.ToState())
		}
	}
	return fs
}

// filterBullets drops expired bullets in place, preserving order
func filterBullets(bullets []*Bullet) []*Bullet {
	out := bullets[:0]
	for _, b := range bullets {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

// filterEnemies drops destroyed enemies in place, preserving order
func filterEnemies(enemies []*Enemy) []*Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

func filterExplosions(explosions []*Explosion) []*Explosion {
	out := explosions[:0]
	for _, ex := range explosions {
		if !ex.Finished {
			out = append(out, ex)
		}
	}
	return out
}
