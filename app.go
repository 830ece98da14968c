package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// App connects the simulation to the window. Update runs one fixed
// tick, Draw renders the latest snapshot, and every other tick the
// snapshot goes out to remote spectators.
type App struct {
	game     *Game
	hub      *Hub
	renderer *Renderer
	sound    *Sound
	scores   *HighscoreStore

	tick     uint64
	topCache []HighscoreEntry
}

func NewApp(game *Game, hub *Hub, renderer *Renderer, sound *Sound, scores *HighscoreStore) *App {
	return &App{
		game:     game,
		hub:      hub,
		renderer: renderer,
		sound:    sound,
		scores:   scores,
		topCache: scores.Top(10),
	}
}

func (a *App) Update() error {
	in := ReadKeyboard()
	if a.hub != nil {
		if remote, ok := a.hub.ConsumeInput(); ok {
			in = MergeInput(in, remote)
		}
	}

	prev := a.game.Phase()
	a.game.Step(TickDT, in)

	if prev != a.game.Phase() {
		switch a.game.Phase() {
		case PhaseMenu:
			// refresh the highscore table after each run
			a.topCache = a.scores.Top(10)
		case PhasePlaying:
			if a.sound != nil {
				a.sound.ResumeMusic()
			}
		}
	}

	a.tick++
	if a.hub != nil && a.tick%BroadcastEvery == 0 {
		a.hub.BroadcastState(a.game.Snapshot())
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.Snapshot(), a.topCache)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
