package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ReadKeyboard samples the local keyboard into an Input for one tick.
// Movement keys report held state; fire, confirm and restart are edges
// so one press means one action.
func ReadKeyboard() Input {
	in := Input{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Confirm:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR),
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || keyRepeat(ebiten.KeyBackspace),
	}
	in.Chars = ebiten.AppendInputChars(in.Chars)
	return in
}

// keyRepeat emulates key auto-repeat for held editing keys
func keyRepeat(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d >= 30 && d%6 == 0
}

// MergeInput combines the local keyboard with the remote controller.
// Either source can drive any action.
func MergeInput(a, b Input) Input {
	return Input{
		Left:      a.Left || b.Left,
		Right:     a.Right || b.Right,
		Fire:      a.Fire || b.Fire,
		Confirm:   a.Confirm || b.Confirm,
		Restart:   a.Restart || b.Restart,
		Backspace: a.Backspace || b.Backspace,
		Chars:     append(append([]rune(nil), a.Chars...), b.Chars...),
	}
}
