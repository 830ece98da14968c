package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var enemyColors = [4]color.RGBA{
	{80, 220, 80, 255},  // standard
	{80, 160, 240, 255}, // fast
	{200, 80, 200, 255}, // tank
	{240, 200, 60, 255}, // swooper
}

var explosionColors = [ExplosionFrames]color.RGBA{
	{255, 240, 140, 255},
	{255, 150, 60, 255},
	{160, 60, 30, 255},
}

// Renderer draws a frame snapshot. Sprites are optional; anything
// missing is drawn as flat shapes so the game works without assets.
type Renderer struct {
	bg        *ebiten.Image
	playerImg *ebiten.Image
	enemyImgs [4]*ebiten.Image
	bulletImg *ebiten.Image
	joinURL   string
	qrURL     string
}

func NewRenderer(joinURL, qrURL string) *Renderer {
	r := &Renderer{joinURL: joinURL, qrURL: qrURL}
	r.bg = LoadAssetImage("background.png")
	r.playerImg = LoadAssetImage("player.png")
	for i, def := range EnemyTypes {
		r.enemyImgs[i] = LoadAssetImage("enemy_" + def.Name + ".png")
	}
	r.bulletImg = LoadAssetImage("bullet.png")
	return r
}

func (r *Renderer) Draw(screen *ebiten.Image, fs FrameState, top []HighscoreEntry) {
	r.drawBackground(screen, fs.ScrollX)

	switch Phase(fs.Phase) {
	case PhaseMenu:
		r.drawMenu(screen, fs, top)
	case PhasePlaying:
		r.drawWorld(screen, fs)
		r.drawHUD(screen, fs)
	case PhaseGameOver:
		r.drawWorld(screen, fs)
		r.drawGameOver(screen, fs)
	}
}

// drawBackground tiles the scrolling backdrop horizontally. ScrollX is
// negative and decreasing; wrap it into [0, w).
func (r *Renderer) drawBackground(screen *ebiten.Image, scrollX float64) {
	if r.bg == nil {
		screen.Fill(color.RGBA{8, 8, 24, 255})
		return
	}
	w := float64(r.bg.Bounds().Dx())
	for x := wrapOffset(scrollX, w); x < ScreenWidth; x += w {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(r.bg, op)
	}
}

// wrapOffset folds an unbounded scroll position into (-w, 0] so tiling
// cost stays constant no matter how long a session runs
func wrapOffset(scrollX, w float64) float64 {
	off := math.Mod(scrollX, w)
	if off > 0 {
		off -= w
	}
	return off
}

func (r *Renderer) drawWorld(screen *ebiten.Image, fs FrameState) {
	// defender line marker
	lineY := float32(ScreenHeight - DefenderLine)
	vector.DrawFilledRect(screen, 0, lineY, ScreenWidth, 1, color.RGBA{60, 60, 90, 255}, false)

	// player base, drawn centered on X
	p := fs.Player
	px := float32(p.X - p.Width/2)
	py := float32(PlayerY)
	if r.playerImg != nil {
		w, h := r.playerImg.Bounds().Dx(), r.playerImg.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Width/float64(w), PlayerHeight/float64(h))
		op.GeoM.Translate(float64(px), float64(py))
		screen.DrawImage(r.playerImg, op)
	} else {
		vector.DrawFilledRect(screen, px, py, float32(p.Width), PlayerHeight, color.RGBA{120, 240, 120, 255}, false)
	}

	for _, b := range fs.Bullets {
		if r.bulletImg != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(b.X-4, b.Y-8)
			screen.DrawImage(r.bulletImg, op)
		} else {
			vector.DrawFilledRect(screen, float32(b.X-2), float32(b.Y-8), 4, 12, color.RGBA{255, 255, 200, 255}, false)
		}
	}

	for _, e := range fs.Enemies {
		img := r.enemyImgs[e.Type%len(r.enemyImgs)]
		if img != nil {
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(2*CollisionRadius/float64(w), 2*CollisionRadius/float64(h))
			op.GeoM.Translate(e.X-CollisionRadius, e.Y-CollisionRadius)
			screen.DrawImage(img, op)
		} else {
			c := enemyColors[e.Type%len(enemyColors)]
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), CollisionRadius*0.8, c, false)
		}
		// tanks show remaining hits
		if e.HP > 1 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", e.HP), int(e.X)-3, int(e.Y)-8)
		}
	}

	for _, x := range fs.Explosions {
		c := explosionColors[x.Frame%ExplosionFrames]
		radius := float32(8 + 6*x.Frame)
		vector.DrawFilledCircle(screen, float32(x.X), float32(x.Y), radius, c, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, fs FrameState) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", fs.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d", fs.Wave), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SHOTS %d", fs.Player.Shots), 10, 42)
	ebitenutil.DebugPrintAt(screen, fs.Name, ScreenWidth-10-6*len(fs.Name), 10)
}

func (r *Renderer) drawMenu(screen *ebiten.Image, fs FrameState, top []HighscoreEntry) {
	ebitenutil.DebugPrintAt(screen, "* DEFEND THE LINE *", int(fs.BannerX), 80)

	ebitenutil.DebugPrintAt(screen, "ENTER YOUR NAME:", ScreenWidth/2-60, 200)
	name := fs.Name + "_"
	ebitenutil.DebugPrintAt(screen, name, ScreenWidth/2-60, 220)
	ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO START", ScreenWidth/2-75, 260)

	ebitenutil.DebugPrintAt(screen, "HIGH SCORES", ScreenWidth/2-40, 320)
	for i, e := range top {
		if i >= 10 {
			break
		}
		line := fmt.Sprintf("%2d. %-20s %6d", i+1, e.Name, e.Score)
		ebitenutil.DebugPrintAt(screen, line, ScreenWidth/2-110, 340+i*16)
	}

	if r.joinURL != "" {
		ebitenutil.DebugPrintAt(screen, "PHONE CONTROLLER: "+r.joinURL, 10, ScreenHeight-40)
		ebitenutil.DebugPrintAt(screen, "QR CODE: "+r.qrURL, 10, ScreenHeight-24)
	}
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, fs FrameState) {
	vector.DrawFilledRect(screen, ScreenWidth/2-160, ScreenHeight/2-60, 320, 120, color.RGBA{0, 0, 0, 200}, false)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", ScreenWidth/2-30, ScreenHeight/2-40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FINAL SCORE %d", fs.Score), ScreenWidth/2-45, ScreenHeight/2-16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REACHED WAVE %d", fs.Wave), ScreenWidth/2-45, ScreenHeight/2)
	ebitenutil.DebugPrintAt(screen, "PRESS ENTER FOR MENU", ScreenWidth/2-70, ScreenHeight/2+32)
}
