package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Sound plays effects in reaction to game events and keeps the music
// loop going. Every asset is optional; a missing file just means
// silence for that effect.
type Sound struct {
	ctx   *audio.Context
	mute  bool
	shoot []byte
	hit   []byte
	over  []byte
	music *audio.Player
}

func NewSound(mute bool) *Sound {
	s := &Sound{ctx: audio.NewContext(sampleRate), mute: mute}
	s.shoot = loadPCM("shoot.wav")
	s.hit = loadPCM("explosion.wav")
	s.over = loadPCM("gameover.wav")
	s.initMusic()
	return s
}

// loadPCM decodes a wav asset into raw PCM so overlapping plays can
// each get their own player
func loadPCM(name string) []byte {
	path := FindAsset(name)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		log.Printf("decode %s: %v", name, err)
		return nil
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil
	}
	return pcm
}

func (s *Sound) initMusic() {
	path := FindAsset("music.wav")
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		log.Printf("decode music: %v", err)
		return
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := s.ctx.NewPlayer(loop)
	if err != nil {
		return
	}
	s.music = player
	if !s.mute {
		player.Play()
	}
}

func (s *Sound) play(pcm []byte) {
	if s.mute || pcm == nil {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}

// HandleEvent implements EventSink
func (s *Sound) HandleEvent(ev Event) {
	switch ev.Kind {
	case EvBulletFired:
		s.play(s.shoot)
	case EvEnemyDestroyed:
		s.play(s.hit)
	case EvGameOver:
		s.play(s.over)
		if s.music != nil {
			s.music.Pause()
		}
	case EvWaveCleared:
		// music keeps running between waves
	}
}

// ResumeMusic restarts the loop when a new run begins
func (s *Sound) ResumeMusic() {
	if s.music != nil && !s.mute && !s.music.IsPlaying() {
		s.music.Play()
	}
}
