package main

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// FindAsset looks for name next to the executable, in the working
// directory and in an assets/ subdirectory of both. Returns "" when the
// file is nowhere to be found; callers fall back to drawn shapes.
func FindAsset(name string) string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates, filepath.Join(dir, name), filepath.Join(dir, "assets", name))
	}
	candidates = append(candidates, name, filepath.Join("assets", name))
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadImage decodes an image file into an ebiten image
func LoadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAssetImage combines lookup and decode; nil when missing
func LoadAssetImage(name string) *ebiten.Image {
	path := FindAsset(name)
	if path == "" {
		return nil
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil
	}
	return img
}
