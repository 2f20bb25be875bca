package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const textureSize = 48

// texture returns the image for a key, generating it on first use. The
// game ships no art; sprites are drawn in near-white so palette tints
// read cleanly, with a nose marker so facing is visible.
func (s *Stage) texture(key string) *ebiten.Image {
	if img, ok := s.textures[key]; ok {
		return img
	}
	img := generateTexture(key)
	s.textures[key] = img
	return img
}

func generateTexture(key string) *ebiten.Image {
	img := ebiten.NewImage(textureSize, textureSize)
	hull := color.NRGBA{R: 0xec, G: 0xec, B: 0xec, A: 0xff}
	nose := color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}

	const half = textureSize / 2
	switch key {
	case "crate":
		vector.DrawFilledRect(img, 2, 2, textureSize-4, textureSize-4, hull, true)
	default: // "ship" and anything unrecognized
		vector.DrawFilledCircle(img, half, half, half-2, hull, true)
		vector.DrawFilledRect(img, half, half-3, half-4, 6, nose, true)
	}
	return img
}
