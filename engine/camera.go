package engine

import "math/rand"

// Camera tracks the world-space scroll of the view plus a decaying
// shake offset. Scroll is the world coordinate of the screen's top-left
// corner.
type Camera struct {
	x, y float64

	screenW int
	screenH int

	shakeFrames    int
	shakeIntensity float64
	offX, offY     float64
}

func newCamera(screenW, screenH int) *Camera {
	return &Camera{screenW: screenW, screenH: screenH}
}

// Follow centers the view on a world coordinate.
func (c *Camera) Follow(wx, wy float64) {
	c.x = wx - float64(c.screenW)/2
	c.y = wy - float64(c.screenH)/2
}

// Shake requests a shake effect. Overlapping requests extend to the
// longer duration and stronger intensity rather than stacking.
func (c *Camera) Shake(frames int, intensity float64) {
	if frames > c.shakeFrames {
		c.shakeFrames = frames
	}
	if intensity > c.shakeIntensity {
		c.shakeIntensity = intensity
	}
}

// step advances the shake by one frame.
func (c *Camera) step() {
	if c.shakeFrames <= 0 {
		c.offX, c.offY = 0, 0
		c.shakeIntensity = 0
		return
	}
	c.shakeFrames--
	c.offX = (rand.Float64()*2 - 1) * c.shakeIntensity
	c.offY = (rand.Float64()*2 - 1) * c.shakeIntensity
	if c.shakeFrames == 0 {
		c.offX, c.offY = 0, 0
		c.shakeIntensity = 0
	}
}

// Scroll returns the effective top-left scroll including shake.
func (c *Camera) Scroll() (float64, float64) {
	return c.x + c.offX, c.y + c.offY
}

// Shaking reports whether a shake is still running.
func (c *Camera) Shaking() bool {
	return c.shakeFrames > 0
}
