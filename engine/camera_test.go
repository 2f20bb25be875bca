package engine

import "testing"

func TestCameraFollowCenters(t *testing.T) {
	c := newCamera(960, 600)
	c.Follow(480, 300)
	x, y := c.Scroll()
	if x != 0 || y != 0 {
		t.Fatalf("scroll = (%f, %f), want (0, 0) for world center", x, y)
	}

	c.Follow(1000, 700)
	x, y = c.Scroll()
	if x != 520 || y != 400 {
		t.Fatalf("scroll = (%f, %f), want (520, 400)", x, y)
	}
}

func TestCameraShakeDecaysToZero(t *testing.T) {
	c := newCamera(960, 600)
	c.Follow(480, 300)
	c.Shake(5, 4)

	if !c.Shaking() {
		t.Fatalf("shake request ignored")
	}
	moved := false
	for i := 0; i < 5; i++ {
		c.step()
		if c.offX != 0 || c.offY != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("shake never displaced the camera")
	}
	if c.Shaking() {
		t.Fatalf("still shaking after the requested frames")
	}
	if x, y := c.Scroll(); x != 0 || y != 0 {
		t.Fatalf("scroll = (%f, %f), want settled (0, 0)", x, y)
	}
}

func TestCameraShakeExtendsNotStacks(t *testing.T) {
	c := newCamera(960, 600)
	c.Shake(3, 2)
	c.Shake(8, 1)
	if c.shakeFrames != 8 {
		t.Fatalf("frames = %d, want the longer request (8)", c.shakeFrames)
	}
	if c.shakeIntensity != 2 {
		t.Fatalf("intensity = %f, want the stronger request (2)", c.shakeIntensity)
	}
}
