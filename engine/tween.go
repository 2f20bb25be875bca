package engine

import "github.com/rennick7/arena/obj"

type tween struct {
	sprite obj.Sprite
	fromX  float64
	fromY  float64
	toX    float64
	toY    float64
	frame  int
	total  int
}

// tweens holds the active position tweens, at most one per sprite.
type tweens struct {
	active []*tween
}

// start begins a linear move to (x, y) over the given frame count,
// starting from the sprite's current position. A tween already running
// on the same sprite is replaced.
func (t *tweens) start(s obj.Sprite, x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	fx, fy := s.Position()
	nt := &tween{sprite: s, fromX: fx, fromY: fy, toX: x, toY: y, total: frames}
	for i, a := range t.active {
		if a.sprite == s {
			t.active[i] = nt
			return
		}
	}
	t.active = append(t.active, nt)
}

// step advances all tweens one frame, writing interpolated positions.
// Finished tweens land exactly on the target and are dropped.
func (t *tweens) step() {
	kept := t.active[:0]
	for _, a := range t.active {
		a.frame++
		if a.frame >= a.total {
			a.sprite.SetPosition(a.toX, a.toY)
			continue
		}
		u := float64(a.frame) / float64(a.total)
		a.sprite.SetPosition(lerp(a.fromX, a.toX, u), lerp(a.fromY, a.toY, u))
		kept = append(kept, a)
	}
	t.active = kept
}

// drop discards any tween targeting s, used when a sprite is destroyed.
func (t *tweens) drop(s obj.Sprite) {
	kept := t.active[:0]
	for _, a := range t.active {
		if a.sprite != s {
			kept = append(kept, a)
		}
	}
	t.active = kept
}

func lerp(a, b, u float64) float64 {
	return a + u*(b-a)
}
