package obj

import (
	"image/color"
	"sort"
)

// fakeStage is an in-memory Stage so entity tests run without a
// display. Timers advance one frame per step call.

type fakeSprite struct {
	x, y      float64
	rot       float64
	vx, vy    float64
	tint      color.NRGBA
	destroyed bool
}

func (s *fakeSprite) Position() (float64, float64) { return s.x, s.y }
func (s *fakeSprite) SetPosition(x, y float64)     { s.x, s.y = x, y }
func (s *fakeSprite) SetRotation(r float64)        { s.rot = r }
func (s *fakeSprite) SetVelocity(vx, vy float64)   { s.vx, s.vy = vx, vy }
func (s *fakeSprite) SetTint(c color.NRGBA)        { s.tint = c }
func (s *fakeSprite) Destroy()                     { s.destroyed = true }

type fakeLabel struct {
	x, y      float64
	text      string
	destroyed bool
}

func (l *fakeLabel) SetPosition(x, y float64) { l.x, l.y = x, y }
func (l *fakeLabel) SetText(t string)         { l.text = t }
func (l *fakeLabel) Destroy()                 { l.destroyed = true }

type fakeRect struct {
	x, y, w, h float64
	c          color.NRGBA
}

type fakeCanvas struct {
	rects     []fakeRect
	destroyed bool
}

func (c *fakeCanvas) Clear() { c.rects = c.rects[:0] }
func (c *fakeCanvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.rects = append(c.rects, fakeRect{x, y, w, h, col})
}
func (c *fakeCanvas) Destroy() { c.destroyed = true }

type fakeTimer struct {
	remaining int
	fn        func()
}

type fakeEvent struct {
	name  string
	value int
}

type fakeTween struct {
	sprite Sprite
	x, y   float64
	frames int
}

type fakeShake struct {
	frames    int
	intensity float64
}

type fakeStage struct {
	sprites  []*fakeSprite
	labels   []*fakeLabel
	canvases []*fakeCanvas

	keys               map[Key]bool
	pointerX, pointerY float64

	nextTimer TimerHandle
	timers    map[TimerHandle]*fakeTimer

	events []fakeEvent
	shakes []fakeShake
	tweens []fakeTween
}

func newFakeStage() *fakeStage {
	return &fakeStage{
		keys:   map[Key]bool{},
		timers: map[TimerHandle]*fakeTimer{},
	}
}

func (s *fakeStage) SpawnSprite(_ string, x, y float64, _ bool) Sprite {
	sp := &fakeSprite{x: x, y: y}
	s.sprites = append(s.sprites, sp)
	return sp
}

func (s *fakeStage) SpawnLabel(text string, x, y float64) Label {
	l := &fakeLabel{x: x, y: y, text: text}
	s.labels = append(s.labels, l)
	return l
}

func (s *fakeStage) SpawnCanvas() Canvas {
	c := &fakeCanvas{}
	s.canvases = append(s.canvases, c)
	return c
}

func (s *fakeStage) TweenTo(sp Sprite, x, y float64, frames int) {
	s.tweens = append(s.tweens, fakeTween{sp, x, y, frames})
}

func (s *fakeStage) ScheduleAfter(frames int, fn func()) TimerHandle {
	s.nextTimer++
	s.timers[s.nextTimer] = &fakeTimer{remaining: frames, fn: fn}
	return s.nextTimer
}

func (s *fakeStage) CancelScheduled(h TimerHandle) {
	delete(s.timers, h)
}

func (s *fakeStage) KeyDown(k Key) bool { return s.keys[k] }

func (s *fakeStage) PointerWorld() (float64, float64) { return s.pointerX, s.pointerY }

func (s *fakeStage) ShakeCamera(frames int, intensity float64) {
	s.shakes = append(s.shakes, fakeShake{frames, intensity})
}

func (s *fakeStage) Emit(name string, value int) {
	s.events = append(s.events, fakeEvent{name, value})
}

// step advances timers by one frame, firing due callbacks in handle
// order so tests are deterministic.
func (s *fakeStage) step() {
	var due []TimerHandle
	for h, t := range s.timers {
		t.remaining--
		if t.remaining <= 0 {
			due = append(due, h)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	for _, h := range due {
		t, ok := s.timers[h]
		if !ok {
			continue
		}
		delete(s.timers, h)
		t.fn()
	}
}

func (s *fakeStage) advance(frames int) {
	for i := 0; i < frames; i++ {
		s.step()
	}
}
