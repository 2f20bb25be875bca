package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/rennick7/arena/obj"
)

const (
	spriteScale = 0.5
	tps         = 60.0
	wallRadius  = 4
)

// Stage is the Ebitengine + Chipmunk implementation of obj.Stage. It
// owns the physics space, sprites, labels, canvases, timers, tweens,
// and the camera. Everything runs on the game loop; Step once per
// Update, Draw once per frame.
type Stage struct {
	space *cp.Space
	cam   *Camera
	sched *scheduler
	tw    *tweens

	sprites  []*sprite
	labels   []*label
	canvases []*canvas

	textures  map[string]*ebiten.Image
	face      ebtext.Face
	listeners map[string][]func(int)

	worldW float64
	worldH float64
}

// NewStage creates a stage with four static walls around the world so
// dynamic sprites collide with the bounds.
func NewStage(worldW, worldH float64, screenW, screenH int) *Stage {
	space := cp.NewSpace()
	space.Iterations = 10

	s := &Stage{
		space:     space,
		cam:       newCamera(screenW, screenH),
		sched:     newScheduler(),
		tw:        &tweens{},
		textures:  map[string]*ebiten.Image{},
		listeners: map[string][]func(int){},
		worldW:    worldW,
		worldH:    worldH,
	}
	s.face = ebtext.NewGoXFace(basicfont.Face7x13)
	s.addWorldBounds()
	return s
}

func (s *Stage) addWorldBounds() {
	walls := [][4]float64{
		{0, 0, s.worldW, 0},
		{0, s.worldH, s.worldW, s.worldH},
		{0, 0, 0, s.worldH},
		{s.worldW, 0, s.worldW, s.worldH},
	}
	for _, w := range walls {
		seg := cp.NewSegment(s.space.StaticBody, cp.Vector{X: w[0], Y: w[1]}, cp.Vector{X: w[2], Y: w[3]}, wallRadius)
		seg.SetElasticity(0)
		seg.SetFriction(0)
		s.space.AddShape(seg)
	}
}

// Camera returns the stage camera so the scene can drive follow.
func (s *Stage) Camera() *Camera { return s.cam }

// On subscribes to events published through Emit.
func (s *Stage) On(event string, fn func(int)) {
	s.listeners[event] = append(s.listeners[event], fn)
}

// Emit delivers an event synchronously to all subscribers.
func (s *Stage) Emit(event string, value int) {
	for _, fn := range s.listeners[event] {
		fn(value)
	}
}

// Step advances timers, tweens, physics, and camera shake one frame.
func (s *Stage) Step() {
	s.sched.step()
	s.tw.step()
	s.space.Step(1.0 / tps)
	s.cam.step()
}

// sprite wraps a Chipmunk body. Rotation is draw-only; physics never
// spins a body (infinite moment), matching the pointer-facing policy.
type sprite struct {
	st       *Stage
	img      *ebiten.Image
	body     *cp.Body
	shape    *cp.Shape
	rotation float64
	tint     color.NRGBA
}

func (sp *sprite) Position() (float64, float64) {
	p := sp.body.Position()
	return p.X, p.Y
}

func (sp *sprite) SetPosition(x, y float64) {
	sp.body.SetPosition(cp.Vector{X: x, Y: y})
}

func (sp *sprite) SetRotation(r float64) { sp.rotation = r }

func (sp *sprite) SetVelocity(vx, vy float64) {
	sp.body.SetVelocity(vx, vy)
}

func (sp *sprite) SetTint(c color.NRGBA) { sp.tint = c }

func (sp *sprite) Destroy() {
	sp.st.tw.drop(sp)
	if sp.shape != nil {
		sp.st.space.RemoveShape(sp.shape)
	}
	sp.st.space.RemoveBody(sp.body)
	for i, other := range sp.st.sprites {
		if other == sp {
			sp.st.sprites = append(sp.st.sprites[:i], sp.st.sprites[i+1:]...)
			break
		}
	}
}

// SpawnSprite creates a half-scale sprite at (x, y). Dynamic sprites
// get a box body that collides with the world bounds; non-dynamic ones
// are kinematic and moved only by SetPosition and tweens.
func (s *Stage) SpawnSprite(textureKey string, x, y float64, dynamic bool) obj.Sprite {
	img := s.texture(textureKey)
	w := float64(img.Bounds().Dx()) * spriteScale
	h := float64(img.Bounds().Dy()) * spriteScale

	sp := &sprite{st: s, img: img, tint: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	if dynamic {
		sp.body = s.space.AddBody(cp.NewBody(1, cp.INFINITY))
		shape := cp.NewBox(sp.body, w, h, 0)
		shape.SetElasticity(0)
		shape.SetFriction(0)
		sp.shape = s.space.AddShape(shape)
	} else {
		sp.body = s.space.AddBody(cp.NewKinematicBody())
	}
	sp.body.SetPosition(cp.Vector{X: x, Y: y})

	s.sprites = append(s.sprites, sp)
	return sp
}

type label struct {
	st   *Stage
	text string
	x, y float64
}

func (l *label) SetPosition(x, y float64) { l.x, l.y = x, y }
func (l *label) SetText(t string)         { l.text = t }
func (l *label) Destroy() {
	for i, other := range l.st.labels {
		if other == l {
			l.st.labels = append(l.st.labels[:i], l.st.labels[i+1:]...)
			return
		}
	}
}

// SpawnLabel creates a centered text overlay at (x, y).
func (s *Stage) SpawnLabel(text string, x, y float64) obj.Label {
	l := &label{st: s, text: text, x: x, y: y}
	s.labels = append(s.labels, l)
	return l
}

type rectOp struct {
	x, y, w, h float64
	c          color.NRGBA
}

type canvas struct {
	st    *Stage
	rects []rectOp
}

func (c *canvas) Clear() { c.rects = c.rects[:0] }
func (c *canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.rects = append(c.rects, rectOp{x, y, w, h, col})
}
func (c *canvas) Destroy() {
	for i, other := range c.st.canvases {
		if other == c {
			c.st.canvases = append(c.st.canvases[:i], c.st.canvases[i+1:]...)
			return
		}
	}
}

// SpawnCanvas creates an empty rectangle list drawn above sprites.
func (s *Stage) SpawnCanvas() obj.Canvas {
	c := &canvas{st: s}
	s.canvases = append(s.canvases, c)
	return c
}

// TweenTo implements obj.Stage.
func (s *Stage) TweenTo(sp obj.Sprite, x, y float64, frames int) {
	s.tw.start(sp, x, y, frames)
}

// ScheduleAfter implements obj.Stage.
func (s *Stage) ScheduleAfter(frames int, fn func()) obj.TimerHandle {
	return s.sched.after(frames, fn)
}

// CancelScheduled implements obj.Stage.
func (s *Stage) CancelScheduled(h obj.TimerHandle) {
	s.sched.cancel(h)
}

// KeyDown implements obj.Stage.
func (s *Stage) KeyDown(k obj.Key) bool { return keyDown(k) }

// PointerWorld returns the cursor position in world coordinates.
func (s *Stage) PointerWorld() (float64, float64) {
	cx, cy := ebiten.CursorPosition()
	sx, sy := s.cam.Scroll()
	return float64(cx) + sx, float64(cy) + sy
}

// ShakeCamera implements obj.Stage.
func (s *Stage) ShakeCamera(frames int, intensity float64) {
	s.cam.Shake(frames, intensity)
}

// Draw renders sprites, then canvases, then labels, so overlays always
// sit above sprites.
func (s *Stage) Draw(screen *ebiten.Image) {
	sx, sy := s.cam.Scroll()

	for _, sp := range s.sprites {
		op := &ebiten.DrawImageOptions{}
		w := float64(sp.img.Bounds().Dx())
		h := float64(sp.img.Bounds().Dy())
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(sp.rotation)
		op.GeoM.Scale(spriteScale, spriteScale)
		x, y := sp.Position()
		op.GeoM.Translate(x-sx, y-sy)
		op.ColorScale.ScaleWithColor(sp.tint)
		screen.DrawImage(sp.img, op)
	}

	for _, c := range s.canvases {
		for _, r := range c.rects {
			vector.DrawFilledRect(screen, float32(r.x-sx), float32(r.y-sy), float32(r.w), float32(r.h), r.c, false)
		}
	}

	for _, l := range s.labels {
		op := &ebtext.DrawOptions{}
		adv := ebtext.Advance(l.text, s.face)
		op.GeoM.Translate(l.x-sx-adv/2, l.y-sy)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, l.text, s.face, op)
	}
}
