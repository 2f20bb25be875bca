package obj

import (
	"image/color"
	"math"
)

const maxHealth = 100

// Transient feedback tints. Identity tints come from the palette.
var (
	damageTint = color.NRGBA{R: 0xff, A: 0xff}
	healTint   = color.NRGBA{G: 0xff, A: 0xff}
	boostTint  = color.NRGBA{G: 0xff, B: 0xff, A: 0xff}

	barBackground = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	barGreen      = color.NRGBA{G: 0xc8, A: 0xff}
	barYellow     = color.NRGBA{R: 0xe6, G: 0xc8, A: 0xff}
	barRed        = color.NRGBA{R: 0xd2, A: 0xff}
)

// Tuning holds the live-reloadable movement and feedback numbers.
type Tuning struct {
	MoveSpeed  float64
	BoostSpeed float64

	FlashFrames int
	TweenFrames int

	ShakeFrames    int
	ShakeIntensity float64

	BarWidth  float64
	BarHeight float64

	LabelOffsetY float64
	BarOffsetY   float64
}

// DefaultTuning matches the embedded config defaults.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:      180,
		BoostSpeed:     300,
		FlashFrames:    12,
		TweenFrames:    6,
		ShakeFrames:    8,
		ShakeIntensity: 4,
		BarWidth:       50,
		BarHeight:      6,
		LabelOffsetY:   -30,
		BarOffsetY:     -44,
	}
}

// Player is one in-game player, local or remote. The local instance
// reads keyboard and pointer state each frame; remote instances are
// positioned by MoveTo and SetHealth calls driven from the event feed.
// All methods must be called from the game loop.
type Player struct {
	ID    string
	Name  string
	Local bool

	stage Stage
	tun   Tuning

	health   int
	baseTint color.NRGBA
	fx       *tintFX

	sprite Sprite
	label  Label
	bar    Canvas

	boostTimer TimerHandle
}

// NewPlayer spawns the entity's sprite, name label, and health bar.
// localID decides whether this instance is under local control. A
// non-positive explicitColor defers to the id hash.
func NewPlayer(stage Stage, tun Tuning, id, name, textureKey string, x, y float64, localID string, explicitColor int) *Player {
	p := &Player{
		ID:     id,
		Name:   name,
		Local:  id == localID,
		stage:  stage,
		tun:    tun,
		health: maxHealth,
	}
	p.baseTint = ColorFor(id, explicitColor, p.Local)
	p.sprite = stage.SpawnSprite(textureKey, x, y, p.Local)
	p.label = stage.SpawnLabel(name, x, y+tun.LabelOffsetY)
	p.bar = stage.SpawnCanvas()
	p.fx = newTintFX(stage, p.sprite, p.baseTint)
	p.redrawBar(x, y)
	return p
}

// Health returns the current health value.
func (p *Player) Health() int { return p.health }

// BaseTint returns the identity tint assigned at construction.
func (p *Player) BaseTint() color.NRGBA { return p.baseTint }

// VisibleTint returns the tint currently shown on the sprite.
func (p *Player) VisibleTint() color.NRGBA { return p.fx.Visible() }

// SpeedBoostActive reports whether a boost expiry is pending.
func (p *Player) SpeedBoostActive() bool { return p.boostTimer != 0 }

// SetTuning swaps in new tuning values (config hot reload). Identity
// tint and spawned resources are unaffected.
func (p *Player) SetTuning(tun Tuning) { p.tun = tun }

// Position returns the sprite's current world position.
func (p *Player) Position() (float64, float64) { return p.sprite.Position() }

// Update runs once per frame: the label tracks the sprite, the health
// bar is redrawn, and the local instance applies input.
func (p *Player) Update() {
	x, y := p.sprite.Position()
	p.label.SetPosition(x, y+p.tun.LabelOffsetY)
	p.redrawBar(x, y)

	if !p.Local {
		return
	}
	p.applyMovement()

	px, py := p.stage.PointerWorld()
	p.sprite.SetRotation(math.Atan2(py-y, px-x))
}

// applyMovement turns key state into a velocity. Opposite keys held
// together resolve to left and up respectively (first checked wins);
// they do not cancel. Diagonals are renormalized so they are no faster
// than axis-aligned movement.
func (p *Player) applyMovement() {
	var vx, vy float64
	if p.stage.KeyDown(KeyLeft) {
		vx = -1
	} else if p.stage.KeyDown(KeyRight) {
		vx = 1
	}
	if p.stage.KeyDown(KeyUp) {
		vy = -1
	} else if p.stage.KeyDown(KeyDown) {
		vy = 1
	}

	if vx != 0 || vy != 0 {
		speed := p.tun.MoveSpeed
		if p.SpeedBoostActive() {
			speed = p.tun.BoostSpeed
		}
		scale := speed / math.Hypot(vx, vy)
		vx *= scale
		vy *= scale
	}
	p.sprite.SetVelocity(vx, vy)
}

// MoveTo animates the sprite to (x, y) over a fixed short duration.
// Used for remote players; a call while a previous move is still in
// flight restarts the tween from the current position.
func (p *Player) MoveTo(x, y float64) {
	p.stage.TweenTo(p.sprite, x, y, p.tun.TweenFrames)
}

// Damage subtracts from health (floor 0), publishes the new value,
// shakes the camera, and flashes the sprite red.
func (p *Player) Damage(amount int) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
	p.healthChanged()
	p.stage.ShakeCamera(p.tun.ShakeFrames, p.tun.ShakeIntensity)
	p.fx.Flash(damageTint, p.tun.FlashFrames)
}

// Heal adds to health (cap 100), publishes the new value, and flashes
// the sprite green.
func (p *Player) Heal(amount int) {
	p.health += amount
	if p.health > maxHealth {
		p.health = maxHealth
	}
	p.healthChanged()
	p.fx.Flash(healTint, p.tun.FlashFrames)
}

// ApplySpeedBoost raises movement speed for the given number of frames
// and tints the sprite cyan until it expires. A second call supersedes
// the first; boosts never stack.
func (p *Player) ApplySpeedBoost(frames int) {
	if p.boostTimer != 0 {
		p.stage.CancelScheduled(p.boostTimer)
	}
	p.fx.SetBoost(boostTint)
	p.boostTimer = p.stage.ScheduleAfter(frames, func() {
		p.boostTimer = 0
		p.fx.ClearBoost()
	})
}

// SetHealth assigns health directly, without clamping, and redraws the
// bar. Authoritative sync trusts the sender; no publish, no flash.
func (p *Player) SetHealth(value int) {
	p.health = value
	x, y := p.sprite.Position()
	p.redrawBar(x, y)
}

// healthChanged publishes the new value and repaints the bar so the
// change is visible the same frame it happens.
func (p *Player) healthChanged() {
	p.stage.Emit(EventUpdateHealth, p.health)
	x, y := p.sprite.Position()
	p.redrawBar(x, y)
}

// Reset restores full health, publishes it, restores the base tint,
// and cancels any active boost.
func (p *Player) Reset() {
	p.health = maxHealth
	p.healthChanged()
	if p.boostTimer != 0 {
		p.stage.CancelScheduled(p.boostTimer)
		p.boostTimer = 0
	}
	p.fx.Reset()
}

// Destroy releases the sprite, label, health bar, and pending timers.
func (p *Player) Destroy() {
	if p.boostTimer != 0 {
		p.stage.CancelScheduled(p.boostTimer)
		p.boostTimer = 0
	}
	p.fx.Reset()
	p.sprite.Destroy()
	p.label.Destroy()
	p.bar.Destroy()
}

// redrawBar repaints the health bar above the sprite: a dark backing
// rectangle and a foreground whose width tracks health. The foreground
// width clamps at [0, BarWidth] even when SetHealth stored an
// out-of-range value.
func (p *Player) redrawBar(x, y float64) {
	p.bar.Clear()
	bx := x - p.tun.BarWidth/2
	by := y + p.tun.BarOffsetY
	p.bar.FillRect(bx-1, by-1, p.tun.BarWidth+2, p.tun.BarHeight+2, barBackground)

	frac := float64(p.health) / maxHealth
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	if frac > 0 {
		p.bar.FillRect(bx, by, p.tun.BarWidth*frac, p.tun.BarHeight, healthBarColor(p.health))
	}
}

// healthBarColor picks the foreground color: green above 60, yellow
// above 30, red otherwise.
func healthBarColor(health int) color.NRGBA {
	switch {
	case health > 60:
		return barGreen
	case health > 30:
		return barYellow
	default:
		return barRed
	}
}
