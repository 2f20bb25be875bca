package obj

import "image/color"

// Key identifies a logical movement key. The engine maps each logical key
// to its physical aliases (arrows and WASD).
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// EventUpdateHealth is published with the new health value whenever an
// entity's health changes through Damage, Heal, or Reset.
const EventUpdateHealth = "updateHealth"

// TimerHandle refers to a pending deferred callback. The zero handle is
// never issued and means "no timer".
type TimerHandle int

// Sprite is a positioned, rotatable, tintable image owned by the stage.
type Sprite interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	SetRotation(radians float64)
	SetVelocity(vx, vy float64)
	SetTint(c color.NRGBA)
	Destroy()
}

// Label is a floating text overlay.
type Label interface {
	SetPosition(x, y float64)
	SetText(text string)
	Destroy()
}

// Canvas is a retained list of filled rectangles redrawn every frame.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, c color.NRGBA)
	Destroy()
}

// Stage is the capability surface an entity needs from the host engine.
// Entities hold no engine types; everything frame-rate-, input-, or
// render-shaped goes through here, which keeps entity logic testable
// without a display.
type Stage interface {
	// SpawnSprite creates a sprite for textureKey at (x, y). A dynamic
	// sprite gets a physics body with world-bounds collision; a
	// non-dynamic one is moved only by SetPosition and tweens.
	SpawnSprite(textureKey string, x, y float64, dynamic bool) Sprite
	SpawnLabel(text string, x, y float64) Label
	SpawnCanvas() Canvas

	// TweenTo animates the sprite linearly to (x, y) over the given
	// number of frames, replacing any tween already running on it.
	TweenTo(s Sprite, x, y float64, frames int)

	// ScheduleAfter runs fn once after the given number of frames, on
	// the game loop between updates.
	ScheduleAfter(frames int, fn func()) TimerHandle
	CancelScheduled(h TimerHandle)

	KeyDown(k Key) bool
	// PointerWorld returns the pointer position in world coordinates
	// (cursor adjusted by camera scroll).
	PointerWorld() (x, y float64)

	ShakeCamera(frames int, intensity float64)
	Emit(event string, value int)
}
