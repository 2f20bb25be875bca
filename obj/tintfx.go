package obj

import "image/color"

// tint layers, bottom to top. The sprite shows the topmost occupied
// layer; clearing a layer re-exposes the one below. This replaces the
// racing independent revert timers the old client had: a damage flash
// during a boost reverts to the boost tint, not past it to base.
const (
	layerBase = iota
	layerBoost
	layerFlash
	layerCount
)

// tintFX is the per-entity tint register. Base is always occupied and
// set once at construction. At most one flash revert timer is pending
// at a time; a new flash supersedes it.
type tintFX struct {
	stage  Stage
	sprite Sprite

	colors   [layerCount]color.NRGBA
	occupied [layerCount]bool

	flashTimer TimerHandle
}

func newTintFX(stage Stage, sprite Sprite, base color.NRGBA) *tintFX {
	f := &tintFX{stage: stage, sprite: sprite}
	f.colors[layerBase] = base
	f.occupied[layerBase] = true
	f.apply()
	return f
}

// Flash shows c for the given number of frames, then reverts. Replaces
// any pending flash.
func (f *tintFX) Flash(c color.NRGBA, frames int) {
	if f.flashTimer != 0 {
		f.stage.CancelScheduled(f.flashTimer)
	}
	f.colors[layerFlash] = c
	f.occupied[layerFlash] = true
	f.apply()
	f.flashTimer = f.stage.ScheduleAfter(frames, func() {
		f.flashTimer = 0
		f.occupied[layerFlash] = false
		f.apply()
	})
}

// SetBoost shows c until ClearBoost, underneath any flash.
func (f *tintFX) SetBoost(c color.NRGBA) {
	f.colors[layerBoost] = c
	f.occupied[layerBoost] = true
	f.apply()
}

func (f *tintFX) ClearBoost() {
	f.occupied[layerBoost] = false
	f.apply()
}

// Reset drops every transient layer and cancels the flash timer,
// restoring the base tint.
func (f *tintFX) Reset() {
	if f.flashTimer != 0 {
		f.stage.CancelScheduled(f.flashTimer)
		f.flashTimer = 0
	}
	f.occupied[layerBoost] = false
	f.occupied[layerFlash] = false
	f.apply()
}

func (f *tintFX) apply() {
	for layer := layerCount - 1; layer >= 0; layer-- {
		if f.occupied[layer] {
			f.sprite.SetTint(f.colors[layer])
			return
		}
	}
}

// Visible returns the tint currently shown, for tests and the HUD.
func (f *tintFX) Visible() color.NRGBA {
	for layer := layerCount - 1; layer >= 0; layer-- {
		if f.occupied[layer] {
			return f.colors[layer]
		}
	}
	return f.colors[layerBase]
}
