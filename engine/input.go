package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rennick7/arena/obj"
)

// Each logical key maps to its arrow and WASD aliases; either physical
// key counts as held.
var keyAliases = map[obj.Key][]ebiten.Key{
	obj.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	obj.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	obj.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	obj.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

func keyDown(k obj.Key) bool {
	for _, phys := range keyAliases[k] {
		if ebiten.IsKeyPressed(phys) {
			return true
		}
	}
	return false
}
