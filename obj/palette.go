package obj

import (
	"hash/fnv"
	"image/color"
)

// Palette holds the fixed identity colors. Entry 0 is white, i.e. no
// tint, and is reserved for the local player. Remote players get one of
// the remaining entries.
var Palette = []color.NRGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // identity
	{R: 0xef, G: 0x53, B: 0x50, A: 0xff}, // red
	{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}, // blue
	{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}, // green
	{R: 0xff, G: 0xca, B: 0x28, A: 0xff}, // amber
	{R: 0xab, G: 0x47, B: 0xbc, A: 0xff}, // purple
	{R: 0xff, G: 0x70, B: 0x43, A: 0xff}, // orange
	{R: 0x26, G: 0xc6, B: 0xda, A: 0xff}, // teal
}

// ColorFor picks the identity tint for a player. The local player always
// gets entry 0. Otherwise an explicit in-range index wins; failing that
// the id is hashed into the non-identity entries, so a given remote id
// renders the same color every session.
func ColorFor(id string, explicit int, local bool) color.NRGBA {
	if local {
		return Palette[0]
	}
	if explicit > 0 && explicit < len(Palette) {
		return Palette[explicit]
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	return Palette[int(h.Sum32()%uint32(len(Palette)-1))+1]
}
