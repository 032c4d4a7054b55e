package editor

import "image/color"

// Palette is the fixed set of fill colors handed out to committed
// polygons. CommitPolygon picks Palette[count % len(Palette)], where
// count is the number of polygons already committed, so colors repeat
// deterministically after eight shapes.
var Palette = []color.NRGBA{
	{R: 0xE6, G: 0x19, B: 0x4B, A: 0xFF}, // red
	{R: 0xF5, G: 0x82, B: 0x31, A: 0xFF}, // orange
	{R: 0xFF, G: 0xE1, B: 0x19, A: 0xFF}, // yellow
	{R: 0x3C, G: 0xB4, B: 0x4B, A: 0xFF}, // green
	{R: 0x42, G: 0xD4, B: 0xF4, A: 0xFF}, // cyan
	{R: 0x43, G: 0x63, B: 0xD8, A: 0xFF}, // blue
	{R: 0x91, G: 0x1E, B: 0xB4, A: 0xFF}, // purple
	{R: 0xF0, G: 0x32, B: 0xE6, A: 0xFF}, // magenta
}
