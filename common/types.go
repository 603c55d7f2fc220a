// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is an RGB color used for terminal cell styling.
type Color struct {
	// R is the red channel (0-255).
	R uint8
	// G is the green channel (0-255).
	G uint8
	// B is the blue channel (0-255).
	B uint8
}

// Marker is a single world-space point drawn as one glyph after projection.
// This is the staging unit the scene hands to the renderer for point sprites
// such as the character body and heading indicator.
type Marker struct {
	// Position is the point in world space.
	Position [3]float32
	// Glyph is the rune drawn at the projected cell.
	Glyph rune
	// Color is the foreground color for the glyph.
	Color Color
}

// Segment is a world-space line segment drawn as a run of glyphs after
// projection. Used for the ground grid and other wireframe geometry.
type Segment struct {
	// From is the segment start point in world space.
	From [3]float32
	// To is the segment end point in world space.
	To [3]float32
	// Glyph is the rune repeated along the projected segment.
	Glyph rune
	// Color is the foreground color for the glyphs.
	Color Color
}
