package parameter

// Terminal view
const (
	// CellsPerUnitX is terminal columns per world unit across the rails
	CellsPerUnitX = 4.0

	// HUDHeight is the number of status rows at the top
	HUDHeight = 2

	// RailTiePeriod is rows per repeat of the scrolling rail pattern
	RailTiePeriod = 3
)

// Glyphs
const (
	ScoutGlyph      = '@'
	ScoutDuckGlyph  = '_'
	ScoutJumpGlyph  = '^'
	RailGlyph       = '|'
	RailTieGlyph    = '.'
	TunnelWallGlyph = '#'

	RoadBlockGlyph = 'X'
	HurdleGlyph    = '='
	GateGlyph      = 'n'
	TrainGlyph     = 'T'
)
