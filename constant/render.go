package constant

// Terminal layout
const (
	// HudTopRows holds level, score, lives and the question
	HudTopRows = 3

	// HudBottomRows holds the response text and progress bar
	HudBottomRows = 4

	// OverlayMaxWidth caps overlay box width in columns
	OverlayMaxWidth = 64

	// StarDensity is one background star per this many field cells
	StarDensity = 37
)

// Glyphs
const (
	GlyphPlayer     = '▲'
	GlyphProjectile = '•'
	GlyphExplosion  = '✶'
	GlyphLife       = '♥'
	GlyphStar       = '·'
	GlyphBarOn      = '█'
	GlyphBarOff     = '░'
)
