package render

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func Max(dst, src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Add performs additive blend with clamping (light accumulation)
func Add(dst, src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Scale multiplies every channel by f in [0,1]
func Scale(c RGB, f float64) RGB {
	return Blend(RGBBlack, c, f)
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{10, 12, 28}  // Deep space
	RgbStarDim    = RGB{70, 70, 100} // Background stars
	RgbStarBright = RGB{170, 170, 210}

	RgbEnemy         = RGB{255, 90, 90}   // Enemy word, untyped letters
	RgbEnemyTargeted = RGB{255, 200, 60}  // Engaged enemy
	RgbEnemyStunned  = RGB{180, 120, 255} // Knocked back, frozen
	RgbTypedLetter   = RGB{90, 90, 110}   // Consumed letters

	RgbPowerup         = RGB{80, 220, 255} // Powerup word
	RgbPowerupTargeted = RGB{140, 255, 200}

	RgbProjectile     = RGB{255, 255, 160}
	RgbProjectileLast = RGB{255, 255, 255}
	RgbExplosion      = RGB{255, 150, 40}
	RgbExplosionCore  = RGB{255, 240, 180}

	RgbPlayer      = RGB{120, 255, 120}
	RgbPlayerHurt  = RGB{255, 80, 80}
	RgbMissFlashBg = RGB{90, 10, 10}

	RgbHudText     = RGB{230, 230, 240}
	RgbHudDim      = RGB{140, 140, 160}
	RgbHudAccent   = RGB{255, 210, 80}
	RgbHudBg       = RGB{24, 26, 48}
	RgbLife        = RGB{255, 80, 120}
	RgbProgressOn  = RGB{80, 220, 120}
	RgbProgressOff = RGB{50, 55, 80}
	RgbBlank       = RGB{255, 210, 80}
	RgbFilled      = RGB{120, 255, 160}

	RgbOverlayBg     = RGB{16, 18, 40}
	RgbOverlayBorder = RGB{255, 210, 80}
	RgbOverlayTitle  = RGB{255, 210, 80}
	RgbOverlayText   = RGB{220, 220, 235}
	RgbOverlaySelect = RGB{80, 220, 255}
)
