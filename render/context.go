package render

import (
	"time"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/scene"
	"github.com/lixenwraith/space-engineer/system"
	"github.com/lixenwraith/space-engineer/vmath"
)

// Overlay is the screen box drawn over the frame, built by the scene flow
type Overlay = scene.View

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now time.Time

	// Screen dimensions (terminal size), filled by the orchestrator
	ScreenWidth  int
	ScreenHeight int

	// Encounter is nil outside of play
	Encounter *system.Encounter

	// Overlay is nil when nothing is drawn over the field
	Overlay *Overlay
}

// FieldArea returns the terminal rectangle used for the play field
func (rc *RenderContext) FieldArea() (x, y, w, h int) {
	y = constant.HudTopRows
	h = rc.ScreenHeight - constant.HudTopRows - constant.HudBottomRows
	return 0, y, rc.ScreenWidth, max(h, 0)
}

// FieldToScreen maps play-field pixels onto the field area
// Returns visible=false for positions outside the field
func (rc *RenderContext) FieldToScreen(p vmath.Vec2) (int, int, bool) {
	if rc.Encounter == nil {
		return 0, 0, false
	}
	bounds := rc.Encounter.Bounds()
	ax, ay, aw, ah := rc.FieldArea()
	if aw == 0 || ah == 0 || bounds.W <= 0 || bounds.H <= 0 {
		return 0, 0, false
	}
	if p.X < bounds.X || p.X >= bounds.X+bounds.W || p.Y < bounds.Y || p.Y >= bounds.Y+bounds.H {
		return 0, 0, false
	}
	sx := ax + int((p.X-bounds.X)/bounds.W*float64(aw))
	sy := ay + int((p.Y-bounds.Y)/bounds.H*float64(ah))
	return sx, sy, true
}
