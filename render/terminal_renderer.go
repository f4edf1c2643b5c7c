package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/player"
	"github.com/lixenwraith/surf-scout/vmath"
)

// HUD is the status line content
type HUD struct {
	Phase      string
	Score      float64
	Lives      int
	MaxLives   int
	Difficulty int
	Speed      float64
	Sprint     bool
}

// TerminalRenderer is a Sink drawing a top-down view: columns across the
// rails, rows along the track with the far boundary at the top
type TerminalRenderer struct {
	screen    tcell.Screen
	near, far float64
	width     int
	height    int
	base      tcell.Style
}

// NewTerminalRenderer creates a renderer for the scene span [near, far]
func NewTerminalRenderer(screen tcell.Screen, near, far float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		near:   near,
		far:    far,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Begin clears the screen and picks up the current size
func (r *TerminalRenderer) Begin() {
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', r.base)
}

// End presents the frame
func (r *TerminalRenderer) End() {
	r.screen.Show()
}

// Draw implements Sink
func (r *TerminalRenderer) Draw(kind EntityKind, transform vmath.Mat4, v Variant) {
	switch kind {
	case EntityTunnel:
		r.drawTunnel(vmath.ComputeBound(v.Extents, transform))
	case EntityRail:
		r.drawRail(transform.Origin().X, v.Scroll)
	case EntityObstacle:
		r.drawObstacle(vmath.ComputeBound(v.Extents, transform), v)
	case EntityScoutPart:
		// One glyph for the whole scout, placed at the body
		if v.Part == player.PartBody {
			r.drawScout(transform.Origin(), v.Pose)
		}
	}
}

// DrawHUD writes the two status rows
func (r *TerminalRenderer) DrawHUD(h HUD) {
	lives := strings.Repeat("♥", h.Lives) + strings.Repeat("·", max(0, h.MaxLives-h.Lives))
	speed := fmt.Sprintf("%.1f", h.Speed)
	if h.Sprint {
		speed += "»"
	}
	status := fmt.Sprintf("SCORE %-8d LIVES %s  DIFF %-2d SPEED %s", int64(h.Score), lives, h.Difficulty, speed)
	r.drawText(0, 0, status, r.base.Foreground(RgbHUD))

	var msg string
	switch h.Phase {
	case "idle":
		msg = "SPACE to start  8/i jump  j/l switch  k duck  s sprint  +/- difficulty  p pause  q quit"
	case "paused":
		msg = "PAUSED"
	case "game_over":
		msg = fmt.Sprintf("GAME OVER  final score %d  SPACE to restart", int64(h.Score))
	}
	if msg != "" {
		r.drawText(0, 1, msg, r.base.Foreground(RgbHUDAlert).Bold(true))
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// project maps a world (x, z) to a screen cell
func (r *TerminalRenderer) project(x, z float64) (col, row int) {
	col = r.width/2 + int(math.Round(x*parameter.CellsPerUnitX))
	rows := r.height - parameter.HUDHeight
	t := (z + r.far) / (r.far - r.near)
	row = parameter.HUDHeight + int(math.Round(t*float64(rows-1)))
	return col, row
}

func (r *TerminalRenderer) inField(col, row int) bool {
	return col >= 0 && col < r.width && row >= parameter.HUDHeight && row < r.height
}

func (r *TerminalRenderer) drawTunnel(b vmath.Bound3) {
	style := r.base.Foreground(RgbTunnelWall)
	left, _ := r.project(b.X.Min, 0)
	right, _ := r.project(b.X.Max, 0)
	for row := parameter.HUDHeight; row < r.height; row++ {
		if r.inField(left, row) {
			r.screen.SetContent(left, row, parameter.TunnelWallGlyph, nil, style)
		}
		if r.inField(right, row) {
			r.screen.SetContent(right, row, parameter.TunnelWallGlyph, nil, style)
		}
	}
}

// drawRail draws a dashed rail whose pattern shifts down as scroll grows
func (r *TerminalRenderer) drawRail(x, scroll float64) {
	col, _ := r.project(x, 0)
	shift := int(scroll * parameter.RailTiePeriod)
	rail := r.base.Foreground(RgbRail)
	tie := r.base.Foreground(RgbRailTie)
	for row := parameter.HUDHeight; row < r.height; row++ {
		if !r.inField(col, row) {
			continue
		}
		phase := ((row-shift)%parameter.RailTiePeriod + parameter.RailTiePeriod) % parameter.RailTiePeriod
		if phase == 0 {
			r.screen.SetContent(col, row, parameter.RailTieGlyph, nil, tie)
		} else {
			r.screen.SetContent(col, row, parameter.RailGlyph, nil, rail)
		}
	}
}

var obstacleLook = map[obstacle.Visual]struct {
	glyph rune
	color tcell.Color
}{
	obstacle.VisualRoadBlock: {parameter.RoadBlockGlyph, RgbRoadBlock},
	obstacle.VisualHurdle:    {parameter.HurdleGlyph, RgbHurdle},
	obstacle.VisualGate:      {parameter.GateGlyph, RgbGate},
	obstacle.VisualTrain:     {parameter.TrainGlyph, RgbTrain},
}

func (r *TerminalRenderer) drawObstacle(b vmath.Bound3, v Variant) {
	look, ok := obstacleLook[v.Visual]
	if !ok {
		look.glyph, look.color = '?', RgbHUD
	}
	if v.Spent {
		look.color = RgbSpent
	}
	style := r.base.Foreground(look.color)

	c0, r0 := r.project(b.X.Min, b.Z.Min)
	c1, r1 := r.project(b.X.Max, b.Z.Max)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if r.inField(col, row) {
				r.screen.SetContent(col, row, look.glyph, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawScout(at vmath.Vec3F, pose Pose) {
	glyph := parameter.ScoutGlyph
	switch pose {
	case PoseDuck:
		glyph = parameter.ScoutDuckGlyph
	case PoseAir:
		glyph = parameter.ScoutJumpGlyph
	}
	col, row := r.project(at.X, at.Z)
	if r.inField(col, row) {
		r.screen.SetContent(col, row, glyph, nil, r.base.Foreground(RgbScout).Bold(true))
	}
}
