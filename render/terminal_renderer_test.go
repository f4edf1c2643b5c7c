package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/surf-scout/parameter"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestTerminalRendererDrawsScene(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen, -10, 40)
	sc := testScene(t)

	r.Begin()
	Draw(r, sc)
	r.End()

	text := screenText(screen)
	assert.Contains(t, text, string(parameter.TunnelWallGlyph))
	assert.Contains(t, text, string(parameter.RailGlyph))
	assert.Contains(t, text, string(parameter.RoadBlockGlyph))
	assert.Contains(t, text, string(parameter.TrainGlyph))
	assert.Contains(t, text, string(parameter.ScoutGlyph))
}

func TestTerminalRendererHiddenScout(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen, -10, 40)
	sc := testScene(t)
	sc.ScoutVisible = false

	r.Begin()
	Draw(r, sc)
	r.End()

	assert.NotContains(t, screenText(screen), string(parameter.ScoutGlyph))
}

func TestTerminalRendererFarObstacleAtTop(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen, -10, 40)
	r.Begin()

	col, row := r.project(0, -40)
	assert.Equal(t, 30, col)
	assert.Equal(t, parameter.HUDHeight, row)

	_, bottom := r.project(0, 10)
	assert.Equal(t, 29, bottom)
}

func TestTerminalRendererRailScrolls(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen, -10, 40)
	r.Begin()

	col, _ := r.project(-1, 0)
	row := 2 * parameter.RailTiePeriod

	r.drawRail(-1, 0)
	ch, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, parameter.RailTieGlyph, ch)

	r.drawRail(-1, 0.4)
	ch, _, _, _ = screen.GetContent(col, row)
	assert.Equal(t, parameter.RailGlyph, ch)
}

func TestTerminalRendererHUD(t *testing.T) {
	screen := newSimScreen(t, 100, 10)
	r := NewTerminalRenderer(screen, -10, 40)

	r.Begin()
	r.DrawHUD(HUD{Phase: "running", Score: 123.7, Lives: 2, MaxLives: 3, Difficulty: 4, Speed: 6, Sprint: true})
	status := rowText(screen, 0)
	assert.Contains(t, status, "SCORE 123")
	assert.Contains(t, status, "♥♥·")
	assert.Contains(t, status, "DIFF 4")
	assert.Contains(t, status, "6.0»")
	assert.Equal(t, strings.Repeat(" ", 100), rowText(screen, 1))

	r.Begin()
	r.DrawHUD(HUD{Phase: "game_over", Score: 88})
	assert.Contains(t, rowText(screen, 1), "GAME OVER  final score 88")
}
