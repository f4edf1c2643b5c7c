package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/player"
)

func testScene(t *testing.T) Scene {
	t.Helper()
	cfg := config.Default()
	pool := obstacle.NewPool(obstacle.DefaultCatalog(), cfg.SceneFar(), cfg.SceneNear(), cfg.Rails.Width)
	pool.Spawn(0, -1)
	pool.Spawn(3, 1)
	return Scene{
		Obstacles:    pool,
		Player:       player.NewMotion(player.ParamsFrom(cfg)),
		Near:         cfg.SceneNear(),
		Far:          cfg.SceneFar(),
		TunnelWidth:  cfg.TunnelWidth(),
		TunnelHeight: 3,
		RailWidth:    cfg.Rails.Width,
		ScoutVisible: true,
	}
}

func TestDrawEmitsEveryEntity(t *testing.T) {
	sc := testScene(t)
	var rec Recorder
	Draw(&rec, sc)

	assert.Equal(t, 1, rec.Count(EntityTunnel))
	assert.Equal(t, 3, rec.Count(EntityRail))
	assert.Equal(t, 2, rec.Count(EntityObstacle))
	assert.Equal(t, len(sc.Player.Parts()), rec.Count(EntityScoutPart))
	require.NotZero(t, rec.Count(EntityScoutPart))

	for _, c := range rec.Calls {
		if c.Kind == EntityScoutPart {
			assert.Equal(t, PoseRun, c.Variant.Pose)
		}
	}
}

func TestDrawHiddenScout(t *testing.T) {
	sc := testScene(t)
	sc.ScoutVisible = false
	var rec Recorder
	Draw(&rec, sc)

	assert.Zero(t, rec.Count(EntityScoutPart))
	assert.Equal(t, 2, rec.Count(EntityObstacle))
}

func TestDrawObstaclePlacement(t *testing.T) {
	sc := testScene(t)
	var rec Recorder
	Draw(&rec, sc)

	var obstacles []Call
	for _, c := range rec.Calls {
		if c.Kind == EntityObstacle {
			obstacles = append(obstacles, c)
		}
	}
	require.Len(t, obstacles, 2)

	origin := obstacles[0].Transform.Origin()
	assert.InDelta(t, -sc.RailWidth, origin.X, 1e-9)
	assert.InDelta(t, -sc.Far, origin.Z, 1e-9)
	assert.Equal(t, obstacle.VisualRoadBlock, obstacles[0].Variant.Visual)
	assert.False(t, obstacles[0].Variant.Spent)

	assert.Equal(t, obstacle.VisualTrain, obstacles[1].Variant.Visual)
	assert.Equal(t, 1, obstacles[1].Variant.Rail)
}

func TestDrawSpentObstacle(t *testing.T) {
	sc := testScene(t)
	sc.Obstacles.At(0).HitZoneActive = false
	var rec Recorder
	Draw(&rec, sc)

	for _, c := range rec.Calls {
		if c.Kind == EntityObstacle && c.Variant.Rail == -1 {
			assert.True(t, c.Variant.Spent)
		}
	}
}

func TestDrawWithoutPoolOrPlayer(t *testing.T) {
	var rec Recorder
	Draw(&rec, Scene{Near: -10, Far: 40, TunnelWidth: 4, TunnelHeight: 3, RailWidth: 1})

	assert.Len(t, rec.Calls, 4)
	rec.Reset()
	assert.Empty(t, rec.Calls)
}

func TestRailScroll(t *testing.T) {
	assert.InDelta(t, 0.0, RailScroll(0, 1, 2), 1e-12)
	assert.InDelta(t, 0.25, RailScroll(0.5, 1, 2), 1e-12)
	assert.InDelta(t, 0.5, RailScroll(5, 1, 2), 1e-12)
	assert.Zero(t, RailScroll(5, 0, 2))
	assert.Zero(t, RailScroll(5, 1, 0))
}

func TestEntityKindString(t *testing.T) {
	assert.Equal(t, "obstacle", EntityObstacle.String())
	assert.Equal(t, "unknown", EntityKind(99).String())
}
