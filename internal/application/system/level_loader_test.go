package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

func intPtr(v int) *int { return &v }

func loadBundledCatalog(t *testing.T) []entity.LevelTemplate {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return BuildCatalog(cfg)
}

func TestBuildCatalog_Bundled(t *testing.T) {
	catalog := loadBundledCatalog(t)
	require.Len(t, catalog, 5)

	for i, tpl := range catalog {
		assert.NotEmpty(t, tpl.Name, "level %d", i)
		assert.NotEmpty(t, tpl.Platforms, "level %d", i)
		assert.NotEmpty(t, tpl.Message, "level %d", i)
		assert.False(t, tpl.Goal.Empty(), "level %d", i)
	}

	assert.Nil(t, catalog[0].Auto)
	assert.Nil(t, catalog[1].Auto)
	require.NotNil(t, catalog[2].Auto)
	assert.Equal(t, 240, catalog[2].Auto.Period)
	assert.Equal(t, 72, catalog[2].Auto.Up)
	assert.Equal(t, 56, catalog[2].Auto.PhaseStep)
}

func TestBuildCatalog_MessageFallback(t *testing.T) {
	cfg := &config.GameConfig{
		Campaign: &config.CampaignConfig{Messages: []string{"first"}},
		Levels: []*config.LevelConfig{
			{Name: "a"},
			{Name: "b"},
		},
	}

	catalog := BuildCatalog(cfg)
	require.Len(t, catalog, 2)
	assert.Equal(t, "first", catalog[0].Message)
	assert.Equal(t, config.DefaultLevelMessage, catalog[1].Message)
}

func TestLoadLevelTemplate(t *testing.T) {
	physics := config.DefaultPhysicsConfig()

	t.Run("timed spike defaults", func(t *testing.T) {
		cfg := &config.LevelConfig{
			Obstacles: config.ObstaclesConfig{
				TimedSpikes: []config.TimedSpikeConfig{
					{RectConfig: config.RectConfig{X: 10, Y: 20, W: 30, H: 10}},
				},
			},
		}

		tpl := LoadLevelTemplate(cfg, "", physics)
		require.Len(t, tpl.TimedSpikes, 1)
		assert.Equal(t, 60, tpl.TimedSpikes[0].Period)
		assert.Equal(t, 30, tpl.TimedSpikes[0].Up)
		assert.Equal(t, 0, tpl.TimedSpikes[0].Phase)
	})

	t.Run("explicit zero up is kept", func(t *testing.T) {
		cfg := &config.LevelConfig{
			Obstacles: config.ObstaclesConfig{
				TimedSpikes: []config.TimedSpikeConfig{
					{Period: intPtr(90), Up: intPtr(0), Phase: intPtr(7)},
				},
			},
		}

		tpl := LoadLevelTemplate(cfg, "", physics)
		require.Len(t, tpl.TimedSpikes, 1)
		assert.Equal(t, 90, tpl.TimedSpikes[0].Period)
		assert.Equal(t, 0, tpl.TimedSpikes[0].Up)
		assert.Equal(t, 7, tpl.TimedSpikes[0].Phase)
	})

	t.Run("clamps defects", func(t *testing.T) {
		cfg := &config.LevelConfig{
			Goal:      config.RectConfig{W: -4, H: 24},
			Platforms: []config.RectConfig{{X: 0, Y: 0, W: 100, H: -1}},
			Obstacles: config.ObstaclesConfig{
				TimedSpikes: []config.TimedSpikeConfig{
					{Period: intPtr(-5), Up: intPtr(500)},
				},
				Patrols: []config.PatrolConfig{
					{RectConfig: config.RectConfig{X: 500, W: 20, H: 10}, MinX: 100, MaxX: 110, Speed: 1, Dir: -3},
				},
			},
		}

		tpl := LoadLevelTemplate(cfg, "", physics)
		assert.Equal(t, 0.0, tpl.Goal.W)
		assert.Equal(t, 0.0, tpl.Platforms[0].H)

		require.Len(t, tpl.TimedSpikes, 1)
		assert.Equal(t, 60, tpl.TimedSpikes[0].Period)
		assert.Equal(t, 60, tpl.TimedSpikes[0].Up)

		require.Len(t, tpl.Patrols, 1)
		p := tpl.Patrols[0]
		assert.Equal(t, 120.0, p.MaxX)
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, -1, p.Dir)
		assert.Equal(t, physics.Hazards.PatrolPad, p.Pad)
	})

	t.Run("auto hazards take default period", func(t *testing.T) {
		cfg := &config.LevelConfig{
			AutoHazards: &config.AutoHazardConfig{Up: 90, PhaseStep: 10, SpikeHeight: 16, ThinMaxHeight: 30},
		}

		tpl := LoadLevelTemplate(cfg, "", physics)
		require.NotNil(t, tpl.Auto)
		assert.Equal(t, 60, tpl.Auto.Period)
		assert.Equal(t, 60, tpl.Auto.Up)
	})
}

func TestGenerateAutoHazards(t *testing.T) {
	platforms := []entity.Rect{
		{X: 0, Y: 380, W: 800, H: 70},
		{X: 100, Y: 300, W: 105, H: 22},
		{X: 235, Y: 260, W: 105, H: 22},
		{X: 370, Y: 220, W: 105, H: 22},
		{X: 505, Y: 180, W: 105, H: 22},
		{X: 640, Y: 150, W: 115, H: 22},
	}
	auto := &entity.AutoHazards{Period: 240, Up: 72, PhaseStep: 56, SpikeHeight: 16, ThinMaxHeight: 30}

	got := GenerateAutoHazards(platforms, auto)
	require.Len(t, got, 5)

	phases := make([]int, len(got))
	for i, h := range got {
		phases[i] = h.Phase
		assert.Equal(t, 240, h.Period)
		assert.Equal(t, 72, h.Up)
	}
	assert.Equal(t, []int{0, 184, 128, 72, 16}, phases)

	assert.Equal(t, entity.Rect{X: 100, Y: 284, W: 105, H: 16}, got[0].Rect)

	assert.Nil(t, GenerateAutoHazards(platforms, nil))
	assert.Nil(t, GenerateAutoHazards(platforms, &entity.AutoHazards{}))
}

func TestLevelLoader_Clamp(t *testing.T) {
	loader := NewLevelLoader(loadBundledCatalog(t))

	assert.Equal(t, 5, loader.Count())
	assert.Equal(t, 0, loader.Load(-5).Index)
	assert.Equal(t, 4, loader.Load(99).Index)
	assert.Equal(t, 2, loader.Load(2).Index)
}

func TestLevelLoader_Empty(t *testing.T) {
	loader := NewLevelLoader(nil)

	assert.Equal(t, 0, loader.Count())
	assert.Nil(t, loader.Load(0))
	assert.Nil(t, loader.Template(0))
}

func TestLevelLoader_HazardOrder(t *testing.T) {
	loader := NewLevelLoader(loadBundledCatalog(t))

	level := loader.Load(2)
	require.NotNil(t, level)
	require.Len(t, level.Hazards, 8)

	kinds := make([]entity.HazardKind, len(level.Hazards))
	for i, h := range level.Hazards {
		kinds[i] = h.Kind()
	}
	assert.Equal(t, []entity.HazardKind{
		entity.HazardStatic,
		entity.HazardTimed,
		entity.HazardTimed, entity.HazardTimed, entity.HazardTimed, entity.HazardTimed, entity.HazardTimed,
		entity.HazardPatrol,
	}, kinds)

	// Authored timed spikes come before generated strips
	timed := level.TimedHazards()
	require.Len(t, timed, 6)
	assert.Equal(t, 90, timed[0].Period)
	assert.Equal(t, 240, timed[1].Period)
}

func TestLevelLoader_ReloadIsIdempotent(t *testing.T) {
	loader := NewLevelLoader(loadBundledCatalog(t))
	hazards := NewHazardSystem(entity.HazardPadding{X: 6, Y: 6})

	first := loader.Load(2)
	startX := first.Patrols()[0].X
	for range 50 {
		hazards.Advance(first)
	}
	assert.NotEqual(t, startX, first.Patrols()[0].X)

	second := loader.Load(2)
	require.Len(t, second.Hazards, len(first.Hazards))
	assert.Equal(t, startX, second.Patrols()[0].X)
	assert.Equal(t, 1, second.Patrols()[0].Dir)

	third := loader.Load(2)
	for i := range second.Hazards {
		assert.Equal(t, second.Hazards[i], third.Hazards[i])
	}

	// Template untouched by runtime movement
	assert.Equal(t, startX, loader.Template(2).Patrols[0].X)
}
