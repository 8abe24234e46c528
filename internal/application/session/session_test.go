package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/catleap/internal/application/state"
	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

var (
	testFloor = entity.Rect{X: 0, Y: 380, W: 800, H: 70}
	// the player stands exactly on the floor
	testStart = entity.Point{X: 100, Y: 332}
	farGoal   = entity.Rect{X: 760, Y: 100, W: 24, H: 24}
	// overlaps the player at testStart
	nearGoal = entity.Rect{X: 110, Y: 340, W: 24, H: 24}
)

func createTestLevel(name, message string, goal entity.Rect) entity.LevelTemplate {
	return entity.LevelTemplate{
		Name:      name,
		Message:   message,
		Start:     testStart,
		Goal:      goal,
		Platforms: []entity.Rect{testFloor},
	}
}

func createTestSession(t *testing.T, catalog ...entity.LevelTemplate) *Session {
	t.Helper()
	s, err := New(catalog, config.DefaultPhysicsConfig(), "the end")
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		_, err := New(nil, nil, "")
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("starts playing at level 0", func(t *testing.T) {
		s := createTestSession(t, createTestLevel("a", "", farGoal), createTestLevel("b", "", farGoal))

		assert.Equal(t, state.ModePlaying, s.Mode())
		assert.Equal(t, 0, s.LevelIndex())
		assert.Equal(t, 2, s.LevelCount())
		assert.Equal(t, 0, s.Frame())

		p := s.Player()
		assert.Equal(t, testStart.X, p.X)
		assert.Equal(t, testStart.Y, p.Y)
		assert.Equal(t, 36.0, p.W)
		assert.Equal(t, 48.0, p.H)
	})
}

func TestTick_RestingPlayerContinues(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", farGoal))

	for range 120 {
		require.Equal(t, StatusContinue, s.Tick(system.Intent{}))
	}
	p := s.Player()
	assert.True(t, p.OnGround)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 120, s.Frame())
}

func TestTick_GoalShowsMessage(t *testing.T) {
	second := createTestLevel("b", "", farGoal)
	second.Start = entity.Point{X: 400, Y: 200}
	s := createTestSession(t, createTestLevel("a", "first done", nearGoal), second)

	assert.Equal(t, StatusLevelComplete, s.Tick(system.Intent{}))
	assert.Equal(t, state.ModeShowingMessage, s.Mode())
	assert.Equal(t, 1, s.PendingLevel())
	assert.Equal(t, "first done", s.Snapshot().Message)

	// frozen: movement has no effect
	before := s.Player()
	for range 10 {
		assert.Equal(t, StatusWaiting, s.Tick(system.Intent{Right: true, Jump: true}))
	}
	assert.Equal(t, before, s.Player())
	assert.Equal(t, 0, s.LevelIndex())

	assert.Equal(t, StatusLevelLoaded, s.Tick(system.Intent{Acknowledge: true}))
	assert.Equal(t, state.ModePlaying, s.Mode())
	assert.Equal(t, 1, s.LevelIndex())

	p := s.Player()
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
	assert.Empty(t, s.Snapshot().Message)
}

func TestTick_FallbackMessage(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", nearGoal), createTestLevel("b", "", farGoal))

	require.Equal(t, StatusLevelComplete, s.Tick(system.Intent{}))
	assert.Equal(t, config.DefaultLevelMessage, s.Snapshot().Message)
}

func TestTick_FinalLevelRestarts(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", farGoal), createTestLevel("b", "", nearGoal))
	s.LoadLevel(1)

	assert.Equal(t, StatusGameComplete, s.Tick(system.Intent{}))
	assert.Equal(t, state.ModeShowingFinal, s.Mode())
	assert.Equal(t, "the end", s.Snapshot().Message)

	assert.Equal(t, StatusLevelLoaded, s.Tick(system.Intent{Acknowledge: true}))
	assert.Equal(t, state.ModePlaying, s.Mode())
	assert.Equal(t, 0, s.LevelIndex())
}

func TestTick_FallbackFinalMessage(t *testing.T) {
	s, err := New([]entity.LevelTemplate{createTestLevel("a", "", nearGoal)}, nil, "")
	require.NoError(t, err)

	require.Equal(t, StatusGameComplete, s.Tick(system.Intent{}))
	assert.Equal(t, config.DefaultFinalMessage, s.Snapshot().Message)
	assert.NotEqual(t, config.DefaultLevelMessage, s.Snapshot().Message)
}

func TestTick_TimedHazard(t *testing.T) {
	lvl := createTestLevel("a", "", farGoal)
	// overlaps the hazard box at testStart; raised for frames 30..59 of each cycle
	lvl.TimedSpikes = []entity.TimedHazard{
		{Rect: entity.Rect{X: 100, Y: 360, W: 36, H: 20}, Period: 60, Up: 30, Phase: 30},
	}
	s := createTestSession(t, lvl)

	for f := range 30 {
		require.Equal(t, StatusContinue, s.Tick(system.Intent{}), "frame %d", f)
	}

	require.Equal(t, 30, s.Frame())
	assert.Equal(t, StatusDied, s.Tick(system.Intent{}))
	assert.Equal(t, 1, s.Deaths())
	assert.Equal(t, state.ModePlaying, s.Mode())

	p := s.Player()
	assert.Equal(t, testStart.X, p.X)
	assert.Equal(t, testStart.Y, p.Y)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
}

func TestTick_StaticHazard(t *testing.T) {
	lvl := createTestLevel("a", "", farGoal)
	lvl.Spikes = []entity.StaticHazard{{Rect: entity.Rect{X: 100, Y: 360, W: 36, H: 20}}}
	s := createTestSession(t, lvl)

	assert.Equal(t, StatusDied, s.Tick(system.Intent{Right: true}))
	assert.Equal(t, testStart.X, s.Player().X)
}

func TestTick_PatrolHazard(t *testing.T) {
	lvl := createTestLevel("a", "", farGoal)
	lvl.Patrols = []entity.PatrolHazard{
		{Rect: entity.Rect{X: 300, Y: 362, W: 28, H: 18}, MinX: 0, MaxX: 800, Speed: 4, Dir: -1, Pad: 6},
	}
	s := createTestSession(t, lvl)

	died := false
	for range 60 {
		if s.Tick(system.Intent{}) == StatusDied {
			died = true
			break
		}
	}
	assert.True(t, died)

	// patrol restored from the template
	v := s.Snapshot()
	require.Len(t, v.Hazards, 1)
	assert.Equal(t, 300.0, v.Hazards[0].Rect.X)
}

func TestTick_FallOut(t *testing.T) {
	lvl := createTestLevel("a", "", farGoal)
	lvl.Platforms = nil
	lvl.Start = entity.Point{X: 100, Y: 100}
	s := createTestSession(t, lvl)

	var status Status
	ticks := 0
	for ticks < 200 {
		ticks++
		status = s.Tick(system.Intent{})
		if status != StatusContinue {
			break
		}
		require.LessOrEqual(t, s.Player().Y, entity.WorldHeight+200)
	}

	assert.Equal(t, StatusDied, status)
	assert.Greater(t, ticks, 1)
	assert.Equal(t, 100.0, s.Player().Y)
}

func TestTick_GoalBeatsHazard(t *testing.T) {
	lvl := createTestLevel("a", "", nearGoal)
	lvl.Spikes = []entity.StaticHazard{{Rect: entity.Rect{X: 100, Y: 360, W: 36, H: 20}}}
	s := createTestSession(t, lvl, createTestLevel("b", "", farGoal))

	assert.Equal(t, StatusLevelComplete, s.Tick(system.Intent{}))
	assert.Equal(t, 0, s.Deaths())
}

func TestTick_FrameAdvancesWhileFrozen(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", nearGoal), createTestLevel("b", "", farGoal))

	s.Tick(system.Intent{})
	require.True(t, s.Mode().Frozen())

	for range 5 {
		s.Tick(system.Intent{})
	}
	assert.Equal(t, 6, s.Frame())
}

func TestAcknowledge_WhilePlaying(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", farGoal))

	assert.False(t, s.Acknowledge())
	assert.Equal(t, StatusContinue, s.Tick(system.Intent{Acknowledge: true}))
	assert.Equal(t, state.ModePlaying, s.Mode())
}

func TestLoadLevel_Clamps(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", farGoal), createTestLevel("b", "", farGoal))

	s.LoadLevel(-3)
	assert.Equal(t, 0, s.LevelIndex())
	s.LoadLevel(42)
	assert.Equal(t, 1, s.LevelIndex())
}

func TestReplaceCatalog(t *testing.T) {
	s := createTestSession(t, createTestLevel("a", "", farGoal), createTestLevel("b", "", farGoal))
	s.LoadLevel(1)
	for range 10 {
		s.Tick(system.Intent{Right: true})
	}

	assert.ErrorIs(t, s.ReplaceCatalog(nil), ErrEmptyCatalog)

	moved := createTestLevel("b2", "", farGoal)
	moved.Start = entity.Point{X: 500, Y: 100}
	require.NoError(t, s.ReplaceCatalog([]entity.LevelTemplate{createTestLevel("a", "", farGoal), moved}))

	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, "b2", s.Snapshot().LevelName)
	assert.Equal(t, 500.0, s.Player().X)

	// a shorter catalog clamps the index
	require.NoError(t, s.ReplaceCatalog([]entity.LevelTemplate{createTestLevel("only", "", farGoal)}))
	assert.Equal(t, 0, s.LevelIndex())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Continue", StatusContinue.String())
	assert.Equal(t, "Died", StatusDied.String())
	assert.Equal(t, "LevelComplete", StatusLevelComplete.String())
	assert.Equal(t, "GameComplete", StatusGameComplete.String())
	assert.Equal(t, "LevelLoaded", StatusLevelLoaded.String())
	assert.Equal(t, "Waiting", StatusWaiting.String())
	assert.Equal(t, "Unknown", Status(42).String())
}
