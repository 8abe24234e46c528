package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/application/state"
	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

func createTestSession(t *testing.T) *session.Session {
	t.Helper()

	floor := entity.Rect{X: 0, Y: 380, W: 800, H: 70}
	levels := []entity.LevelTemplate{
		{
			Name:      "walk",
			Start:     entity.Point{X: 40, Y: 332},
			Goal:      entity.Rect{X: 200, Y: 340, W: 24, H: 24},
			Platforms: []entity.Rect{floor},
		},
		{
			Name:      "spikes",
			Start:     entity.Point{X: 40, Y: 332},
			Goal:      entity.Rect{X: 760, Y: 100, W: 24, H: 24},
			Platforms: []entity.Rect{floor},
			Spikes:    []entity.StaticHazard{{Rect: entity.Rect{X: 120, Y: 364, W: 40, H: 16}}},
		},
	}

	s, err := session.New(levels, config.DefaultPhysicsConfig(), "done")
	require.NoError(t, err)
	return s
}

// walkRightThenAck holds right for n frames and acknowledges on the last one
func walkRightThenAck(n int) ReplayData {
	data := CreateTestReplayData(n, system.Intent{Right: true})
	data.Frames = append(data.Frames, NewFrameInput(n, system.Intent{Acknowledge: true}))
	return data
}

func TestRun_CompletesLevelAndDies(t *testing.T) {
	sess := createTestSession(t)

	data := walkRightThenAck(120)
	// walk into the spikes on level 2
	for i := range 60 {
		data.Frames = append(data.Frames, NewFrameInput(121+i, system.Intent{Right: true}))
	}

	sum := Run(sess, NewReplayer(data))

	assert.Equal(t, 181, sum.Frames)
	assert.Equal(t, 1, sum.LevelsCompleted)
	assert.Equal(t, 0, sum.GameCompleted)
	assert.GreaterOrEqual(t, sum.Deaths, 1)
	assert.Equal(t, 1, sum.FinalLevel)
	assert.Equal(t, state.ModePlaying, sum.FinalMode)
}

func TestRun_IsDeterministic(t *testing.T) {
	data := walkRightThenAck(120)
	for i := range 200 {
		in := system.Intent{Right: i%3 != 0, Jump: i%40 == 0}
		data.Frames = append(data.Frames, NewFrameInput(121+i, in))
	}

	a := createTestSession(t)
	b := createTestSession(t)

	sumA := Run(a, NewReplayer(data))
	sumB := Run(b, NewReplayer(data))

	assert.Equal(t, sumA, sumB)
	assert.Equal(t, a.Player(), b.Player())
	assert.Equal(t, a.Frame(), b.Frame())
}

func TestRun_StartLevel(t *testing.T) {
	sess := createTestSession(t)

	data := CreateTestReplayData(10, system.Intent{})
	data.StartLevel = 1

	sum := Run(sess, NewReplayer(data))
	assert.Equal(t, 1, sum.FinalLevel)
	assert.Equal(t, 0, sum.Deaths)
}

func TestRun_RewindsReplayer(t *testing.T) {
	r := NewReplayer(walkRightThenAck(120))

	first := Run(createTestSession(t), r)
	again := Run(createTestSession(t), r)

	assert.Equal(t, first, again, "a consumed replayer runs again from frame 0")
	assert.Equal(t, r.TotalFrames(), again.Frames)
}
