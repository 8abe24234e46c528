package replay

import (
	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/application/state"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Frames          int
	Deaths          int
	LevelsCompleted int
	GameCompleted   int
	FinalLevel      int
	FinalMode       state.GameMode
}

// Run rewinds r and feeds every recorded intent to the session, one tick
// per frame
func Run(sess *session.Session, r *Replayer) Summary {
	r.Reset()
	sess.LoadLevel(r.StartLevel())

	var sum Summary
	for {
		in, ok := r.Next()
		if !ok {
			break
		}
		switch sess.Tick(in) {
		case session.StatusDied:
			sum.Deaths++
		case session.StatusLevelComplete:
			sum.LevelsCompleted++
		case session.StatusGameComplete:
			sum.LevelsCompleted++
			sum.GameCompleted++
		}
	}

	sum.Frames = r.CurrentFrame()
	sum.FinalLevel = sess.LevelIndex()
	sum.FinalMode = sess.Mode()
	return sum
}
