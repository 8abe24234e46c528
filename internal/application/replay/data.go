package replay

import "github.com/younwookim/catleap/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the intent for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump held
	A bool `json:"a,omitempty"` // Acknowledge pressed
}

// NewFrameInput captures an intent at the given frame
func NewFrameInput(frame int, in system.Intent) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		A: in.Acknowledge,
	}
}

// Intent converts the recorded frame back to an intent
func (fi FrameInput) Intent() system.Intent {
	return system.Intent{
		Left:        fi.L,
		Right:       fi.R,
		Jump:        fi.J,
		Acknowledge: fi.A,
	}
}

// ReplayData contains all data needed to replay a game session.
// The simulation has no randomness, so the start level and the
// frames are enough to reproduce a run.
type ReplayData struct {
	Version    string       `json:"version"`
	StartLevel int          `json:"startLevel"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
