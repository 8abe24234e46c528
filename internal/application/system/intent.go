package system

// Intent is the player input sampled once per tick.
// It is the only thing the simulation reads from the input devices.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool // held, not edge-detected

	// Acknowledge dismisses a message overlay. Producers report it only on
	// the tick a press starts.
	Acknowledge bool
}

// Horizontal returns -1, 0 or +1 for the held direction.
// Holding both directions cancels out.
func (i Intent) Horizontal() int {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	default:
		return 0
	}
}
