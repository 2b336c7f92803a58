package core

// Intent represents a semantic input intent, abstracted from physical key
// presses. The platform maps keys to intents; the game consumes intents.
type Intent int

const (
	IntentNone  Intent = iota
	IntentUp           // steer up
	IntentDown         // steer down
	IntentLeft         // steer left; adjust speed down in menu/pause
	IntentRight        // steer right; adjust speed up in menu/pause
	IntentStart        // start from menu, resume from pause
	IntentResume       // resume from pause
	IntentPause        // pause/unpause while alive
	IntentRestart      // full session reset keeping the configured speed
	IntentSpeedUp      // speed +1, clamped
	IntentSpeedDown    // speed -1, clamped
	IntentSound        // sound on/off toggle (handled by the platform)
	IntentQuit         // exit the process
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentStart:
		return "Start"
	case IntentResume:
		return "Resume"
	case IntentPause:
		return "Pause"
	case IntentRestart:
		return "Restart"
	case IntentSpeedUp:
		return "SpeedUp"
	case IntentSpeedDown:
		return "SpeedDown"
	case IntentSound:
		return "Sound"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the unit vector for a steering intent, and whether the
// intent is a steering intent at all.
func (i Intent) Direction() (Vec, bool) {
	switch i {
	case IntentUp:
		return Up, true
	case IntentDown:
		return Down, true
	case IntentLeft:
		return Left, true
	case IntentRight:
		return Right, true
	default:
		return Vec{}, false
	}
}

// InputFrame holds the intents triggered during a single render frame.
// The platform fills it from key presses and hands it to the game once per
// frame; the game drains it and the platform clears it afterwards.
type InputFrame struct {
	// Intents maps intents to whether they were triggered this frame.
	Intents map[Intent]bool

	// Steering preserves the order of direction presses so the last valid
	// press within a frame wins, matching keyboard semantics.
	Steering []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as triggered for this frame.
func (f *InputFrame) Set(i Intent) {
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
	if _, ok := i.Direction(); ok {
		f.Steering = append(f.Steering, i)
	}
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
	f.Steering = f.Steering[:0]
}
