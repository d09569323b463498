package game

// Input is the set of logical keys held during one tick. Shoot and Pause
// act once per press; the rest act for as long as they are held.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Shoot   bool
	Pause   bool
	Restart bool
	Quit    bool
}

// edges turns held Shoot/Pause state into one-shot presses.
type edges struct {
	shootHeld bool
	pauseHeld bool
}

// pause reports a fresh press of the pause key.
func (e *edges) pause(in Input) bool {
	pressed := in.Pause && !e.pauseHeld
	e.pauseHeld = in.Pause
	return pressed
}

// shoot reports a fresh press of the shoot key.
func (e *edges) shoot(in Input) bool {
	pressed := in.Shoot && !e.shootHeld
	e.shootHeld = in.Shoot
	return pressed
}
