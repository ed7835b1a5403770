package constants

// Terminal Projection
const (
	// ViewNearZ and ViewFarZ bound the visible slice of the track
	ViewNearZ = 4.0
	ViewFarZ  = -50.0

	// LaneColumns is the character width of one lane on screen
	LaneColumns = 9

	// PlayerRowOffset is how many rows above the bottom the player is drawn
	PlayerRowOffset = 4
)

// UI Text
const (
	GameTitle        = "CV Body Surfer"
	InstructionsText = "Move your body to switch lanes. Raise hands to jump, duck down to roll."
	KeyboardHelpText = "Keys: <-/-> lanes  ^ jump  v duck  c recalibrate  q quit"
	StartButtonText  = "Start Game"
	ReplayButtonText = "Play Again"
	GameOverText     = "Game Over!"
)
