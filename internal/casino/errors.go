package casino

import "errors"

// Rejection reasons. A rejected action leaves the game untouched; callers
// match these with errors.Is.
var (
	ErrGameOver            = errors.New("casino: game is over")
	ErrUnknownPlayer       = errors.New("casino: unknown player")
	ErrNotYourTurn         = errors.New("casino: not your turn")
	ErrEmptyHand           = errors.New("casino: hand is empty")
	ErrHandIndex           = errors.New("casino: hand index out of range")
	ErrTableIndex          = errors.New("casino: bad table index")
	ErrEmptyBuild          = errors.New("casino: build needs at least one table card")
	ErrFaceCardInBuild     = errors.New("casino: face cards cannot be built")
	ErrBuildSum            = errors.New("casino: cards do not sum to declared value")
	ErrNoCaptureCard       = errors.New("casino: no card in hand to capture the build")
	ErrCaptureCardReserved = errors.New("casino: card is needed to capture an owned build")
	ErrMustCapture         = errors.New("casino: must capture while owning a build")
	ErrUnknownBuild        = errors.New("casino: unknown build")
	ErrMultiBuild          = errors.New("casino: multi-builds cannot be modified")
	ErrValueNotIncreasing  = errors.New("casino: new build value must be higher")
	ErrUnknownAction       = errors.New("casino: unknown action")
)
