package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	// ErrGameOver is returned for any mutation of a game that has ended.
	ErrGameOver          = errors.New("game is over")
	ErrNotOwner          = errors.New("game belongs to another player")
	ErrNoPendingQuestion = errors.New("no question has been served for this game")
	ErrStaleQuestion     = errors.New("question was superseded by a newer one")
)
