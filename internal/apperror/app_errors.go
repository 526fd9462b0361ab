package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotInGame        = errors.New("player is not in this game")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellOutOfRange   = errors.New("cell is out of range")
	ErrInvalidMark      = errors.New("invalid player mark")
	ErrSeatTaken        = errors.New("opponent seat is already taken")
	ErrSelfJoin         = errors.New("player cannot join their own game")
)
