package entity

import (
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"

	// markTie is an internal result value, never stored on the board.
	markTie Mark = "-"
)

// Other returns the opposing mark. MarkX always moves first, so the
// turn toggles between exactly these two values.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

const BoardSize = 3

// Cell addresses a board square, row-major, indices in [0, BoardSize).
type Cell struct {
	Row int
	Col int
}

// WinLines enumerates the eight winning triples in fixed order:
// rows top to bottom, columns left to right, then the two diagonals.
var WinLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]Mark

// Game is a single tic-tac-toe match. A nil PlayerO means the game is
// still waiting for an opponent. A finished game with an empty Winner
// is a draw.
type Game struct {
	Board    Board
	PlayerX  *Player
	PlayerO  *Player
	Turn     Mark
	WithBot  bool
	Finished bool
	Winner   Mark
}

// NewGame creates a fresh game with the initiating player seated as X.
func NewGame(playerID int64, playerName string) *Game {
	return &Game{
		PlayerX: &Player{ID: playerID, Name: playerName, Mark: MarkX},
		Turn:    MarkX,
	}
}

// JoinPlayerO seats the second player. The seat must be free and the
// joining identity must differ from the first player's.
func (that *Game) JoinPlayerO(playerID int64, playerName string) error {
	if that.PlayerO != nil {
		return apperror.ErrSeatTaken
	}

	if that.PlayerX != nil && that.PlayerX.ID == playerID {
		return apperror.ErrSelfJoin
	}

	that.PlayerO = &Player{ID: playerID, Name: playerName, Mark: MarkO}

	return nil
}

// SeatBot fills the O seat with the synthetic bot identity and switches
// the game into with-bot mode.
func (that *Game) SeatBot(botName string) {
	that.PlayerO = &Player{ID: BotID, Name: botName, Mark: MarkO}
	that.WithBot = true
}

// MakeTurn places mark at (row, col). Any rejection leaves the game
// completely unchanged.
func (that *Game) MakeTurn(mark Mark, row, col int) error {
	if that.Finished {
		return apperror.ErrGameFinished
	}

	if mark != MarkX && mark != MarkO {
		return apperror.ErrInvalidMark
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return apperror.ErrCellOutOfRange
	}

	if that.Board[row][col] != MarkEmpty {
		return apperror.ErrCellOccupied
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	that.Board[row][col] = mark

	switch result := that.determineResult(); result {
	case MarkX, MarkO:
		that.Finished = true
		that.Winner = result
	case markTie:
		that.Finished = true
	default:
		that.Turn = mark.Other()
	}

	return nil
}

// determineResult reports the winning mark, markTie when the board is
// full without a winner, and MarkEmpty while the game can continue.
func (that *Game) determineResult() Mark {
	for _, line := range WinLines {
		a := that.CellAt(line[0])
		if a != MarkEmpty && a == that.CellAt(line[1]) && a == that.CellAt(line[2]) {
			return a
		}
	}

	for row := range that.Board {
		for col := range that.Board[row] {
			if that.Board[row][col] == MarkEmpty {
				return MarkEmpty
			}
		}
	}

	return markTie
}

func (that *Game) CellAt(cell Cell) Mark {
	return that.Board[cell.Row][cell.Col]
}

func (that *Game) IsWaiting() bool {
	return that.PlayerO == nil
}

func (that *Game) IsFinished() bool {
	return that.Finished
}

func (that *Game) IsOngoing() bool {
	return !that.Finished && that.PlayerO != nil
}

// CurrentPlayer returns the player whose turn it is, or nil once the
// game is finished or before the opponent has joined.
func (that *Game) CurrentPlayer() *Player {
	if that.Finished {
		return nil
	}
	return that.playerByMark(that.Turn)
}

// WinnerPlayer returns the winning player, or nil for a draw or an
// unfinished game.
func (that *Game) WinnerPlayer() *Player {
	if that.Winner == MarkEmpty {
		return nil
	}
	return that.playerByMark(that.Winner)
}

// PlayerByID returns the seated player with the given identity, or nil.
func (that *Game) PlayerByID(playerID int64) *Player {
	if that.PlayerX != nil && that.PlayerX.ID == playerID {
		return that.PlayerX
	}
	if that.PlayerO != nil && that.PlayerO.ID == playerID {
		return that.PlayerO
	}
	return nil
}

// BotPlayer returns the seated bot, or nil in a human-vs-human game.
func (that *Game) BotPlayer() *Player {
	if !that.WithBot {
		return nil
	}
	if that.PlayerX != nil && that.PlayerX.IsBot() {
		return that.PlayerX
	}
	if that.PlayerO != nil && that.PlayerO.IsBot() {
		return that.PlayerO
	}
	return nil
}

func (that *Game) playerByMark(mark Mark) *Player {
	switch mark {
	case MarkX:
		return that.PlayerX
	case MarkO:
		return that.PlayerO
	default:
		return nil
	}
}
