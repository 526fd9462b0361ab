package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/entity"
)

var errMalformedCellData = errors.New("malformed cell data")

const (
	CommandNewGame = "tictactoe"
	CommandStop    = "stop"

	dataJoinO     = "join_o"
	dataPlayAgain = "play_again"

	actionMove = "move"
	actionNoop = "noop"
	actionWait = "wait"
)

var symbols = map[entity.Mark]string{
	entity.MarkEmpty: "·",
	entity.MarkX:     "❌",
	entity.MarkO:     "⭕",
}

// MarkSymbol returns the display symbol for a cell mark.
func MarkSymbol(mark entity.Mark) string {
	return symbols[mark]
}

// StatusText is the line shown above the board.
func StatusText(game *entity.Game) string {
	if game.IsFinished() {
		if winner := game.WinnerPlayer(); winner != nil {
			return fmt.Sprintf("🏆 %s %s wins!", MarkSymbol(winner.Mark), winner.Name)
		}
		return "🤝 It's a draw!"
	}

	if current := game.CurrentPlayer(); current != nil {
		return fmt.Sprintf("Tic-Tac-Toe\n\n%s %s's turn", MarkSymbol(current.Mark), current.Name)
	}

	return "Tic-Tac-Toe\n\nWaiting for opponent..."
}

// InviteText announces a fresh game that is waiting for an opponent.
func InviteText(game *entity.Game) string {
	return fmt.Sprintf("Tic-Tac-Toe\n\n%s %s wants to play!\nTap 'Join as %s' to start the game.",
		MarkSymbol(entity.MarkX), game.PlayerX.Name, MarkSymbol(entity.MarkO))
}

// BoardKeyboard builds the 3x3 grid for an ongoing game. Occupied
// cells become no-op buttons so a stale tap does nothing.
func BoardKeyboard(game *entity.Game) Keyboard {
	return boardGrid(game, false)
}

// WaitingKeyboard is the empty grid plus the join row shown while the
// game has no opponent yet.
func WaitingKeyboard() Keyboard {
	keyboard := make(Keyboard, 0, entity.BoardSize+1)
	for row := 0; row < entity.BoardSize; row++ {
		buttons := make([]Button, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			buttons = append(buttons, Button{
				Text: MarkSymbol(entity.MarkEmpty),
				Data: fmt.Sprintf("%s_%d_%d", actionWait, row, col),
			})
		}
		keyboard = append(keyboard, buttons)
	}

	return append(keyboard, []Button{{
		Text: fmt.Sprintf("Join as %s", MarkSymbol(entity.MarkO)),
		Data: dataJoinO,
	}})
}

// GameOverKeyboard is the disabled grid plus a play-again row.
func GameOverKeyboard(game *entity.Game) Keyboard {
	keyboard := boardGrid(game, true)

	return append(keyboard, []Button{{
		Text: "Play Again",
		Data: dataPlayAgain,
	}})
}

func boardGrid(game *entity.Game, disabled bool) Keyboard {
	keyboard := make(Keyboard, 0, entity.BoardSize+1)

	for row := 0; row < entity.BoardSize; row++ {
		buttons := make([]Button, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			mark := game.Board[row][col]

			action := actionMove
			if disabled || mark != entity.MarkEmpty {
				action = actionNoop
			}

			buttons = append(buttons, Button{
				Text: MarkSymbol(mark),
				Data: fmt.Sprintf("%s_%d_%d", action, row, col),
			})
		}
		keyboard = append(keyboard, buttons)
	}

	return keyboard
}

// parseCellData extracts the coordinates from callback data shaped
// like "move_1_2".
func parseCellData(data string) (row, col int, err error) {
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedCellData, data)
	}

	if row, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedCellData, data)
	}

	if col, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedCellData, data)
	}

	return row, col, nil
}
