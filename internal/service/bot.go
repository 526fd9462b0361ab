package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

var (
	centerCell = entity.Cell{Row: 1, Col: 1}

	cornerCells = []entity.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	edgeCells   = []entity.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
)

type BotService interface {
	SelectMove(game *entity.Game) (entity.Cell, bool)
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// SelectMove picks a cell for the side to move, in strict priority:
// complete an own line, block the opponent's line, take the center,
// take a random empty corner, take a random empty edge. It reports
// false when the game is finished or the board is full.
func (that *botService) SelectMove(game *entity.Game) (entity.Cell, bool) {
	if game.IsFinished() {
		return entity.Cell{}, false
	}

	own := game.Turn

	if cell, ok := findCompletingCell(game, own); ok {
		return cell, true
	}

	if cell, ok := findCompletingCell(game, own.Other()); ok {
		return cell, true
	}

	if game.CellAt(centerCell) == entity.MarkEmpty {
		return centerCell, true
	}

	if cell, ok := randomEmptyCell(game, cornerCells); ok {
		return cell, true
	}

	return randomEmptyCell(game, edgeCells)
}

// MakeTurn selects and applies a move for the seated bot player.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	cell, ok := that.SelectMove(game)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, cell.Row, cell.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// findCompletingCell scans the win lines in their fixed order for a
// line holding two of mark and one empty cell, and returns that cell.
func findCompletingCell(game *entity.Game, mark entity.Mark) (entity.Cell, bool) {
	for _, line := range entity.WinLines {
		var marked int
		empty := entity.Cell{Row: -1, Col: -1}

		for _, cell := range line {
			switch game.CellAt(cell) {
			case mark:
				marked++
			case entity.MarkEmpty:
				empty = cell
			}
		}

		if marked == 2 && empty.Row >= 0 {
			return empty, true
		}
	}

	return entity.Cell{}, false
}

func randomEmptyCell(game *entity.Game, cells []entity.Cell) (entity.Cell, bool) {
	available := make([]entity.Cell, 0, len(cells))
	for _, cell := range cells {
		if game.CellAt(cell) == entity.MarkEmpty {
			available = append(available, cell)
		}
	}

	if len(available) == 0 {
		return entity.Cell{}, false
	}

	return available[rand.Intn(len(available))], true //nolint: gosec // it's ok
}
