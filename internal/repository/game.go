package repository

import (
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository maps a chat session to its single live game. Saving
// under an existing chat id replaces the prior game wholesale.
type GameRepository interface {
	Save(chatID int64, game *entity.Game)
	GetByChatID(chatID int64) (*entity.Game, error)
	DeleteByChatID(chatID int64)
}

type memoryGames struct {
	mu    sync.RWMutex
	games map[int64]*entity.Game
}

func NewGameRepository() GameRepository {
	return &memoryGames{
		games: make(map[int64]*entity.Game),
	}
}

func (that *memoryGames) Save(chatID int64, game *entity.Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[chatID] = game
}

func (that *memoryGames) GetByChatID(chatID int64) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[chatID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (that *memoryGames) DeleteByChatID(chatID int64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, chatID)
}
