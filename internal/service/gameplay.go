package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/entity"
)

type gameRepo interface {
	Save(chatID int64, game *entity.Game)
	GetByChatID(chatID int64) (*entity.Game, error)
	DeleteByChatID(chatID int64)
}

type GamePlayService interface {
	StartGame(chatID, playerID int64, playerName string, withBot bool) *entity.Game
	JoinGame(chatID, playerID int64, playerName string) (*entity.Game, error)
	MakeTurn(chatID, playerID int64, row, col int) (*entity.Game, error)
	ActiveGame(chatID int64) (*entity.Game, error)
	EndGame(chatID int64)
}

type gamePlayService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
	botName    string
}

func NewGamePlayService(logger *slog.Logger, gameRepo gameRepo, botService BotService, botName string) GamePlayService {
	return &gamePlayService{
		logger: logger.With("component", "gameplay"),

		gameRepo:   gameRepo,
		botService: botService,
		botName:    botName,
	}
}

// StartGame creates a fresh game for the chat with the initiating
// player seated as X, replacing any previous game for that chat. In
// with-bot mode the O seat is filled with the bot right away.
func (that *gamePlayService) StartGame(chatID, playerID int64, playerName string, withBot bool) *entity.Game {
	game := entity.NewGame(playerID, playerName)
	if withBot {
		game.SeatBot(that.botName)
	}

	that.gameRepo.Save(chatID, game)

	that.logger.Debug("game started", "chat_id", chatID, "player_id", playerID, "with_bot", withBot)

	return game
}

func (that *gamePlayService) JoinGame(chatID, playerID int64, playerName string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.JoinPlayerO(playerID, playerName); err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	that.gameRepo.Save(chatID, game)

	that.logger.Debug("player joined", "chat_id", chatID, "player_id", playerID)

	return game, nil
}

// MakeTurn applies one move for the identified player and, in with-bot
// mode, lets the bot answer before returning the resulting game.
func (that *gamePlayService) MakeTurn(chatID, playerID int64, row, col int) (*entity.Game, error) {
	game, err := that.gameRepo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return game, apperror.ErrNotInGame
	}

	if err = game.MakeTurn(player.Mark, row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.WithBot && !game.IsFinished() {
		if botPlayer := game.BotPlayer(); botPlayer != nil && game.Turn == botPlayer.Mark {
			if err = that.botService.MakeTurn(game); err != nil {
				return game, fmt.Errorf("bot failed to make turn: %w", err)
			}
		}
	}

	that.gameRepo.Save(chatID, game)

	return game, nil
}

// EndGame discards the chat's game, if any.
func (that *gamePlayService) EndGame(chatID int64) {
	that.gameRepo.DeleteByChatID(chatID)

	that.logger.Debug("game ended", "chat_id", chatID)
}

func (that *gamePlayService) ActiveGame(chatID int64) (*entity.Game, error) {
	game, err := that.gameRepo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}
