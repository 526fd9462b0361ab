package chat

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/repository"
)

const (
	noticeNoActiveGame   = "No active game. Use /tictactoe to start one."
	noticeWaitingForJoin = "Waiting for an opponent to join..."
	noticeSeatTaken      = "Game already has two players!"
	noticeSelfJoin       = "You can't play against yourself! Ask someone else to join."
	noticeNotInGame      = "You're not in this game!"
	noticeNotYourTurn    = "Not your turn!"
	noticeInvalidMove    = "Invalid move!"
	noticeJoined         = "You joined as ⭕!"
	noticeGameEnded      = "Game ended. Use /tictactoe to start a new one."
)

type gamePlay interface {
	StartGame(chatID, playerID int64, playerName string, withBot bool) *entity.Game
	JoinGame(chatID, playerID int64, playerName string) (*entity.Game, error)
	MakeTurn(chatID, playerID int64, row, col int) (*entity.Game, error)
	EndGame(chatID int64)
}

// Engine routes chat updates to the game and renders the resulting
// screens. It holds no state of its own beyond the handler table.
type Engine struct {
	logger   *slog.Logger
	gameplay gamePlay

	handlers map[string]func(update *Update) *Reply
}

func NewEngine(logger *slog.Logger, gameplay gamePlay) *Engine {
	engine := &Engine{
		logger:   logger.With("component", "chat"),
		gameplay: gameplay,

		handlers: make(map[string]func(update *Update) *Reply),
	}

	engine.handlers[dataJoinO] = engine.handleJoin
	engine.handlers[dataPlayAgain] = engine.handleNewGame
	engine.handlers[actionMove] = engine.handleMove
	engine.handlers[actionNoop] = engine.handleNoop
	engine.handlers[actionWait] = engine.handleWait

	return engine
}

// HandleUpdate dispatches a single update and never fails: every
// rejection from the game comes back as a user-facing notice.
func (that *Engine) HandleUpdate(update *Update) *Reply {
	switch update.Command {
	case CommandNewGame:
		return that.handleNewGame(update)
	case CommandStop:
		return that.handleStop(update)
	}

	handler, ok := that.handlers[actionOf(update.Data)]
	if !ok {
		that.logger.Warn("unknown update action", "data", update.Data)
		return &Reply{}
	}

	return handler(update)
}

// actionOf maps callback data to a handler key: exact matches for the
// single-purpose buttons, the leading token for cell buttons.
func actionOf(data string) string {
	switch data {
	case dataJoinO, dataPlayAgain:
		return data
	}

	if i := strings.IndexByte(data, '_'); i > 0 {
		return data[:i]
	}

	return data
}

// handleNewGame starts a fresh game, replacing any prior one for the
// chat. In a private chat the bot takes the O seat immediately; in a
// group the game waits for someone to join.
func (that *Engine) handleNewGame(update *Update) *Reply {
	game := that.gameplay.StartGame(update.ChatID, update.From.ID, update.From.Name, update.Private)

	if game.IsWaiting() {
		return &Reply{Screen: &Screen{
			Text:     InviteText(game),
			Keyboard: WaitingKeyboard(),
		}}
	}

	return &Reply{Screen: &Screen{
		Text:     StatusText(game),
		Keyboard: BoardKeyboard(game),
	}}
}

// handleStop discards the chat's game without a replacement.
func (that *Engine) handleStop(update *Update) *Reply {
	that.gameplay.EndGame(update.ChatID)

	return &Reply{Notice: noticeGameEnded}
}

func (that *Engine) handleJoin(update *Update) *Reply {
	game, err := that.gameplay.JoinGame(update.ChatID, update.From.ID, update.From.Name)

	switch {
	case err == nil:
	case errors.Is(err, repository.ErrGameNotFound):
		return &Reply{Notice: noticeNoActiveGame}
	case errors.Is(err, apperror.ErrSeatTaken):
		return &Reply{Notice: noticeSeatTaken}
	case errors.Is(err, apperror.ErrSelfJoin):
		return &Reply{Notice: noticeSelfJoin}
	default:
		that.logger.Error("failed to join game", "error", err)
		return &Reply{Notice: noticeInvalidMove}
	}

	return &Reply{
		Notice: noticeJoined,
		Screen: &Screen{
			Text:     StatusText(game),
			Keyboard: BoardKeyboard(game),
		},
	}
}

func (that *Engine) handleMove(update *Update) *Reply {
	row, col, err := parseCellData(update.Data)
	if err != nil {
		that.logger.Warn("malformed move data", "data", update.Data)
		return &Reply{Notice: noticeInvalidMove}
	}

	game, err := that.gameplay.MakeTurn(update.ChatID, update.From.ID, row, col)
	if err != nil {
		return &Reply{Notice: moveNotice(err)}
	}

	if game.IsFinished() {
		return &Reply{Screen: &Screen{
			Text:     StatusText(game),
			Keyboard: GameOverKeyboard(game),
		}}
	}

	return &Reply{Screen: &Screen{
		Text:     StatusText(game),
		Keyboard: BoardKeyboard(game),
	}}
}

func (that *Engine) handleNoop(_ *Update) *Reply {
	return &Reply{}
}

func (that *Engine) handleWait(_ *Update) *Reply {
	return &Reply{Notice: noticeWaitingForJoin}
}

// moveNotice translates a rejected move into the alert shown to the
// tapping user.
func moveNotice(err error) string {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return noticeNoActiveGame
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return noticeWaitingForJoin
	case errors.Is(err, apperror.ErrNotInGame):
		return noticeNotInGame
	case errors.Is(err, apperror.ErrNotYourTurn):
		return noticeNotYourTurn
	default:
		return noticeInvalidMove
	}
}
