package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/chat"
)

// Console drives the chat engine from a terminal, standing in for the
// messaging platform: it renders screens and turns key presses into
// chat updates.
type Console struct {
	logger *slog.Logger
	engine *chat.Engine

	hotseat  bool
	botDelay time.Duration

	in  *bufio.Scanner
	out io.Writer

	chatID  int64
	playerX chat.User
	playerO chat.User

	// starter taps "play" and holds X; current holds the keyboard.
	starter chat.User
	current chat.User
}

type Options struct {
	Hotseat  bool
	BotDelay time.Duration
}

func New(logger *slog.Logger, engine *chat.Engine, opts Options) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		engine: engine,

		hotseat:  opts.Hotseat,
		botDelay: opts.BotDelay,

		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,

		chatID:  1,
		playerX: chat.User{ID: 1, Name: "Player 1"},
		playerO: chat.User{ID: 2, Name: "Player 2"},
	}
}

// Run plays games until the user quits or the context is canceled.
func (that *Console) Run(ctx context.Context) error {
	that.starter = that.playerX
	that.current = that.playerX

	reply := that.engine.HandleUpdate(&chat.Update{
		ChatID:  that.chatID,
		From:    that.playerX,
		Command: chat.CommandNewGame,
		Private: !that.hotseat,
	})
	that.show(reply)

	for {
		select {
		case <-ctx.Done():
			that.logger.Debug("console loop canceled")
			return nil
		default:
		}

		fmt.Fprint(that.out, color.CyanString("> "))
		if !that.in.Scan() {
			return that.in.Err()
		}

		input := strings.TrimSpace(that.in.Text())
		if input == "q" {
			that.show(that.engine.HandleUpdate(&chat.Update{
				ChatID:  that.chatID,
				From:    that.current,
				Command: chat.CommandStop,
			}))
			fmt.Fprintln(that.out, "Bye!")
			return nil
		}

		update, ok := that.updateFor(input)
		if !ok {
			fmt.Fprintln(that.out, "Enter 'row col' (0-2) to move, 'j' to join, 'p' to play again, 'q' to quit.")
			continue
		}

		isMove := strings.HasPrefix(update.Data, "move_")

		reply = that.engine.HandleUpdate(update)

		if isMove && reply.Notice == "" && !that.hotseat {
			that.think()
		}

		that.show(reply)

		// In hotseat mode an accepted move hands the keyboard over.
		if that.hotseat && isMove && reply.Notice == "" {
			that.current = that.other(that.current)
		}
	}
}

// updateFor translates one line of input into a chat update.
func (that *Console) updateFor(input string) (*chat.Update, bool) {
	update := &chat.Update{
		ChatID:  that.chatID,
		From:    that.current,
		Private: !that.hotseat,
	}

	switch input {
	case "j":
		update.From = that.other(that.starter)
		update.Data = "join_o"
		return update, true
	case "p":
		update.Data = "play_again"
		that.starter = update.From
		that.current = update.From
		return update, true
	}

	fields := strings.Fields(input)
	if len(fields) != 2 {
		return nil, false
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, false
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, false
	}

	update.Data = fmt.Sprintf("move_%d_%d", row, col)

	return update, true
}

func (that *Console) other(user chat.User) chat.User {
	if user.ID == that.playerX.ID {
		return that.playerO
	}
	return that.playerX
}

func (that *Console) think() {
	if that.botDelay <= 0 {
		return
	}

	indicator := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithSuffix(" Bot is thinking..."))
	indicator.Start()
	time.Sleep(that.botDelay)
	indicator.Stop()
}

// show prints the notice and, when the screen changed, the board.
func (that *Console) show(reply *chat.Reply) {
	if reply.Notice != "" {
		fmt.Fprintln(that.out, color.YellowString(reply.Notice))
	}

	if reply.Screen == nil {
		return
	}

	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, reply.Screen.Text)
	fmt.Fprintln(that.out)

	for _, row := range reply.Screen.Keyboard {
		if len(row) == 1 {
			fmt.Fprintln(that.out, color.GreenString("   [%s]", row[0].Text))
			continue
		}

		cells := make([]string, 0, len(row))
		for _, button := range row {
			cells = append(cells, button.Text)
		}
		fmt.Fprintf(that.out, "   %s\n", strings.Join(cells, " "))
	}
	fmt.Fprintln(that.out)
}
