package chat

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/service"
)

const testChatID int64 = 100

var (
	alice = User{ID: 1, Name: "Alice"}
	bob   = User{ID: 2, Name: "Bob"}
	carol = User{ID: 3, Name: "Carol"}
)

func newEngine() *Engine {
	gamePlay := service.NewGamePlayService(
		slog.Default(), repository.NewGameRepository(), service.NewBotService(), "Bot")
	return NewEngine(slog.Default(), gamePlay)
}

func newGameUpdate(from User, private bool) *Update {
	return &Update{ChatID: testChatID, From: from, Command: CommandNewGame, Private: private}
}

func tap(from User, data string) *Update {
	return &Update{ChatID: testChatID, From: from, Data: data}
}

func TestEngine_NewGame(t *testing.T) {
	t.Run("Private chat starts a with-bot game on a live board", func(t *testing.T) {
		// Given: an engine
		engine := newEngine()

		// When: a user sends the game command in a private chat
		reply := engine.HandleUpdate(newGameUpdate(alice, true))

		// Then: the board is shown with tappable cells
		require.NotNil(t, reply.Screen)
		assert.Contains(t, reply.Screen.Text, "Alice's turn")
		require.Len(t, reply.Screen.Keyboard, 3)
		assert.Equal(t, "move_0_0", reply.Screen.Keyboard[0][0].Data)
	})

	t.Run("Group chat starts a waiting game with a join row", func(t *testing.T) {
		engine := newEngine()

		reply := engine.HandleUpdate(newGameUpdate(alice, false))

		require.NotNil(t, reply.Screen)
		assert.Contains(t, reply.Screen.Text, "Alice wants to play!")
		require.Len(t, reply.Screen.Keyboard, 4)
		assert.Equal(t, dataJoinO, reply.Screen.Keyboard[3][0].Data)
	})
}

func TestEngine_Join(t *testing.T) {
	t.Run("A second user joins and the board goes live", func(t *testing.T) {
		// Given: a waiting group game
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))

		// When: another user taps join
		reply := engine.HandleUpdate(tap(bob, dataJoinO))

		// Then: they are seated as O and the board becomes tappable
		assert.Equal(t, noticeJoined, reply.Notice)
		require.NotNil(t, reply.Screen)
		assert.Contains(t, reply.Screen.Text, "Alice's turn")
		assert.Equal(t, "move_0_0", reply.Screen.Keyboard[0][0].Data)
	})

	t.Run("The starter cannot join their own game", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))

		reply := engine.HandleUpdate(tap(alice, dataJoinO))

		assert.Equal(t, noticeSelfJoin, reply.Notice)
		assert.Nil(t, reply.Screen)
	})

	t.Run("A third user cannot take the occupied seat", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))
		engine.HandleUpdate(tap(bob, dataJoinO))

		reply := engine.HandleUpdate(tap(carol, dataJoinO))

		assert.Equal(t, noticeSeatTaken, reply.Notice)
	})

	t.Run("Joining without an active game yields a notice", func(t *testing.T) {
		engine := newEngine()

		reply := engine.HandleUpdate(tap(bob, dataJoinO))

		assert.Equal(t, noticeNoActiveGame, reply.Notice)
	})
}

func TestEngine_Move(t *testing.T) {
	t.Run("A move updates the board and the bot answers", func(t *testing.T) {
		// Given: a private with-bot game
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, true))

		// When: the user taps a corner
		reply := engine.HandleUpdate(tap(alice, "move_0_0"))

		// Then: both the user's mark and the bot's reply are on screen
		require.NotNil(t, reply.Screen)
		assert.Empty(t, reply.Notice)
		assert.Equal(t, "noop_0_0", reply.Screen.Keyboard[0][0].Data)
		assert.Equal(t, "noop_1_1", reply.Screen.Keyboard[1][1].Data)
		assert.Contains(t, reply.Screen.Text, "Alice's turn")
	})

	t.Run("Moving before an opponent joined yields a notice", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))

		reply := engine.HandleUpdate(tap(alice, "move_0_0"))

		assert.Equal(t, noticeWaitingForJoin, reply.Notice)
		assert.Nil(t, reply.Screen)
	})

	t.Run("A bystander cannot move", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))
		engine.HandleUpdate(tap(bob, dataJoinO))

		reply := engine.HandleUpdate(tap(carol, "move_0_0"))

		assert.Equal(t, noticeNotInGame, reply.Notice)
	})

	t.Run("Moving out of turn yields a notice", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))
		engine.HandleUpdate(tap(bob, dataJoinO))

		reply := engine.HandleUpdate(tap(bob, "move_0_0"))

		assert.Equal(t, noticeNotYourTurn, reply.Notice)
	})

	t.Run("Tapping an occupied cell yields a notice", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))
		engine.HandleUpdate(tap(bob, dataJoinO))
		engine.HandleUpdate(tap(alice, "move_0_0"))

		reply := engine.HandleUpdate(tap(bob, "move_0_0"))

		assert.Equal(t, noticeInvalidMove, reply.Notice)
	})

	t.Run("A winning move shows the result and a rematch button", func(t *testing.T) {
		// Given: a group game one move away from Alice's row win
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))
		engine.HandleUpdate(tap(bob, dataJoinO))
		engine.HandleUpdate(tap(alice, "move_0_0"))
		engine.HandleUpdate(tap(bob, "move_1_1"))
		engine.HandleUpdate(tap(alice, "move_0_1"))
		engine.HandleUpdate(tap(bob, "move_2_2"))

		// When: Alice completes the top row
		reply := engine.HandleUpdate(tap(alice, "move_0_2"))

		// Then: the win is announced over a disabled board with a rematch row
		require.NotNil(t, reply.Screen)
		assert.Contains(t, reply.Screen.Text, "Alice wins!")
		require.Len(t, reply.Screen.Keyboard, 4)
		assert.Equal(t, dataPlayAgain, reply.Screen.Keyboard[3][0].Data)
		assert.Equal(t, "noop_2_1", reply.Screen.Keyboard[2][1].Data)
	})
}

func TestEngine_PlayAgain(t *testing.T) {
	t.Run("Starts a fresh game for the tapping user", func(t *testing.T) {
		// Given: a finished private game
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, true))
		engine.HandleUpdate(tap(alice, "move_0_0"))

		// When: the user taps play again
		reply := engine.HandleUpdate(&Update{
			ChatID: testChatID, From: alice, Data: dataPlayAgain, Private: true,
		})

		// Then: a clean board replaces the old game
		require.NotNil(t, reply.Screen)
		assert.Equal(t, "move_0_0", reply.Screen.Keyboard[0][0].Data)
		assert.Equal(t, "move_1_1", reply.Screen.Keyboard[1][1].Data)
		assert.Contains(t, reply.Screen.Text, "Alice's turn")
	})
}

func TestEngine_Stop(t *testing.T) {
	t.Run("Ends the game and further taps find nothing", func(t *testing.T) {
		// Given: a private game in progress
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, true))

		// When: the user stops the game
		reply := engine.HandleUpdate(&Update{
			ChatID: testChatID, From: alice, Command: CommandStop,
		})

		// Then: the game is gone
		assert.Equal(t, noticeGameEnded, reply.Notice)

		reply = engine.HandleUpdate(tap(alice, "move_0_0"))
		assert.Equal(t, noticeNoActiveGame, reply.Notice)
	})
}

func TestEngine_PassiveTaps(t *testing.T) {
	t.Run("No-op cells do nothing", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, true))

		reply := engine.HandleUpdate(tap(alice, "noop_0_0"))

		assert.Empty(t, reply.Notice)
		assert.Nil(t, reply.Screen)
	})

	t.Run("Waiting cells remind about the missing opponent", func(t *testing.T) {
		engine := newEngine()
		engine.HandleUpdate(newGameUpdate(alice, false))

		reply := engine.HandleUpdate(tap(alice, "wait_0_0"))

		assert.Equal(t, noticeWaitingForJoin, reply.Notice)
	})

	t.Run("Unknown callback data is ignored", func(t *testing.T) {
		engine := newEngine()

		reply := engine.HandleUpdate(tap(alice, "bogus"))

		assert.Empty(t, reply.Notice)
		assert.Nil(t, reply.Screen)
	})
}
