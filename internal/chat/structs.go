package chat

// User identifies the person behind an update.
type User struct {
	ID   int64
	Name string
}

// Update is one incoming chat event: either a command (a new-game
// request) or a button press carrying its callback data.
type Update struct {
	ChatID  int64
	From    User
	Command string
	Data    string
	Private bool
}

// Button is one tappable cell of an inline keyboard.
type Button struct {
	Text string
	Data string
}

type Keyboard [][]Button

// Screen is the message shown to the chat: status text above the
// board keyboard.
type Screen struct {
	Text     string
	Keyboard Keyboard
}

// Reply is the engine's answer to an update. Notice is a short alert
// for the acting user; a nil Screen leaves the chat message as is.
type Reply struct {
	Notice string
	Screen *Screen
}
