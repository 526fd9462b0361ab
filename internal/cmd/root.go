package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe-chatbot",
		Short: "Tic-tac-toe with a chat-style interface",
		Long: heredoc.Doc(`
			Tic-tac-toe played through a chat-style interface, against a
			simple built-in opponent or another person at the same keyboard.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(Play())

	return root
}
