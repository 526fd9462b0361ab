package cmd

import (
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-chatbot/internal"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/config"
)

func Play() *cobra.Command {
	play := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Long: heredoc.Doc(`
			Start an interactive game in the terminal. By default you play X
			against the built-in opponent; with --friend a second person joins
			as O at the same keyboard.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			hotseat, err := cmd.Flags().GetBool("friend")
			if err != nil {
				return err
			}

			conf := config.MustLoad(configPath)
			logger := newLogger(conf)

			return app.RunApp(logger, conf, hotseat)
		},
	}

	play.Flags().String("config", config.DefaultPath(), "path to the configuration file")
	play.Flags().Bool("friend", false, "hotseat game against another person instead of the bot")

	return play
}

func newLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
