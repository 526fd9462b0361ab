package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-chatbot/internal/chat"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/config"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/console"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chatbot/internal/service"
)

// RunApp wires the application together and runs the console loop
// until it finishes or a shutdown signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, hotseat bool) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, gameRepo, botService, conf.BotName)
	engine := chat.NewEngine(logger, gamePlayService)

	term := console.New(logger, engine, console.Options{
		Hotseat:  hotseat,
		BotDelay: conf.BotDelay,
	})

	return term.Run(ctx)
}
