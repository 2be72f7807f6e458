package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	gameController := tictactoe.NewGameController(entity.NewGame())
	terminalApp := terminal.New(logger, gameController, conf.Theme)

	// run terminal UI
	uiErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal UI")
		uiErrCh <- terminalApp.Run(ctx)
	}()

	select {
	case err := <-uiErrCh:
		if err != nil {
			return fmt.Errorf("terminal UI error: %w", err)
		}

		log.Info("Terminal UI exited")

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
