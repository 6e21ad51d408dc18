package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi-agent/internal/agent"
	"github.com/rocketscienceinc/reversi-agent/internal/config"
	"github.com/rocketscienceinc/reversi-agent/internal/repository"
	"github.com/rocketscienceinc/reversi-agent/internal/repository/storage"
	"github.com/rocketscienceinc/reversi-agent/internal/strategy"
	"github.com/rocketscienceinc/reversi-agent/internal/transport/tcp"
)

// RunApp - runs the agent: connects to the game server, cross-checks the
// assigned player number and drives the turn loop until the game ends.
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

	turnRepo, err := initTurnArchive(ctx, log, conf)
	if err != nil {
		return err
	}

	chooser, err := strategy.New(conf.Strategy)
	if err != nil {
		return fmt.Errorf("could not resolve strategy: %w", err)
	}

	conn, greeting, err := tcp.Connect(ctx, conf.Server.Host, conf.Server.BasePort, int8(conf.Player))
	if err != nil {
		return fmt.Errorf("could not join game: %w", err)
	}
	defer conn.Close()

	log.Info("Connected to game server",
		"player", greeting.Player,
		"game_minutes", greeting.GameMinutes,
		"strategy", conf.Strategy,
	)

	gameAgent := agent.New(logger, int8(conf.Player), conf.GameID, chooser, turnRepo)

	agentErrCh := make(chan error, 1)
	go func() {
		agentErrCh <- gameAgent.Run(ctx, conn)
	}()

	select {
	case err = <-agentErrCh:
		if err != nil {
			return fmt.Errorf("agent loop error: %w", err)
		}

		log.Info("Game finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		// Unblocks the agent's pending read.
		conn.Close()
		<-agentErrCh
		return nil
	}
}

// initTurnArchive - connects the optional redis-backed turn archive; an
// empty redis address disables it.
func initTurnArchive(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.TurnRepository, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		log.Info("Turn archive disabled, no redis address configured")
		return nil, nil
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	go func() {
		<-ctx.Done()

		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	return repository.NewTurnRepository(redisStorage.Connection), nil
}
