package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/shift-cycle-bot/internal/config"
	"github.com/diegoclair/shift-cycle-bot/internal/database"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/service"
	"github.com/diegoclair/shift-cycle-bot/internal/handlers"
	"github.com/diegoclair/shift-cycle-bot/internal/logger"
	"github.com/diegoclair/shift-cycle-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Warn().Msg(".env file not found, using process environment")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	dm, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	slackClient := slack.New(cfg.Slack.BotToken)

	services, err := service.NewInstance(dm, slackClient, service.Options{
		Location:          loc,
		AnnounceChannelID: cfg.Announce.ChannelID,
		AnnounceSchedule:  cfg.Announce.Schedule,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	if err := services.Announcer.Start(ctx); err != nil {
		return err
	}
	defer services.Announcer.Stop()

	handler := handlers.New(services.Shift, cfg.Slack.SigningSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("timezone", loc.String()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (contract.DataManager, func(), error) {
	if cfg.Storage == config.BackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}

		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis storage")
		return database.NewRedisInstance(client, cfg.Redis.KeyPrefix), func() { client.Close() }, nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, err
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("using sqlite storage")

	return database.NewInstance(db), func() { db.Close() }, nil
}
