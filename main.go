// main.go
package main

import (
	"context"
	"log"
	"time"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/internal/worker"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/tmdb"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Schema first, the pool only talks to a migrated database
	if config.Database.Migrate {
		if err := database.Migrate(config.Database, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Notification queue: movie updates publish, the worker mails
	queueConfig := worker.DefaultQueueConfig()
	queueConfig.Buffer = config.Worker.NotifyBuffer
	queue, err := worker.NewQueue(queueConfig, logger)
	if err != nil {
		logger.Fatal("Failed to create queue", zap.Error(err))
	}

	notifications := worker.NewNotificationWorker(newSender(config, logger), logger)
	queue.Consume("movie-update-notifications", config.Worker.NotifyTopic, notifications.Handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := queue.Start(ctx); err != nil {
		logger.Fatal("Failed to start queue", zap.Error(err))
	}

	dispatcher := worker.NewDispatcher(queue.Publisher(), config.Worker.NotifyTopic, logger)

	trending := tmdb.NewClient(tmdb.Config{
		APIKey:        config.TMDB.APIKey,
		BaseURL:       config.TMDB.BaseURL,
		RatePerSecond: config.TMDB.RatePerSecond,
	}, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, dispatcher, trending, config, logger)

	scheduler := worker.NewScheduler(5*time.Minute, logger)
	if trending.Enabled() {
		err := scheduler.Add("trending-import", config.Worker.TrendingCron, func(ctx context.Context) error {
			_, err := app.Service.Trending.Import(ctx)
			return err
		})
		if err != nil {
			logger.Fatal("Failed to schedule trending import", zap.Error(err))
		}
	} else {
		logger.Info("TMDB_API_KEY not set, trending import disabled")
	}
	err = scheduler.Add("session-cleanup", "@hourly", func(ctx context.Context) error {
		removed, err := repos.Session.CleanExpiredSessions(ctx)
		if err == nil && removed > 0 {
			logger.Info("Expired sessions removed", zap.Int64("count", removed))
		}
		return err
	})
	if err != nil {
		logger.Fatal("Failed to schedule session cleanup", zap.Error(err))
	}
	scheduler.Start()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	// Shutdown order: the server has drained, then jobs, then the queue
	stopCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	scheduler.Stop(stopCtx)
	if err := queue.Close(); err != nil {
		logger.Error("Failed to close queue", zap.Error(err))
	}

	logger.Info("Application stopped")
}

func newSender(config *utils.Config, logger *zap.Logger) worker.Sender {
	if config.Email.Host == "" {
		logger.Info("SMTP_HOST not set, notifications are logged only")
		return worker.NewLogSender(logger)
	}

	return worker.NewSMTPSender(worker.SMTPConfig{
		Host:     config.Email.Host,
		Port:     config.Email.Port,
		Username: config.Email.User,
		Password: config.Email.Password,
		From:     config.Email.From,
	})
}
