package main

import (
	"context"
	"stylistapi/config"
	"stylistapi/dbhelper"
	"stylistapi/logging"
	"stylistapi/services"
	"stylistapi/tasks"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func runScheduler(cfg config.Config) {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: cfg.BrokerAddr}, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	entries := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: cfg.DailyOutfitCron,
			task: tasks.NewDailyOutfitTask(),
			desc: "Daily outfit notifications",
		},
	}
	for _, t := range entries {
		entryID, err := scheduler.Register(t.cron, t.task)
		if err != nil {
			log.Fatal().Err(err).Str("task", t.desc).Msg("failed to register task")
		}
		log.Info().Str("task", t.desc).Str("entry", entryID).Str("cron", t.cron).Msg("registered task")
	}

	log.Info().Msg("starting scheduler")
	if err := scheduler.Run(); err != nil {
		log.Fatal().Err(err).Msg("scheduler failed")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read .env")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.Environment}); err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Flush(2 * time.Second)

	ctx := context.Background()
	db, err := dbhelper.SetupDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	store := services.NewGormStore(db)

	awsService := services.NewAWSService(cfg)
	if err := awsService.InitPresignClient(ctx); err != nil {
		log.Fatal().Err(err).Msg("[Queue] failed to initialize AWS provider: S3")
	}
	urlCache, err := services.NewURLCacheService(awsService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize URL cache service")
	}
	gemini, err := services.NewGeminiAnalyzer(ctx, cfg.GoogleAPIKey, cfg.AnalyzerModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize clothing analyzer")
	}
	notifier, err := services.NewFirebaseNotifier(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase")
	}

	deps := tasks.Deps{
		Wardrobe: store,
		Profiles: store,
		URLCache: urlCache,
		Analyzer: services.NewBreakerAnalyzer(gemini),
		Notifier: notifier,
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.BrokerAddr},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			tasks.QueueAnalyze: 7,
			"default":          3,
		}},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAnalyzeClothing, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleAnalyzeClothingTask(ctx, t, deps)
	})
	mux.HandleFunc(tasks.TypeDailyOutfit, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleDailyOutfitTask(ctx, t, deps)
	})

	go runScheduler(cfg)
	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
}
