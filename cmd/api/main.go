package main

import (
	"stylistapi/config"
	"stylistapi/controllers"
	"stylistapi/dbhelper"
	"stylistapi/logging"
	"stylistapi/services"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read .env")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not set!")
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          "stylistapi@1.0.0",
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db, err := dbhelper.SetupDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	store := services.NewGormStore(db)

	awsService := services.NewAWSService(cfg)
	urlCache, err := services.NewURLCacheService(awsService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize URL cache service")
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.BrokerAddr})
	defer asynqClient.Close()

	e := controllers.SetupServer(controllers.ServerDeps{
		Wardrobe:           store,
		Profiles:           store,
		Outfits:            store,
		AWSService:         awsService,
		URLCache:           urlCache,
		Tasks:              asynqClient,
		JWTSecret:          cfg.JWTSecret,
		PresignConcurrency: cfg.PresignConcurrency,
	})
	e.Debug = cfg.Environment != "production"
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(10)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	log.Info().Str("port", cfg.Port).Msg("starting api")
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
