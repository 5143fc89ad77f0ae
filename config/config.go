package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUsername string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret   string
	SentryDSN   string
	BrokerAddr  string
	Port        string
	Environment string

	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string

	GoogleAPIKey            string
	AnalyzerModel           string
	FirebaseCredentialsFile string
	DailyOutfitCron         string
	PresignConcurrency      int

	LogLevel  string
	LogFormat string
}

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// Load reads .env when present and then the process environment, which wins.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		DBUsername:              GetEnv("DB_USERNAME", ""),
		DBPassword:              GetEnv("DB_PASSWORD", ""),
		DBHost:                  GetEnv("DB_HOST", "localhost"),
		DBPort:                  GetEnv("DB_PORT", "5432"),
		DBName:                  GetEnv("DB_NAME", ""),
		JWTSecret:               GetEnv("JWT_SECRET", ""),
		SentryDSN:               GetEnv("SENTRY_DSN", ""),
		BrokerAddr:              GetEnv("ASYNC_BROKER_ADDRESS", "127.0.0.1:6379"),
		Port:                    GetEnv("PORT", "8083"),
		Environment:             GetEnv("ENVIRONMENT", "development"),
		R2AccountID:             GetEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:           GetEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret:       GetEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:            GetEnv("R2_BUCKET_NAME", ""),
		GoogleAPIKey:            GetEnv("GOOGLE_API_KEY", ""),
		AnalyzerModel:           GetEnv("ANALYZER_MODEL", "gemini-2.5-flash"),
		FirebaseCredentialsFile: GetEnv("FIREBASE_CREDENTIALS_FILE", ""),
		DailyOutfitCron:         GetEnv("DAILY_OUTFIT_CRON", "0 7 * * *"),
		PresignConcurrency:      GetEnvInt("PRESIGN_CONCURRENCY", 8),
		LogLevel:                GetEnv("LOG_LEVEL", "info"),
		LogFormat:               GetEnv("LOG_FORMAT", "json"),
	}
}

func (c Config) DatabaseDSN() string {
	return "postgres://" + c.DBUsername + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName
}
