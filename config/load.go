package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real deployments pass everything via environment.
	_ = godotenv.Load()

	cfg := App{
		Port:        getenv("PORT", "5000"),
		DatabaseURL: must("DATABASE_URL"),
		JWTSecret:   getenv("ACCESS_TOKEN_SECRET", "local_dev_secret"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		Env:         getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
