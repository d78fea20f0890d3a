package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	RoundDuration int // seconds
	WSOrigins     string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] no .env file, using process environment")
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		RoundDuration: getEnvInt("ROUND_DURATION", 360),
		WSOrigins:     getEnv("WS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
