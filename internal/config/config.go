package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	WebhookSecret string
	LogLevel      string
	LogFormat     string
	GinMode       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded, using process environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		WebhookSecret: getEnv("WASENDER_WEBHOOK_SECRET", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		GinMode:       getEnv("GIN_MODE", "release"),
	}
}

// SetupLogging applies the configured level and format to the standard logrus logger.
func (c *Config) SetupLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, falling back to info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
