package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is resolved once at startup and injected everywhere; nothing reads
// the environment after Load returns.
type Config struct {
	ServerPort int
	LogLevel   string

	// DatabaseURL selects the managed postgres backend when set,
	// otherwise the server runs on a local sqlite file at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	JWTSecret []byte

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ServerPort:   EnvIntDefault("SERVER_PORT", 4242),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   EnvDefault("SQLITE_PATH", "ecommerce.db"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
	}

	return cfg, nil
}

// SearchEnabled reports whether the optional elasticsearch integration is configured.
func (c *Config) SearchEnabled() bool {
	return c.ESURL != ""
}

// EventsEnabled reports whether the optional kafka event stream is configured.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
