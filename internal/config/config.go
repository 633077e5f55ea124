package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	KafkaBrokers    []string
	AuthTokenSecret string
	ServiceName     string
}

// Load reads configuration from the environment. RedisAddr and KafkaBrokers
// are optional: empty disables the product cache and event publishing.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":1337"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDBName:     getenv("MONGO_DB_NAME", "example"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		AuthTokenSecret: getenv("AUTH_TOKEN_SECRET", ""),
		ServiceName:     getenv("SERVICE_NAME", "catalog-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
