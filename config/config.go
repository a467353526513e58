package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	Env             string
	MongoURL        string
	MongoDatabase   string
	RedisURL        string
	SNSTopicARN     string
	ProductCacheTTL time.Duration
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		MongoURL:        getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "onlineshop"),
		RedisURL:        getEnv("REDIS_URL", ""),
		SNSTopicARN:     getEnv("SNS_TOPIC_ARN", ""),
		ProductCacheTTL: time.Minute * 5,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
