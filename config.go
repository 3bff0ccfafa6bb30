package main

import (
	"os"
)

// Config holds all configuration for the storefront service. Postgres
// settings are read by the database package from the same environment.
type Config struct {
	Port             string
	RedisAddr        string
	RedisPassword    string
	OrderSNSTopicARN string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8095"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		OrderSNSTopicARN: getEnv("ORDER_SNS_TOPIC_ARN", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
