package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr           string
	LogLevel           string
	LogFormat          string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// DatasetSource is a directory, an http(s) base URL, a postgres:// URL or
	// an .xlsx workbook path.
	DatasetSource  string
	DatasetTimeout time.Duration
	ReplyCacheSize int

	// Consultation event publishing.
	KafkaEnabled           bool
	KafkaBrokers           []string
	KafkaConsultationTopic string
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is applied first if present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	datasetTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("DATASET_TIMEOUT", "30s"))
	if err != nil || datasetTimeout <= 0 {
		return nil, errors.New("invalid DATASET_TIMEOUT")
	}

	cacheSize, err := strconv.Atoi(sharedcfg.EnvOrDefault("REPLY_CACHE_SIZE", "1000"))
	if err != nil || cacheSize < 0 {
		return nil, errors.New("invalid REPLY_CACHE_SIZE")
	}

	cfg := &Config{
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		CORSAllowedOrigins: parseList(sharedcfg.EnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		DatasetSource:  strings.TrimSpace(sharedcfg.EnvOrDefault("DATASET_SOURCE", "data")),
		DatasetTimeout: datasetTimeout,
		ReplyCacheSize: cacheSize,

		KafkaEnabled:           os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:           sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaConsultationTopic: sharedcfg.EnvOrDefault("KAFKA_CONSULTATION_TOPIC", "symptom-consultations"),
	}

	if cfg.DatasetSource == "" {
		return nil, errors.New("DATASET_SOURCE is required")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, o := range cfg.CORSAllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS entry %q", o)
		}
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}
	if cfg.KafkaEnabled && cfg.KafkaConsultationTopic == "" {
		return nil, errors.New("KAFKA_CONSULTATION_TOPIC is required when KAFKA_ENABLED is true")
	}

	return cfg, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
