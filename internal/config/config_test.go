package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "data", cfg.DatasetSource)
	assert.Equal(t, 30*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, 1000, cfg.ReplyCacheSize)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "symptom-consultations", cfg.KafkaConsultationTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATASET_SOURCE", "https://cdn.example/datasets")
	t.Setenv("DATASET_TIMEOUT", "5s")
	t.Setenv("REPLY_CACHE_SIZE", "0")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_CONSULTATION_TOPIC", "custom-consultations")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://cdn.example/datasets", cfg.DatasetSource)
	assert.Equal(t, 5*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, 0, cfg.ReplyCacheSize)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-consultations", cfg.KafkaConsultationTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidDatasetTimeout(t *testing.T) {
	for _, v := range []string{"bad", "0s", "-1s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DATASET_TIMEOUT", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DATASET_TIMEOUT")
		})
	}
}

func TestLoad_InvalidReplyCacheSize(t *testing.T) {
	for _, v := range []string{"many", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("REPLY_CACHE_SIZE", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "REPLY_CACHE_SIZE")
		})
	}
}

func TestLoad_BlankDatasetSource(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "   ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_SOURCE")
}

func TestLoad_KafkaEnabledOnlyWhenTrue(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "yes")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_InvalidCORSOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,b.example")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b.example"`)
}
