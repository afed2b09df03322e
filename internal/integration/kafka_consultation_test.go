//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/symptom-advisor/internal/adapter/kafka"
	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/config"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
	"github.com/couchcryptid/symptom-advisor/internal/observability"
)

type staticFetcher map[domain.Table]string

func (f staticFetcher) Fetch(_ context.Context, table domain.Table) (string, error) {
	return f[table], nil
}

func TestConsultationPublishedToKafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	const topic = "symptom-advisor.consultations"
	createTopic(t, broker, topic)

	cfg := &config.Config{
		KafkaEnabled:           true,
		KafkaBrokers:           []string{broker},
		KafkaConsultationTopic: topic,
	}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	svc := advisor.New(discardLogger(), observability.NewMetricsForTesting(), advisor.WithPublisher(writer))
	require.NoError(t, svc.Load(ctx, staticFetcher{
		domain.TableSeverity:     "Symptom,weight\nheadache,3\nnausea,5\n",
		domain.TableDescriptions: "Disease,Description\nMigraine,A recurring headache\n",
		domain.TablePrecautions:  "Disease,Precaution_1\nMigraine,rest in a dark room\n",
		domain.TableDataset:      "Disease,Symptom_1,Symptom_2\nMigraine,headache,nausea\n",
	}))

	reply := svc.Respond(ctx, "I have a headache")
	require.Equal(t, domain.IntentSymptom, reply.Intent)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	t.Cleanup(func() { _ = reader.Close() })

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	var got domain.Consultation
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, got.ID, string(msg.Key))
	assert.Equal(t, "I have a headache", got.Input)
	assert.Equal(t, domain.IntentSymptom, got.Intent)
	assert.Equal(t, []domain.ConditionScore{{Name: "Migraine", Score: 3}}, got.Conditions)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "symptom", headers["intent"])
	assert.Equal(t, got.OccurredAt.Format(time.RFC3339), headers["occurred_at"])
}
