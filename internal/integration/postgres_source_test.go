//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/symptom-advisor/internal/adapter/source"
	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

const seedSQL = `
CREATE TABLE symptom_severity (symptom text, weight integer);
CREATE TABLE symptom_description (disease text, description text);
CREATE TABLE symptom_precaution (disease text, precaution_1 text, precaution_2 text);
CREATE TABLE dataset (disease text, symptom_1 text, symptom_2 text, symptom_3 text);

INSERT INTO symptom_severity VALUES ('headache', 3), ('nausea', 5), ('high_fever', 7), ('vomiting', 5);
INSERT INTO symptom_description VALUES
  ('Migraine', 'A migraine can cause severe throbbing pain, usually on one side of the head.'),
  ('Malaria', 'A disease caused by a plasmodium parasite');
INSERT INTO symptom_precaution VALUES
  ('Migraine', 'meditation', 'reduce stress'),
  ('Malaria', 'consult nearest hospital', NULL);
INSERT INTO dataset VALUES
  ('Migraine', 'headache', 'nausea', NULL),
  ('Malaria', 'high_fever', 'vomiting', 'headache'),
  ('Migraine', 'headache', NULL, NULL);
`

func TestPostgresSourceBuildsKnowledgeBase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	script := filepath.Join(t.TempDir(), "seed.sql")
	require.NoError(t, os.WriteFile(script, []byte(seedSQL), 0o644))
	dsn := startPostgres(ctx, t, script)

	pg, err := source.NewPostgres(ctx, dsn, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	raw, err := advisor.FetchTables(ctx, pg)
	require.NoError(t, err)

	parsed := domain.ParseTables(raw)
	assert.Empty(t, parsed.Skipped)

	kb := domain.BuildFromParsed(parsed)
	require.Equal(t, 2, kb.Len())
	assert.Equal(t, 1, kb.MergedRows())

	migraine, ok := kb.Condition("Migraine")
	require.True(t, ok)
	assert.Equal(t, []string{"headache", "nausea"}, migraine.Symptoms)
	assert.Equal(t, []string{"meditation", "reduce stress"}, migraine.Precautions)
	require.NotNil(t, migraine.Description)
	assert.Contains(t, *migraine.Description, "A migraine can cause severe throbbing pain")

	malaria, ok := kb.Condition("Malaria")
	require.True(t, ok)
	assert.Equal(t, []string{"consult nearest hospital"}, malaria.Precautions)
	assert.Equal(t, 7, malaria.Severity().Weight("high_fever"))

	reply := domain.Respond("vomiting", kb)
	assert.Equal(t, []domain.ConditionScore{{Name: "Malaria", Score: 5}}, reply.Scores())
}
