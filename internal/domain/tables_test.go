package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		rows, skipped := ParseSeverity("Symptom,weight\n Skin_Rash ,3\nitching, 1\n")

		assert.Empty(t, skipped)
		assert.Equal(t, []SeverityRow{{Symptom: "skin_rash", Weight: 3}, {Symptom: "itching", Weight: 1}}, rows)
	})

	t.Run("malformed weight skips only that row", func(t *testing.T) {
		rows, skipped := ParseSeverity("Symptom,weight\nitching,one\nheadache,5\nfatigue\n")

		assert.Equal(t, []SeverityRow{{Symptom: "headache", Weight: 5}}, rows)
		require.Len(t, skipped, 2)
		assert.Equal(t, SkippedRow{Table: TableSeverity, Line: 2, Reason: `invalid weight "one"`}, skipped[0])
		assert.Equal(t, 4, skipped[1].Line)
		assert.Equal(t, "missing weight", skipped[1].Reason)
	})

	t.Run("header is discarded without validation", func(t *testing.T) {
		rows, _ := ParseSeverity("itching,1\nheadache,5")

		assert.Equal(t, []SeverityRow{{Symptom: "headache", Weight: 5}}, rows)
	})

	t.Run("blank and CRLF lines", func(t *testing.T) {
		rows, skipped := ParseSeverity("Symptom,weight\r\n\r\nitching,1\r\n   \r\nheadache,5\r\n")

		assert.Empty(t, skipped)
		assert.Len(t, rows, 2)
	})

	t.Run("empty text", func(t *testing.T) {
		rows, skipped := ParseSeverity("")

		assert.Empty(t, rows)
		assert.Empty(t, skipped)
	})
}

func TestParseDescriptions(t *testing.T) {
	t.Run("keeps only the second field", func(t *testing.T) {
		rows, skipped := ParseDescriptions(testDescriptionCSV)

		assert.Empty(t, skipped)
		require.Len(t, rows, 3)
		assert.Equal(t, "Fungal infection", rows[0].Condition)
		assert.Equal(t, `"In humans`, rows[0].Description)
		assert.Equal(t, "A migraine can cause severe throbbing pain", rows[1].Description)
	})

	t.Run("row without description is skipped", func(t *testing.T) {
		rows, skipped := ParseDescriptions("Disease,Description\nAcne\n,orphan text\n")

		assert.Empty(t, rows)
		require.Len(t, skipped, 2)
		assert.Equal(t, "missing description", skipped[0].Reason)
		assert.Equal(t, "empty condition", skipped[1].Reason)
	})
}

func TestParsePrecautions(t *testing.T) {
	rows, skipped := ParsePrecautions("Disease,P1,P2,P3,P4\n Migraine ,meditation, ,reduce stress,\nAcne,,,,\n")

	assert.Empty(t, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, PrecautionRow{Condition: "Migraine", Precautions: []string{"meditation", "reduce stress"}}, rows[0])
	assert.NotNil(t, rows[1].Precautions)
	assert.Empty(t, rows[1].Precautions)
}

func TestParseDataset(t *testing.T) {
	rows, skipped := ParseDataset("Disease,S1,S2,S3\nFungal infection, Itching , SKIN_RASH,\n,headache\n\nAcne,,,\n")

	require.Len(t, skipped, 1)
	assert.Equal(t, SkippedRow{Table: TableDataset, Line: 3, Reason: "empty condition"}, skipped[0])
	require.Len(t, rows, 2)
	assert.Equal(t, DatasetRow{Condition: "Fungal infection", Symptoms: []string{"itching", "skin_rash"}}, rows[0])
	assert.Equal(t, "Acne", rows[1].Condition)
	assert.Empty(t, rows[1].Symptoms)
}

func TestParseTable(t *testing.T) {
	for _, tbl := range Tables {
		got, err := ParseTable(string(tbl))
		require.NoError(t, err)
		assert.Equal(t, tbl, got)
	}

	_, err := ParseTable("symptoms")
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestRawTablesSet(t *testing.T) {
	var raw RawTables
	require.NoError(t, raw.Set(TableSeverity, "a"))
	require.NoError(t, raw.Set(TableDescriptions, "b"))
	require.NoError(t, raw.Set(TablePrecautions, "c"))
	require.NoError(t, raw.Set(TableDataset, "d"))

	assert.Equal(t, RawTables{Severity: "a", Descriptions: "b", Precautions: "c", Dataset: "d"}, raw)
	require.ErrorIs(t, raw.Set(Table("other"), "e"), ErrUnknownTable)
}
