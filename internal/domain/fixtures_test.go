package domain

import "testing"

const (
	testSeverityCSV = "Symptom,weight\n" +
		"itching,1\n" +
		"skin_rash,3\n" +
		"nodal_skin_eruptions,4\n" +
		"headache,5\n" +
		"high_fever,7\n" +
		"vomiting,5\n" +
		"nausea,5\n"

	testDescriptionCSV = "Disease,Description\n" +
		"Fungal infection,\"In humans, fungal infections occur when an invading fungus takes over\"\n" +
		"Migraine,A migraine can cause severe throbbing pain\n" +
		"Malaria,An infectious disease caused by protozoan parasites\n"

	testPrecautionCSV = "Disease,Precaution_1,Precaution_2,Precaution_3,Precaution_4\n" +
		"Fungal infection,bath twice,use detol or neem in bathing water,keep infected area dry,\n" +
		"Migraine,meditation,reduce stress,,\n" +
		"Malaria,Consult nearest hospital,avoid oily food,,\n"

	testDatasetCSV = "Disease,Symptom_1,Symptom_2,Symptom_3,Symptom_4\n" +
		"Fungal infection, itching, skin_rash, nodal_skin_eruptions,\n" +
		"Migraine, headache, nausea,,\n" +
		"Fungal infection, itching, dischromic _patches,,\n" +
		"Malaria, high_fever, vomiting, headache,\n" +
		"Common Cold, continuous_sneezing, chills,,\n"
)

func testRawTables() RawTables {
	return RawTables{
		Severity:     testSeverityCSV,
		Descriptions: testDescriptionCSV,
		Precautions:  testPrecautionCSV,
		Dataset:      testDatasetCSV,
	}
}

func testKnowledgeBase(t *testing.T) *KnowledgeBase {
	t.Helper()
	parsed := ParseTables(testRawTables())
	if len(parsed.Skipped) != 0 {
		t.Fatalf("fixture should parse cleanly, skipped: %+v", parsed.Skipped)
	}
	return BuildFromParsed(parsed)
}

func conditionNames(candidates []Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Condition.Name)
	}
	return names
}
