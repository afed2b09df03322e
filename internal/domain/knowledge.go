package domain

// SeverityTable maps a normalized symptom name to its weight. One table is
// built per knowledge base and shared read-only by every condition.
type SeverityTable struct {
	weights map[string]int
}

// NewSeverityTable indexes severity rows. A later row for the same symptom
// replaces the earlier weight.
func NewSeverityTable(rows []SeverityRow) *SeverityTable {
	weights := make(map[string]int, len(rows))
	for _, r := range rows {
		weights[r.Symptom] = r.Weight
	}
	return &SeverityTable{weights: weights}
}

// Weight returns the weight of symptom, or 0 when it is not in the table.
func (t *SeverityTable) Weight(symptom string) int {
	if t == nil {
		return 0
	}
	return t.weights[symptom]
}

// Has reports whether symptom has a weight.
func (t *SeverityTable) Has(symptom string) bool {
	if t == nil {
		return false
	}
	_, ok := t.weights[symptom]
	return ok
}

// Len returns the number of weighted symptoms.
func (t *SeverityTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.weights)
}

// ConditionRecord is everything known about one condition.
type ConditionRecord struct {
	Name string
	// Symptoms holds distinct normalized symptom names in first-seen order.
	Symptoms []string
	// Description is nil when the description table has no row for Name.
	Description *string
	// Precautions is nil when the precaution table has no row for Name.
	Precautions []string

	symptomSet map[string]struct{}
	severity   *SeverityTable
}

// HasSymptom reports whether symptom (normalized) belongs to the condition.
func (c *ConditionRecord) HasSymptom(symptom string) bool {
	_, ok := c.symptomSet[symptom]
	return ok
}

// Severity returns the shared severity table of the knowledge base the record
// belongs to.
func (c *ConditionRecord) Severity() *SeverityTable {
	return c.severity
}

func (c *ConditionRecord) addSymptoms(symptoms []string) {
	for _, s := range symptoms {
		if _, ok := c.symptomSet[s]; ok {
			continue
		}
		c.symptomSet[s] = struct{}{}
		c.Symptoms = append(c.Symptoms, s)
	}
}

// KnowledgeBase is the immutable set of conditions built at startup.
// It is safe for concurrent reads.
type KnowledgeBase struct {
	conditions []*ConditionRecord
	byName     map[string]*ConditionRecord
	severity   *SeverityTable
	mergedRows int
}

// EmptyKnowledgeBase returns a knowledge base with no conditions. Every match
// against it yields no candidates.
func EmptyKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		byName:   map[string]*ConditionRecord{},
		severity: NewSeverityTable(nil),
	}
}

// BuildKnowledgeBase merges the four parsed tables. Dataset rows are folded in
// order; a repeated condition name unions its symptoms into the existing
// record instead of replacing it.
func BuildKnowledgeBase(severity []SeverityRow, descriptions []DescriptionRow, precautions []PrecautionRow, dataset []DatasetRow) *KnowledgeBase {
	table := NewSeverityTable(severity)

	descByName := make(map[string]string, len(descriptions))
	for _, d := range descriptions {
		descByName[d.Condition] = d.Description
	}
	precByName := make(map[string][]string, len(precautions))
	for _, p := range precautions {
		precByName[p.Condition] = p.Precautions
	}

	kb := &KnowledgeBase{
		byName:   make(map[string]*ConditionRecord),
		severity: table,
	}
	for _, row := range dataset {
		if existing, ok := kb.byName[row.Condition]; ok {
			existing.addSymptoms(row.Symptoms)
			kb.mergedRows++
			continue
		}

		rec := &ConditionRecord{
			Name:       row.Condition,
			Symptoms:   make([]string, 0, len(row.Symptoms)),
			symptomSet: make(map[string]struct{}, len(row.Symptoms)),
			severity:   table,
		}
		if d, ok := descByName[row.Condition]; ok {
			rec.Description = &d
		}
		if p, ok := precByName[row.Condition]; ok {
			rec.Precautions = append([]string{}, p...)
		}
		rec.addSymptoms(row.Symptoms)

		kb.byName[rec.Name] = rec
		kb.conditions = append(kb.conditions, rec)
	}
	return kb
}

// BuildFromParsed is BuildKnowledgeBase over a ParsedTables value.
func BuildFromParsed(p ParsedTables) *KnowledgeBase {
	return BuildKnowledgeBase(p.Severity, p.Descriptions, p.Precautions, p.Dataset)
}

// Len returns the number of distinct conditions.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.conditions)
}

// Conditions returns the records in enumeration (first-appearance) order.
func (kb *KnowledgeBase) Conditions() []*ConditionRecord {
	if kb == nil {
		return nil
	}
	out := make([]*ConditionRecord, len(kb.conditions))
	copy(out, kb.conditions)
	return out
}

// Condition looks a record up by exact name.
func (kb *KnowledgeBase) Condition(name string) (*ConditionRecord, bool) {
	if kb == nil {
		return nil, false
	}
	c, ok := kb.byName[name]
	return c, ok
}

// Severity returns the shared severity table.
func (kb *KnowledgeBase) Severity() *SeverityTable {
	if kb == nil {
		return nil
	}
	return kb.severity
}

// MergedRows returns how many dataset rows were folded into an existing record.
func (kb *KnowledgeBase) MergedRows() int {
	if kb == nil {
		return 0
	}
	return kb.mergedRows
}
