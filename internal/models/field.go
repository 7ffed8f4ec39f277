package models

// FieldType identifies the kind of value a field holds.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeDate        FieldType = "date"
	FieldTypeNumber      FieldType = "number"
	FieldTypeEnum        FieldType = "enum"
	FieldTypeMultiSelect FieldType = "multiSelect"
)

// Field is a single extraction target. Fields are immutable once created;
// Key is the stable identifier used to join metrics, settings, and results.
type Field struct {
	Key  string    `json:"key" yaml:"key"`
	Name string    `json:"name" yaml:"name"`
	Type FieldType `json:"type" yaml:"type"`
}

// CompareType identifies the comparison strategy configured for a field.
type CompareType string

const (
	CompareExactString   CompareType = "exact-string"
	CompareNearExact     CompareType = "near-exact-string"
	CompareListOrdered   CompareType = "list-ordered"
	CompareListUnordered CompareType = "list-unordered"
	CompareDateExact     CompareType = "date-exact"
	CompareExactNumber   CompareType = "exact-number"
	CompareBoolean       CompareType = "boolean"
	CompareLLMJudge      CompareType = "llm-judge"
)

// CompareConfig is the per-field comparison configuration. Parameters is a
// loose map so configuration layers can round-trip it without knowing each
// strategy's arguments; comparators decode it into typed args.
type CompareConfig struct {
	CompareType CompareType    `json:"compareType" yaml:"compareType"`
	Parameters  map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// FieldSettings holds optional per-field evaluation settings.
type FieldSettings struct {
	// IncludeInMetrics governs whether the field counts toward a model's
	// overall score and whether it can have a winner. Nil means included.
	IncludeInMetrics *bool `json:"includeInMetrics,omitempty" yaml:"includeInMetrics,omitempty"`
}

// Included reports whether the field counts toward metrics. A nil receiver
// or an unset flag both default to included.
func (s *FieldSettings) Included() bool {
	if s == nil || s.IncludeInMetrics == nil {
		return true
	}
	return *s.IncludeInMetrics
}
