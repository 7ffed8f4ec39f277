package models

// FieldMetrics holds the per-(field, model) quality numbers produced by the
// corpus aggregation step. Each value lies in [0, 1].
type FieldMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// FieldPerformance is one model's scoring on one field, including the winner
// flags filled in during winner determination.
type FieldPerformance struct {
	FieldKey            string  `json:"fieldKey"`
	FieldName           string  `json:"fieldName"`
	Accuracy            float64 `json:"accuracy"`
	Precision           float64 `json:"precision"`
	Recall              float64 `json:"recall"`
	F1                  float64 `json:"f1"`
	IsWinner            bool    `json:"isWinner"`
	IsSharedVictory     bool    `json:"isSharedVictory"`
	IsIncludedInMetrics bool    `json:"isIncludedInMetrics"`
}

// ModelSummary aggregates one model's performance across all fields.
// Overall metrics are macro-averages over included fields only; FieldsWon is
// fractional because shared victories split a field's credit evenly.
type ModelSummary struct {
	ModelName        string             `json:"modelName"`
	OverallAccuracy  float64            `json:"overallAccuracy"`
	OverallPrecision float64            `json:"overallPrecision"`
	OverallRecall    float64            `json:"overallRecall"`
	OverallF1        float64            `json:"overallF1"`
	FieldsWon        float64            `json:"fieldsWon"`
	TotalFields      int                `json:"totalFields"`
	Rank             int                `json:"rank"`
	FieldPerformance []FieldPerformance `json:"fieldPerformance"`
}
