package metrics

import "github.com/fieldlens/fieldlens/internal/models"

// Counts is a confusion tally for one (field, model) pair across a corpus.
// A mismatch on a present value counts as both a false positive (the model
// extracted something wrong) and a false negative (the truth was missed),
// which is why TP+FP+TN+FN can exceed Total.
type Counts struct {
	TP    int `json:"truePositives"`
	FP    int `json:"falsePositives"`
	TN    int `json:"trueNegatives"`
	FN    int `json:"falseNegatives"`
	Total int `json:"total"`
}

// Observe folds one per-file verdict into the tally. hasExtracted and
// hasReference say whether each side held a value at all; matched is the
// comparator's verdict and only consulted when both sides are present.
func (c *Counts) Observe(hasExtracted, hasReference, matched bool) {
	c.Total++
	switch {
	case !hasExtracted && !hasReference:
		c.TN++
	case hasExtracted && !hasReference:
		c.FP++
	case !hasExtracted && hasReference:
		c.FN++
	case matched:
		c.TP++
	default:
		c.FP++
		c.FN++
	}
}

// Metrics reduces the tally to accuracy, precision, recall, and F1.
// Zero observations produce all-zero metrics, never NaN.
func (c Counts) Metrics() models.FieldMetrics {
	precision := SafeDivide(float64(c.TP), float64(c.TP+c.FP))
	recall := SafeDivide(float64(c.TP), float64(c.TP+c.FN))

	return models.FieldMetrics{
		Accuracy:  RoundTo4(SafeDivide(float64(c.TP+c.TN), float64(c.Total))),
		Precision: RoundTo4(precision),
		Recall:    RoundTo4(recall),
		F1:        RoundTo4(F1(precision, recall)),
	}
}
