package compare

import (
	"context"
	"errors"

	"github.com/fieldlens/fieldlens/internal/models"
)

// ErrNoJudge is returned when a field is configured for llm-judge
// comparison but no judge was supplied to the comparator.
var ErrNoJudge = errors.New("compare type llm-judge requires a judge")

// compareWithJudge forwards the pair to the external judge and returns its
// verdict untouched. On any failure the verdict degrades to none alongside
// the error, so batch callers can log and keep going.
func (c *Comparator) compareWithJudge(ctx context.Context, params Params, extracted, reference string) (models.MatchResult, error) {
	if c.judge == nil {
		return models.Match(models.MatchNone), ErrNoJudge
	}

	result, err := c.judge(ctx, JudgeRequest{
		Prompt:    params.ComparisonPrompt,
		Extracted: extracted,
		Reference: reference,
	})
	if err != nil {
		return models.Match(models.MatchNone), err
	}
	return result, nil
}
