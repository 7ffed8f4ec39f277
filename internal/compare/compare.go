// Package compare implements the value comparator: given a field's
// configured comparison strategy, it decides whether an extracted value and
// a reference value represent the same real-world fact despite surface
// differences, and classifies why.
package compare

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/normalize"
)

// DefaultMinSubstringRunes is the floor below which substring containment
// is rejected, so that fragments like "NY" never count as a partial match
// for "New York" while short proper nouns still can.
const DefaultMinSubstringRunes = 4

// JudgeRequest carries one comparison to an external LLM judge.
type JudgeRequest struct {
	Prompt    string
	Extracted string
	Reference string
}

// Judge is the external collaborator behind the llm-judge compare type. Its
// verdict is authoritative; the comparator never reinterprets it.
type Judge func(ctx context.Context, req JudgeRequest) (models.MatchResult, error)

// Options tunes the comparator. The zero value uses the defaults above.
type Options struct {
	// MinSubstringRunes overrides the substring containment floor when > 0.
	MinSubstringRunes int
	// DayRatios overrides the duration unit conversion ratios when
	// non-zero.
	DayRatios normalize.DayRatios
	// Separators overrides the list separator detection priority.
	Separators []string
	// Judge handles llm-judge comparisons. Comparing with that type and a
	// nil Judge is a configuration error.
	Judge Judge
}

// Comparator evaluates extracted values against reference values. All
// built-in strategies are pure and never fail; only the llm-judge route can
// return an error.
type Comparator struct {
	minSubstringRunes int
	dayRatios         normalize.DayRatios
	separators        []string
	judge             Judge
}

// New builds a Comparator from opts.
func New(opts Options) *Comparator {
	minRunes := opts.MinSubstringRunes
	if minRunes <= 0 {
		minRunes = DefaultMinSubstringRunes
	}
	ratios := opts.DayRatios
	if ratios == (normalize.DayRatios{}) {
		ratios = normalize.DefaultDayRatios
	}
	separators := opts.Separators
	if len(separators) == 0 {
		separators = normalize.DefaultSeparators
	}
	return &Comparator{
		minSubstringRunes: minRunes,
		dayRatios:         ratios,
		separators:        separators,
		judge:             opts.Judge,
	}
}

// Params holds the typed per-field comparison parameters decoded from the
// loose CompareConfig.Parameters map.
type Params struct {
	// Separator overrides list separator auto-detection.
	Separator string `mapstructure:"separator"`
	// ComparisonPrompt is forwarded to the judge for llm-judge fields.
	ComparisonPrompt string `mapstructure:"comparisonPrompt"`
}

// DecodeParams decodes a loose parameters map into typed Params. Unknown
// keys are ignored so configuration layers can carry extra data.
func DecodeParams(raw map[string]any) (Params, error) {
	var p Params
	if raw == nil {
		return p, nil
	}
	if err := mapstructure.Decode(raw, &p); err != nil {
		return Params{}, fmt.Errorf("decoding compare parameters: %w", err)
	}
	return p, nil
}

// Compare applies the configured strategy to one (extracted, reference)
// pair. Malformed values never error; they degrade to weaker match paths
// and ultimately to a "none" verdict. The error return is reserved for
// configuration problems (unknown compare type, llm-judge without a judge)
// and judge failures.
func (c *Comparator) Compare(ctx context.Context, cfg models.CompareConfig, extracted, reference string) (models.MatchResult, error) {
	params, err := DecodeParams(cfg.Parameters)
	if err != nil {
		return models.Match(models.MatchNone), err
	}

	switch cfg.CompareType {
	case models.CompareExactString:
		return compareExactString(extracted, reference), nil
	case models.CompareExactNumber:
		return compareExactNumber(extracted, reference), nil
	case models.CompareBoolean:
		return compareBoolean(extracted, reference), nil
	case models.CompareDateExact:
		return compareDateExact(extracted, reference), nil
	case models.CompareNearExact:
		return c.compareNearExact(extracted, reference), nil
	case models.CompareListOrdered:
		return c.compareList(extracted, reference, params.Separator, true), nil
	case models.CompareListUnordered:
		return c.compareList(extracted, reference, params.Separator, false), nil
	case models.CompareLLMJudge:
		return c.compareWithJudge(ctx, params, extracted, reference)
	default:
		return models.Match(models.MatchNone), fmt.Errorf("%q is not a valid compare type", cfg.CompareType)
	}
}
