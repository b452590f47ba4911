package scoring

// Result is the discrete bucket an answer lands in.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultPartial   Result = "partial"
	ResultIncorrect Result = "incorrect"
)

// Bucket thresholds. A score exactly at a boundary resolves to the
// higher bucket.
const (
	CorrectThreshold = 0.8
	PartialThreshold = 0.3
)

// EvaluationResult is the immutable outcome of marking one answer.
// Result is always derivable from Score via BucketFor.
type EvaluationResult struct {
	Result   Result  `json:"result"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Correct reports whether the evaluation resolves the card.
func (e EvaluationResult) Correct() bool {
	return e.Result == ResultCorrect
}

// BucketFor maps a rubric score to its result bucket. This is the
// single source of truth: any externally supplied result label is
// recomputed from the score before use.
func BucketFor(score float64) Result {
	switch {
	case score >= CorrectThreshold:
		return ResultCorrect
	case score >= PartialThreshold:
		return ResultPartial
	default:
		return ResultIncorrect
	}
}

// ClampScore forces a score into [0.0, 1.0].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// NewEvaluation builds an EvaluationResult from a raw score, clamping
// it and deriving the bucket.
func NewEvaluation(score float64, feedback string) EvaluationResult {
	s := ClampScore(score)
	return EvaluationResult{
		Result:   BucketFor(s),
		Score:    s,
		Feedback: feedback,
	}
}
