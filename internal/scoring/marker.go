package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/chilltutor/internal/llm"
)

// MarkerConfig holds configuration for the LLM marker.
type MarkerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultMarkerConfig returns sensible defaults.
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		MaxTokens:   512,
		Temperature: 0,
	}
}

// Marker evaluates free-text answers against marking criteria using an
// LLM for the rubric comparison. The bucketing of the returned score is
// decided locally, never by the model.
type Marker struct {
	provider llm.Provider
	cfg      MarkerConfig
}

// NewMarker creates a Marker backed by the given provider.
func NewMarker(provider llm.Provider, cfg MarkerConfig) *Marker {
	return &Marker{provider: provider, cfg: cfg}
}

// markerOutput is the raw LLM response.
type markerOutput struct {
	Result   string  `json:"result"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// emptyAnswerFeedback is returned without an LLM call when the student
// submitted nothing. Scoring never fails; it bottoms out at 0.0.
const emptyAnswerFeedback = "No answer was given, so there is nothing to mark yet. " +
	"Have a look at the question again and write down anything you remember about the topic — " +
	"even a single key point earns credit."

// Evaluate marks a student answer against the question's criteria.
// An empty answer resolves to incorrect with score 0.0 and no LLM call.
// The score is clamped to [0,1] and the result bucket is recomputed
// from it, so the bucketing law holds regardless of what the model
// claimed.
func (m *Marker) Evaluate(ctx context.Context, question, markingCriteria, studentAnswer string) (*EvaluationResult, error) {
	if strings.TrimSpace(studentAnswer) == "" {
		ev := EvaluationResult{
			Result:   ResultIncorrect,
			Score:    0.0,
			Feedback: emptyAnswerFeedback,
		}
		return &ev, nil
	}

	ctx = llm.WithPurpose(ctx, "answer-marking")

	userMsg, err := buildMarkerMessage(question, markingCriteria, studentAnswer)
	if err != nil {
		return nil, fmt.Errorf("build marking prompt: %w", err)
	}

	resp, err := m.provider.Generate(ctx, llm.Request{
		System: markerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   m.cfg.MaxTokens,
		Temperature: m.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM marking failed: %w", err)
	}

	var raw markerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse marking response: %w", err)
	}

	ev := NewEvaluation(raw.Score, raw.Feedback)
	return &ev, nil
}

const markerSystemPrompt = `You are an experienced GCSE Computer Science examiner marking a student's free-text answer against the marking criteria provided.

Scoring:
- Award a score between 0.0 and 1.0 reflecting the fraction of criteria points the answer covers.
- 0.8 or above means the answer meets the criteria fully ("correct").
- 0.3 up to 0.8 means partial coverage ("partial").
- Below 0.3 means the answer misses the criteria ("incorrect").

Feedback must, in order:
1. Open with a genuine positive note about the answer.
2. Name the specific criteria points the answer covered.
3. Name the specific criteria points it missed.
4. Close by tying the advice back to the topic of the question.

Be concrete: quote the criteria points by content, not by number. Do not invent criteria beyond the list given.`

var markerUserTemplate = template.Must(template.New("marker").Parse(`Question: {{.Question}}

Marking criteria:
{{.MarkingCriteria}}

Student answer:
{{.StudentAnswer}}`))

func buildMarkerMessage(question, markingCriteria, studentAnswer string) (string, error) {
	var buf bytes.Buffer
	err := markerUserTemplate.Execute(&buf, struct {
		Question        string
		MarkingCriteria string
		StudentAnswer   string
	}{question, markingCriteria, studentAnswer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
