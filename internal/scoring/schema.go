package scoring

import "github.com/abhisek/chilltutor/internal/llm"

// EvaluationSchema defines the JSON schema for LLM marking responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Rubric evaluation of a student answer against marking criteria",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partial", "incorrect"},
				"description": "Whether the answer meets the marking criteria fully, partially, or not at all",
			},
			"score": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Fraction of the marking criteria the answer covers",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Feedback for the student: positive opening, criteria points met, gaps, tied back to the topic",
			},
		},
		"required":             []any{"result", "score", "feedback"},
		"additionalProperties": false,
	},
}
