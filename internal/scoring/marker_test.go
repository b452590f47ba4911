package scoring

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/chilltutor/internal/llm"
)

func TestMarker_EmptyAnswerSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: any call would error
	m := NewMarker(mock, DefaultMarkerConfig())

	for _, answer := range []string{"", "   ", "\n\t"} {
		ev, err := m.Evaluate(context.Background(), "What is binary?", "criteria", answer)
		if err != nil {
			t.Fatalf("answer %q: unexpected error: %v", answer, err)
		}
		if ev.Result != ResultIncorrect {
			t.Errorf("answer %q: expected incorrect, got %q", answer, ev.Result)
		}
		if ev.Score != 0.0 {
			t.Errorf("answer %q: expected score 0.0, got %v", answer, ev.Score)
		}
		if ev.Feedback == "" {
			t.Errorf("answer %q: expected feedback", answer)
		}
	}

	if mock.CallCount() != 0 {
		t.Fatalf("empty answers must not reach the LLM, got %d calls", mock.CallCount())
	}
}

func TestMarker_ParsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"correct","score":0.85,"feedback":"Good coverage of both points."}`),
	})
	m := NewMarker(mock, DefaultMarkerConfig())

	ev, err := m.Evaluate(context.Background(), "What is binary?", "1. Two digits\n2. Base 2", "0 and 1, base 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Result != ResultCorrect || ev.Score != 0.85 {
		t.Errorf("unexpected evaluation: %+v", ev)
	}
	if ev.Feedback != "Good coverage of both points." {
		t.Errorf("unexpected feedback: %q", ev.Feedback)
	}
}

func TestMarker_RebucketsInconsistentModelLabel(t *testing.T) {
	// The model claims "correct" with a partial score; the local
	// bucketing law wins.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"correct","score":0.5,"feedback":"Halfway there."}`),
	})
	m := NewMarker(mock, DefaultMarkerConfig())

	ev, err := m.Evaluate(context.Background(), "Q", "criteria", "an answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Result != ResultPartial {
		t.Errorf("expected partial from score 0.5, got %q", ev.Result)
	}
}

func TestMarker_ClampsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"correct","score":1.3,"feedback":"Too generous."}`),
	})
	m := NewMarker(mock, DefaultMarkerConfig())

	ev, err := m.Evaluate(context.Background(), "Q", "criteria", "an answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 1.0 {
		t.Errorf("expected clamped score 1.0, got %v", ev.Score)
	}
}

func TestMarker_PromptCarriesQuestionCriteriaAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"partial","score":0.5,"feedback":"ok"}`),
	})
	m := NewMarker(mock, DefaultMarkerConfig())

	_, err := m.Evaluate(context.Background(), "What is encryption?", "1. Scrambling data\n2. Keys", "scrambling data with a key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}

	req := mock.Calls[0]
	if req.Schema != EvaluationSchema {
		t.Error("expected the evaluation schema on the request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"What is encryption?", "Scrambling data", "scrambling data with a key"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}
