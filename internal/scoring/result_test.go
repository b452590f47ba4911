package scoring

import "testing"

func TestBucketFor(t *testing.T) {
	cases := []struct {
		score float64
		want  Result
	}{
		{0.0, ResultIncorrect},
		{0.29, ResultIncorrect},
		{0.3, ResultPartial}, // boundary resolves to the higher bucket
		{0.5, ResultPartial},
		{0.79, ResultPartial},
		{0.8, ResultCorrect}, // boundary resolves to the higher bucket
		{0.9, ResultCorrect},
		{1.0, ResultCorrect},
	}

	for _, tc := range cases {
		if got := BucketFor(tc.score); got != tc.want {
			t.Errorf("BucketFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}

	for _, tc := range cases {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewEvaluation_DerivesResultFromScore(t *testing.T) {
	ev := NewEvaluation(0.85, "nice work")
	if ev.Result != ResultCorrect {
		t.Errorf("expected correct, got %q", ev.Result)
	}
	if !ev.Correct() {
		t.Error("expected Correct() true")
	}

	ev = NewEvaluation(1.6, "over-eager model")
	if ev.Score != 1.0 {
		t.Errorf("expected clamped score 1.0, got %v", ev.Score)
	}
	if ev.Result != ResultCorrect {
		t.Errorf("expected correct after clamp, got %q", ev.Result)
	}

	ev = NewEvaluation(0.1, "missed the point")
	if ev.Correct() {
		t.Error("expected Correct() false")
	}
}
