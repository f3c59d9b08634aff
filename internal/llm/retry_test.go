package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var quizPayload = json.RawMessage(`{"quizzes":[]}`)

func fastRetry(p Provider) Provider {
	return WithRetry(p, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	})
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: quizPayload})

	resp, err := fastRetry(mock).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != string(quizPayload) {
		t.Errorf("content = %s, want %s", resp.Content, quizPayload)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		unavailable(),
		MockResponse{Content: quizPayload},
	)

	if _, err := fastRetry(mock).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), unavailable())

	_, err := fastRetry(mock).Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T (%v), want *ErrProviderUnavailable", err, err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryAttemptBudgetPerErrorKind(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
	}{
		{
			// Truncation is a config problem; retrying burns tokens for the
			// same result.
			name: "max tokens fails immediately",
			responses: []MockResponse{
				{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}},
			},
			wantCalls: 1,
		},
		{
			// A malformed document gets exactly one more roll of the dice.
			name: "invalid response retried once",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("missing quizzes")}},
				{Err: &ErrInvalidResponse{Err: errors.New("missing quizzes")}},
				{Content: quizPayload},
			},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			if _, err := fastRetry(mock).Generate(context.Background(), Request{}); err == nil {
				t.Fatal("expected error")
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		unavailable(),
		MockResponse{Content: quizPayload},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fastRetry(mock).Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: quizPayload},
	)

	if _, err := fastRetry(mock).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	if got := fastRetry(NewMockProvider()).ModelID(); got != "mock" {
		t.Errorf("ModelID = %q, want %q", got, "mock")
	}
}
