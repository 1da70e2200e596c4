package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// EvaluateRequest is the wire request for POST /evaluate.
type EvaluateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EvaluateResponse is the wire response from POST /evaluate.
type EvaluateResponse struct {
	IsCorrect      bool   `json:"isCorrect"`
	Grade          *int   `json:"grade,omitempty"`
	NextHint       string `json:"nextHint,omitempty"`
	FullEvaluation string `json:"fullEvaluation,omitempty"`
}

// Client talks to the grading service. Failures are returned as plain
// errors; the Engine decides what to do with them (fall back), so the
// client itself never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a grading client for the service at baseURL.
// httpClient may be nil to use a default client. No request timeout is
// imposed here; callers bound requests through ctx if they need to.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Evaluate submits the question and answer text for remote grading.
func (c *Client) Evaluate(ctx context.Context, q quiz.Question, answer string) (quiz.Evaluation, error) {
	body, err := json.Marshal(EvaluateRequest{Question: q.Text, Answer: answer})
	if err != nil {
		return quiz.Evaluation{}, fmt.Errorf("marshal evaluate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/evaluate", bytes.NewReader(body))
	if err != nil {
		return quiz.Evaluation{}, fmt.Errorf("build evaluate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return quiz.Evaluation{}, fmt.Errorf("evaluate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return quiz.Evaluation{}, fmt.Errorf("evaluate request: unexpected status %d", resp.StatusCode)
	}

	var wire EvaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return quiz.Evaluation{}, fmt.Errorf("decode evaluate response: %w", err)
	}

	ev := quiz.Evaluation{
		IsCorrect:      wire.IsCorrect,
		Grade:          wire.Grade,
		NextHint:       wire.NextHint,
		FullEvaluation: wire.FullEvaluation,
	}
	if wire.Grade != nil {
		g := *wire.Grade
		if g < 0 {
			g = 0
		}
		if g > 10 {
			g = 10
		}
		ev.Grade = &g
		ev.ConfidenceScore = float64(g) / 10
	} else if wire.IsCorrect {
		ev.ConfidenceScore = 1
	}
	return ev, nil
}
