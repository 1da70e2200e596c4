// Package source fetches the authoritative question list from the
// remote bank endpoint. Payloads are schema-checked before being handed
// to the store, so a malformed upstream can never corrupt the local
// bank; it just leaves the last-synced set in place.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// maxPayloadBytes caps how much of a response body is read. A question
// bank is a few kilobytes; anything near this limit is upstream trouble.
const maxPayloadBytes = 8 << 20

// Client fetches question banks over HTTP. It implements
// quiz.QuestionFetcher.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a fetcher for the bank at url. httpClient may be
// nil to use a default client.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{url: url, httpClient: httpClient}
}

// Fetch retrieves and validates the remote question list.
func (c *Client) Fetch(ctx context.Context) ([]quiz.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build bank request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question bank: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch question bank: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	if err := validatePayload(raw); err != nil {
		return nil, fmt.Errorf("question bank payload: %w", err)
	}

	var questions []quiz.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question bank payload: %w", err)
		}
	}
	return questions, nil
}
