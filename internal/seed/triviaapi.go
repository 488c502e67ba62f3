package seed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TriviaAPIClient pulls questions from the-trivia-api.com. The key is optional.
type TriviaAPIClient struct {
	endpoint   string
	apiKey     string
	difficulty string
	httpClient *http.Client
}

func NewTriviaAPIClient(baseURL, apiKey, difficulty string, httpClient *http.Client) *TriviaAPIClient {
	if baseURL == "" {
		baseURL = "https://the-trivia-api.com/api"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &TriviaAPIClient{
		endpoint:   strings.TrimSuffix(baseURL, "/") + "/questions",
		apiKey:     apiKey,
		difficulty: difficulty,
		httpClient: httpClient,
	}
}

type triviaAPIQuestion struct {
	Category      string `json:"category"`
	Question      string `json:"question"`
	Difficulty    string `json:"difficulty"`
	CorrectAnswer string `json:"correctAnswer"`
}

func (c *TriviaAPIClient) Name() string { return "triviaapi" }

func (c *TriviaAPIClient) Candidates(ctx context.Context, amount int) ([]Candidate, error) {
	query := url.Values{"limit": {strconv.Itoa(amount)}}
	if c.difficulty != "" {
		query.Set("difficulty", c.difficulty)
	}
	var header http.Header
	if c.apiKey != "" {
		header = http.Header{"X-Api-Key": {c.apiKey}}
	}

	var payload []triviaAPIQuestion
	if err := getJSON(ctx, c.httpClient, c.endpoint+"?"+query.Encode(), header, &payload); err != nil {
		return nil, fmt.Errorf("triviaapi: %w", err)
	}

	out := make([]Candidate, 0, len(payload))
	for _, q := range payload {
		out = append(out, Candidate{
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Question:   strings.TrimSpace(q.Question),
			Answer:     strings.TrimSpace(q.CorrectAnswer),
		})
	}
	return out, nil
}
