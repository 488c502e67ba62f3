package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OpenTDBClient pulls questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	endpoint   string
	difficulty string
	httpClient *http.Client
}

// NewOpenTDBClient targets baseURL/api.php. difficulty is easy, medium, hard
// or empty for any.
func NewOpenTDBClient(baseURL, difficulty string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		endpoint:   baseURL + "/api.php",
		difficulty: difficulty,
		httpClient: httpClient,
	}
}

// openTDBResponse mirrors api.php. Text fields arrive HTML-escaped and
// response_code is non-zero when the request could not be served.
type openTDBResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Category      string `json:"category"`
		Difficulty    string `json:"difficulty"`
		Question      string `json:"question"`
		CorrectAnswer string `json:"correct_answer"`
	} `json:"results"`
}

func (c *OpenTDBClient) Name() string { return "opentdb" }

// Candidates requests amount questions and unescapes their text.
func (c *OpenTDBClient) Candidates(ctx context.Context, amount int) ([]Candidate, error) {
	query := url.Values{"amount": {strconv.Itoa(amount)}}
	if c.difficulty != "" {
		query.Set("difficulty", c.difficulty)
	}

	var payload openTDBResponse
	if err := getJSON(ctx, c.httpClient, c.endpoint+"?"+query.Encode(), nil, &payload); err != nil {
		return nil, fmt.Errorf("opentdb: %w", err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb: response code %d", payload.ResponseCode)
	}

	out := make([]Candidate, 0, len(payload.Results))
	for _, q := range payload.Results {
		out = append(out, Candidate{
			Category:   html.UnescapeString(q.Category),
			Difficulty: q.Difficulty,
			Question:   html.UnescapeString(q.Question),
			Answer:     html.UnescapeString(q.CorrectAnswer),
		})
	}
	return out, nil
}

// getJSON issues a GET with optional headers and decodes a 2xx body into out.
func getJSON(ctx context.Context, client *http.Client, target string, header http.Header, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
