//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// doJSON sends payload (if any) as JSON and decodes the JSON response body.
func doJSON(t *testing.T, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, baseURL()+path, &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

// createQuestion inserts a uniquely worded question and returns its id and text.
func createQuestion(t *testing.T, category int) (int, string) {
	t.Helper()

	text := fmt.Sprintf("Integration question %d?", time.Now().UnixNano())
	status, out := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{
		"question":   text,
		"answer":     "integration",
		"category":   category,
		"difficulty": 2,
	})
	if status != http.StatusOK {
		t.Fatalf("create question: unexpected status %d: %v", status, out)
	}
	id, ok := out["created"].(float64)
	if !ok {
		t.Fatalf("create question: missing created id: %v", out)
	}
	return int(id), text
}

func deleteQuestion(t *testing.T, id int) {
	t.Helper()
	status, out := doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("delete question %d: unexpected status %d: %v", id, status, out)
	}
}
