// Package feedback turns a completed attempt into human-readable
// coaching text. The remote analyzer is advisory only: scoring and
// selection never wait on it, and every failure path substitutes a
// deterministic fallback built from the scenario's own authored fields.
package feedback

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Analysis is the coaching payload shown after an attempt.
type Analysis struct {
	Feedback        string   `json:"feedback"`
	Tips            []string `json:"tips"`
	ThreatLevel     string   `json:"threat_level"`
	RealWorldImpact string   `json:"real_world_impact"`
}

// Request describes one completed attempt to the analyzer.
type Request struct {
	ScenarioID       string `json:"scenario_id"`
	Title            string `json:"title"`
	Type             string `json:"type"`
	Difficulty       string `json:"difficulty"`
	UserAction       string `json:"user_action"`
	CorrectAction    string `json:"correct_action"`
	IsCorrect        bool   `json:"is_correct"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// Analyzer produces an Analysis for a completed attempt.
type Analyzer interface {
	Analyze(req Request) (*Analysis, error)
}

// Client calls the external analyze-scenario service over HTTP.
type Client struct {
	baseURL string
}

// NewClient reads FEEDBACK_SERVICE_URL when baseURL is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("FEEDBACK_SERVICE_URL")
	}
	return &Client{baseURL: baseURL}
}

func (c *Client) Analyze(req Request) (*Analysis, error) {
	if c.baseURL == "" {
		return nil, errors.New("feedback service URL not configured")
	}
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Post(c.baseURL+"/analyze-scenario", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("feedback service failed with status: " + resp.Status)
	}

	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, err
	}
	if analysis.Feedback == "" {
		return nil, errors.New("feedback service returned empty analysis")
	}
	return &analysis, nil
}
