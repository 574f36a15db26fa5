package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clienthub/internal/config"
)

// FunctionsClient talks to the hosted function-execution service over its
// REST API.
type FunctionsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFunctionsClient creates a function-execution client from config.
func NewFunctionsClient(cfg config.FunctionsConfig) *FunctionsClient {
	return &FunctionsClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ Functions = (*FunctionsClient)(nil)

type executionRequest struct {
	Body string `json:"body,omitempty"`
}

// Execute runs the deployed function with the optional string payload and
// returns the execution result. A transport or service error is returned as
// an error; a non-2xx ResponseStatusCode is returned to the caller to decide.
func (c *FunctionsClient) Execute(ctx context.Context, functionID, payload string) (*Execution, error) {
	body, err := json.Marshal(executionRequest{Body: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution request: %w", err)
	}

	url := fmt.Sprintf("%s/functions/%s/executions", c.baseURL, functionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create execution request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execution request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("execution request failed with status %d: %s", resp.StatusCode, string(b))
	}

	var exec Execution
	if err := json.NewDecoder(resp.Body).Decode(&exec); err != nil {
		return nil, fmt.Errorf("failed to decode execution response: %w", err)
	}
	return &exec, nil
}
