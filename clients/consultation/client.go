// Package consultation talks to the external consultation storage endpoint.
package consultation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leadform/models"
)

const submitPath = "/api/consultations"

// Client defines the interface for the consultation storage backend.
type Client interface {
	SubmitConsultation(ctx context.Context, record models.ConsultationRecord) error
}

// APIError carries the server-provided failure message for a rejected
// submission.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("consultation endpoint returned %d: %s", e.StatusCode, e.Message)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new consultation API client.
func NewClient(baseURL string) Client {
	return &clientImpl{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SubmitConsultation posts one assembled record. Any 2xx status counts as
// accepted; otherwise the error message from the response body is surfaced.
// There is no retry and no idempotency key.
func (c *clientImpl) SubmitConsultation(ctx context.Context, record models.ConsultationRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling consultation record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending consultation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		errResp.Message = ""
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
}
