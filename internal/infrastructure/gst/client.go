package gst

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"mfgmarket/internal/domain/service"
	"mfgmarket/pkg/logger"
)

var gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// ValidateFormat checks the GST number format without calling the external
// authority.
func ValidateFormat(gstNumber string) bool {
	return gstPattern.MatchString(gstNumber)
}

// Client verifies GST numbers against an external registry. When no
// endpoint is configured it answers from the format check alone, which
// keeps development environments self-contained.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Verify(ctx context.Context, gstNumber string) (*service.GSTVerificationResult, error) {
	if !ValidateFormat(gstNumber) {
		return &service.GSTVerificationResult{
			Valid:   false,
			Message: "Invalid GST format",
		}, nil
	}

	if c.baseURL == "" {
		logger.Info("GST verification (offline mode) for: %s", gstNumber)
		return &service.GSTVerificationResult{
			Valid:   true,
			Message: "GST number format verified",
			Status:  "Active",
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/verify/%s", c.baseURL, gstNumber), nil)
	if err != nil {
		return c.degraded(err), nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.degraded(err), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.degraded(fmt.Errorf("verification service returned status %d", resp.StatusCode)), nil
	}

	var result service.GSTVerificationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return c.degraded(err), nil
	}

	return &result, nil
}

// degraded maps any transport or decode failure to a non-fatal "not
// verified" answer.
func (c *Client) degraded(err error) *service.GSTVerificationResult {
	logger.Error("GST verification API error: %v", err)
	return &service.GSTVerificationResult{
		Valid:   false,
		Message: "Verification service unavailable",
	}
}
