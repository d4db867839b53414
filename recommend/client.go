package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/bookmate-app/bookmate/model"
)

// Client talks to the external recommendation service. Any transport error
// or non-2xx response is one terminal error for that request: no retries,
// no partial results.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Recommendations posts the selected book ids and returns the ranked
// candidates. The request is cancelled when ctx is, so no result outlives
// its caller.
func (c *Client) Recommendations(ctx context.Context, bookIDs []int) ([]model.Recommendation, error) {
	body, err := json.Marshal(model.RecommendationRequest{BookIDs: bookIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode recommendation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recommendation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "recommendation service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	recommendations := make([]model.Recommendation, 0)
	if err := json.NewDecoder(resp.Body).Decode(&recommendations); err != nil {
		return nil, errors.Wrap(err, "failed to decode recommendation response")
	}
	return recommendations, nil
}
