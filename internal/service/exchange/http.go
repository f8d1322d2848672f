package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const endpointTimeout = 90 * time.Second

// HTTPEndpoint calls a running explanation endpoint over HTTP.
type HTTPEndpoint struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPEndpoint builds an endpoint client for the API at baseURL, e.g.
// "http://localhost:8080".
func NewHTTPEndpoint(baseURL string) *HTTPEndpoint {
	return &HTTPEndpoint{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: endpointTimeout,
		},
	}
}

// Explain posts one exchange to /api/explain and returns the reply text. On a
// non-2xx response the server's error message is surfaced when present.
func (e *HTTPEndpoint) Explain(ctx context.Context, req Request) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "marshal explain request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/explain", bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "create explain request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "explain request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read explain response")
	}

	var payload struct {
		Reply string `json:"reply"`
		Error string `json:"error"`
	}
	decodeErr := json.Unmarshal(body, &payload)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && payload.Error != "" {
			return "", errors.New(payload.Error)
		}
		return "", errors.Errorf("API error (%d)", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", errors.Wrap(decodeErr, "unmarshal explain response")
	}

	return payload.Reply, nil
}
