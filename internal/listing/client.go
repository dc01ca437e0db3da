package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/advocates/internal/advocates"
	"github.com/JaimeStill/advocates/pkg/middleware"
	"github.com/JaimeStill/advocates/pkg/pagination"
)

// ErrFetchFailed is returned for any unsuccessful fetch: transport failure,
// a non-2xx status, or an undecodable body.
var ErrFetchFailed = errors.New("fetch advocates failed")

// Client fetches pages from the advocates list endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the list endpoint URL
// (e.g. http://localhost:8080/api/advocates). A nil hc uses http.DefaultClient.
func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: hc}
}

// Fetch requests one page. Each call carries a fresh request id.
func (c *Client) Fetch(ctx context.Context, params pagination.PageRequest) (*pagination.PageResult[advocates.Advocate], error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	u.RawQuery = params.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(middleware.RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var result pagination.PageResult[advocates.Advocate]
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrFetchFailed, err)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("%w: response has no data", ErrFetchFailed)
	}

	return &result, nil
}
