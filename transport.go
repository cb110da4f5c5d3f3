package payway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// response is the raw outcome of a gateway call, before classification.
type response struct {
	status int
	body   []byte
	url    string
}

// getRequest issues a GET under the secret-key scheme. GETs are
// side-effect-free and never carry an idempotency key.
func (c *Client) getRequest(ctx context.Context, endpoint string) (*response, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, c.config.SecretAPIKey, "")
}

// postRequest issues a form-encoded POST. authKey selects the scheme:
// the secret key for customer/transaction operations, the publishable key
// for tokenization. Supply an idempotency key to avoid duplicate POSTs.
func (c *Client) postRequest(ctx context.Context, endpoint string, data url.Values, authKey, idempotencyKey string) (*response, error) {
	return c.do(ctx, http.MethodPost, endpoint, data, authKey, idempotencyKey)
}

// putRequest issues a form-encoded PUT under the secret-key scheme. PUT is
// idempotent by construction, so no idempotency key applies.
func (c *Client) putRequest(ctx context.Context, endpoint string, data url.Values) (*response, error) {
	return c.do(ctx, http.MethodPut, endpoint, data, c.config.SecretAPIKey, "")
}

func (c *Client) do(ctx context.Context, method, endpoint string, data url.Values, authKey, idempotencyKey string) (*response, error) {
	target := c.config.BaseURL + endpoint

	var body io.Reader
	if data != nil {
		body = strings.NewReader(data.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, endpoint, err)
	}

	req.SetBasicAuth(authKey, "")
	if data != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, endpoint, err)
	}

	return &response{
		status: resp.StatusCode,
		body:   raw,
		url:    target,
	}, nil
}
