package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/upstream"

	"go.uber.org/zap"
)

// SubmitError reports a failed order submission. StatusCode is zero when the
// request never got a response.
type SubmitError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("submit order: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Confirmation is the restaurant API's answer. Its fields are not interpreted.
type Confirmation json.RawMessage

func (c Confirmation) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(c).MarshalJSON()
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
	logger  *zap.Logger
}

func NewClient(baseURL string, client HTTPClient, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		logger:  logger,
	}
}

// Submit posts the order with the diner's cookies so the restaurant API binds
// it to that diner's session.
func (c *Client) Submit(ctx context.Context, payload domain.OrderPayload, cookies domain.UpstreamCookies) (Confirmation, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, &SubmitError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	upstream.Attach(req, cookies)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &SubmitError{Err: err}
	}
	defer resp.Body.Close()
	upstream.Capture(resp, cookies)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(raw))}
	}

	c.logger.Debug("order accepted", zap.Int("status", resp.StatusCode), zap.Int("items", len(payload.Items)))

	if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
		return Confirmation("{}"), nil
	}
	return Confirmation(raw), nil
}
