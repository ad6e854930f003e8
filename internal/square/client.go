// Package square is a thin REST client for the Square Connect v2 API,
// covering the two calls this service makes: payment creation and Apple Pay
// domain registration.
package square

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"

	apiVersion = "2024-01-18"
)

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// New builds a client for the given environment ("sandbox" selects the
// sandbox host, anything else production).
func New(accessToken, environment string) *Client {
	baseURL := productionBaseURL
	if environment == "sandbox" {
		baseURL = sandboxBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// CreatePayment charges the tokenized source. The caller supplies a fresh
// idempotency key per attempt.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	var resp createPaymentResponse
	if err := c.post(ctx, "/v2/payments", req, &resp); err != nil {
		return nil, err
	}
	if resp.Payment == nil {
		return nil, fmt.Errorf("processor response missing payment object")
	}
	return resp.Payment, nil
}

// RegisterApplePayDomain registers domain for Apple Pay. An
// already-registered response is reported as (true, nil), not an error.
func (c *Client) RegisterApplePayDomain(ctx context.Context, domain string) (already bool, err error) {
	var resp registerDomainResponse
	err = c.post(ctx, "/v2/apple-pay/domains", registerDomainRequest{DomainName: domain}, &resp)
	if err == nil {
		return false, nil
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		if reqErr.StatusCode == http.StatusConflict ||
			strings.Contains(strings.ToLower(reqErr.Detail()), "already registered") {
			return true, nil
		}
	}
	return false, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode}
		var errBody struct {
			Errors []APIError `json:"errors"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			reqErr.Errors = errBody.Errors
		}
		return reqErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
