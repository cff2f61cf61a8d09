package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout is the fixed per-call budget for outbound requests. Expiry
// surfaces as a plain network error and is never retried.
const DefaultTimeout = 10 * time.Second

// Client talks to the remote betting-pool service. It owns no wager state;
// every call returns the server's current view.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialProvider
}

// NewClient creates a client for the given base URL with the injected
// credential provider
func NewClient(baseURL string, creds CredentialProvider) *Client {
	return NewClientWithTimeout(baseURL, creds, DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom per-call timeout
func NewClientWithTimeout(baseURL string, creds CredentialProvider, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

// do sends one request with the bearer credential attached. On 401 it
// refreshes the credential and retries exactly once; a second 401 aborts
// with ErrUnauthorized so the caller never double-submits.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain credential: %w", err)
	}

	res, err := c.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized {
		res.Body.Close()
		log.WithFields(log.Fields{
			"method": method,
			"path":   path,
		}).Warn("Credential rejected, refreshing once")

		token, err = c.creds.Refresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh credential: %w", err)
		}
		res, err = c.send(ctx, method, path, query, payload, token)
		if err != nil {
			return err
		}
		if res.StatusCode == http.StatusUnauthorized {
			res.Body.Close()
			return ErrUnauthorized
		}
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, res.Body)
		return ErrNotFound
	case res.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, res.Body)
		return ErrUpgradeRequired
	case res.StatusCode >= 300:
		return decodeError(res)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return res, nil
}

// decodeError builds an APIError from a non-2xx response, pulling the
// backend's detail field when present
func decodeError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	var detail struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&detail); err == nil {
		if detail.Detail != "" {
			apiErr.Message = detail.Detail
		} else {
			apiErr.Message = detail.Message
		}
	}
	return apiErr
}
