// Package turnstile wraps the Cloudflare Turnstile siteverify endpoint.
package turnstile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atorres/portfolio-api/pkg/logging"
)

const defaultBaseURL = "https://challenges.cloudflare.com/turnstile/v0"

// Config controls how the Turnstile client behaves.
type Config struct {
	BaseURL    string
	Secret     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client verifies challenge tokens against the siteverify endpoint.
type Client struct {
	secret     string
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("turnstile: secret is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		secret:     cfg.Secret,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify submits the token (plus the client address for provider-side risk
// scoring) and reports whether the challenge passed. A transport failure
// returns an error; a non-2xx status counts as a failed verification.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/siteverify", strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("turnstile: build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("turnstile: siteverify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("turnstile: siteverify returned non-success status", "status", resp.StatusCode)
		return false, nil
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("turnstile: decode siteverify response: %w", err)
	}
	if !body.Success {
		c.logger.Debug("turnstile: verification rejected", "error_codes", body.ErrorCodes)
	}
	return body.Success, nil
}
