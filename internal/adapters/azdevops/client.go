package azdevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

const retryMaxElapsed = 20 * time.Second

// Client talks to the Azure DevOps REST API for one repository
type Client struct {
	BaseURL      string
	HTTPClient   *http.Client
	Organization string
	PAT          string
	Project      string
	Repository   string

	// newBackOff returns a fresh retry policy per request; BackOff
	// implementations are stateful
	newBackOff func() backoff.BackOff
}

var _ ports.ReviewPlatform = (*Client)(nil)

// NewClient creates a client for the given organization, project and
// repository. The organization may be a name or a full URL.
func NewClient(organization, project, repository, pat string) *Client {
	baseURL := organization
	if !strings.HasPrefix(organization, "http") {
		baseURL = fmt.Sprintf("https://dev.azure.com/%s", organization)
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		BaseURL:      baseURL,
		HTTPClient:   &http.Client{Timeout: defaultTimeout},
		Organization: organization,
		PAT:          pat,
		Project:      project,
		Repository:   repository,
		newBackOff:   newAPIBackoff,
	}
}

func newAPIBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = retryMaxElapsed
	return bo
}

// doRequest performs an authenticated request, retrying throttled and
// server-fault responses. Other failures stop immediately.
func (c *Client) doRequest(ctx context.Context, method, path, apiVer string, body any, contentType string) ([]byte, error) {
	var reqBody []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = data
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	reqURL := c.BaseURL + path + separator + "api-version=" + apiVer

	var respBody []byte
	attempt := 0
	operation := func() error {
		attempt++
		data, status, err := c.send(ctx, method, reqURL, reqBody, contentType)
		if err != nil {
			logging.Logger.Warn("Azure DevOps request failed",
				"method", method, "url", reqURL, "attempt", attempt, "error", err)
			return err
		}
		if status == http.StatusTooManyRequests || status >= 500 {
			logging.Logger.Warn("Azure DevOps request throttled or faulted",
				"method", method, "url", reqURL, "status", status, "attempt", attempt)
			return &apiError{Body: string(data), Status: status}
		}
		if status < 200 || status >= 300 {
			return backoff.Permanent(&apiError{Body: string(data), Status: status})
		}
		respBody = data
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return respBody, nil
}

func (c *Client) send(ctx context.Context, method, reqURL string, body []byte, contentType string) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	// Basic auth with an empty username and the PAT as password
	auth := base64.StdEncoding.EncodeToString([]byte(":" + c.PAT))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	} else if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// IsNotFound reports whether the error is a 404 from the platform
func IsNotFound(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
