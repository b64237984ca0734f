package currencyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"currency-assistant/configs"
	"currency-assistant/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// errorBody is the error payload both currency services answer with
type errorBody struct {
	Detail string `json:"detail"`
}

// client struct - JSON over HTTP shared by the manager and data adapters.
// Calls are made once; a failure is reported to the caller and never retried.
type client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	name       string
}

func newClient(name string, config configs.Service) *client {
	baseURL := strings.TrimSuffix(config.URL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("%s client adapter initialized with base URL: %s, timeout: %v", name, baseURL, timeout)

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
		name:       name,
	}
}

// do sends one request and decodes a 2xx body into out.
// statusErrors maps the non-2xx statuses the endpoint documents to domain errors;
// any other status and every transport failure become ErrServiceUnavailable.
func (c *client) do(ctx context.Context, method, path string, body interface{}, out interface{}, statusErrors map[int]error) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", domain.ErrServiceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.Errorf("%s request %s %s failed: %v", c.name, method, path, err)
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", domain.ErrServiceUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			logrus.Errorf("%s returned an unreadable body for %s %s: %v", c.name, method, path, err)
			return fmt.Errorf("%w: failed to parse response: %v", domain.ErrServiceUnavailable, err)
		}
		return nil
	}

	detail := string(respBody)
	var eb errorBody
	if json.Unmarshal(respBody, &eb) == nil && eb.Detail != "" {
		detail = eb.Detail
	}

	if mapped, ok := statusErrors[resp.StatusCode]; ok {
		return fmt.Errorf("%w: %s", mapped, detail)
	}

	logrus.Errorf("%s answered %s %s with status %d: %s", c.name, method, path, resp.StatusCode, detail)
	return fmt.Errorf("%w: status %d - %s", domain.ErrServiceUnavailable, resp.StatusCode, detail)
}
