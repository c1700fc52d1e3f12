package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/local-mcps/grocery-mcps/config"
	"github.com/local-mcps/grocery-mcps/internal/common"
)

// Client is the single long-lived GraphQL transport. Cookie and header values
// are composed once at construction; per-call state lives on the stack, so
// concurrent calls are safe.
type Client struct {
	httpClient *http.Client
	endpoint   string
	cookie     string
	headers    map[string]string
	logger     *common.Logger
}

func NewClient(cfg *config.GroceryConfig, logger *common.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		endpoint: cfg.APIURL,
		cookie:   fmt.Sprintf("sst=%s; sst-sig=%s", cfg.SessionCookie, cfg.SessionSignature),
		headers: map[string]string{
			"Content-Type":                 "application/json",
			"apollographql-client-name":    "web",
			"apollographql-client-version": "1.0.0",
			"Origin":                       "https://www.heb.com",
			"Referer":                      "https://www.heb.com/",
			"User-Agent":                   cfg.UserAgent,
		},
		logger: logger,
	}
}

type graphQLEnvelope struct {
	Data   map[string]interface{} `json:"data"`
	Errors []graphQLError         `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// Execute performs exactly one round trip and classifies the outcome. The
// returned data is untyped; the normalizers impose structure.
func (c *Client) Execute(ctx context.Context, req *GraphQLRequest) (map[string]interface{}, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", common.ErrUpstream, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", common.ErrUpstream, err)
	}

	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Cookie", c.cookie)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: request timed out", common.ErrNetwork)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", common.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: authentication expired or invalid (HTTP %d)", common.ErrAuthentication, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: upstream throttled the request (HTTP 429)", common.ErrRateLimited)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: HTTP %d %s", common.ErrNetwork, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrUpstream, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		joined := strings.Join(messages, ", ")
		lowered := strings.ToLower(joined)
		if strings.Contains(lowered, "unauthorized") || strings.Contains(lowered, "unauthenticated") {
			return nil, fmt.Errorf("%w: %s", common.ErrAuthentication, joined)
		}
		return nil, fmt.Errorf("%w: %s", common.ErrUpstream, joined)
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: no data returned", common.ErrUpstream)
	}

	c.logger.WithField("operation", req.OperationName).Debug("graphql call succeeded")

	return envelope.Data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
