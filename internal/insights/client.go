package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"insightagent/internal/domain"
)

// DefaultTimeout bounds one forward when the caller supplies no client.
const DefaultTimeout = 10 * time.Second

// Client forwards descriptors to the intelligence service.
type Client struct {
	HTTP *http.Client
	Log  zerolog.Logger
}

// NewClient returns a Client using hc, or a client with DefaultTimeout when
// hc is nil.
func NewClient(hc *http.Client, log zerolog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{HTTP: hc, Log: log}
}

var _ domain.InsightsForwarder = (*Client)(nil)

// Forward sends rd once and decodes the Insights document.
func (c *Client) Forward(ctx context.Context, rd domain.RequestDescriptor) (domain.Insights, error) {
	var out domain.Insights

	req, err := NewHTTPRequest(ctx, rd)
	if err != nil {
		return out, err
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, fmt.Errorf("insights %s %s: %w", rd.Method, rd.URL, err)
	}
	defer resp.Body.Close()

	c.Log.Debug().
		Str("url", rd.URL).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("insights response")

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return out, fmt.Errorf("insights %s %s: %s: %s",
			rd.Method, rd.URL, resp.Status, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("insights decode response: %w", err)
	}
	return out, nil
}

// NewHTTPRequest materialises rd as an *http.Request bound to ctx.
func NewHTTPRequest(ctx context.Context, rd domain.RequestDescriptor) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, rd.Method, rd.URL, strings.NewReader(rd.Body))
	if err != nil {
		return nil, err
	}
	for k, vs := range rd.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}
