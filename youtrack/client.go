package youtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"
)

const defaultTimeout = 30 * time.Second

// Client is a blocking YouTrack REST client. One instance is safe for
// concurrent use; every call decodes through the shared entity catalog.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// ClientOption adjusts client construction.
type ClientOption func(*Client)

// WithHTTPClient replaces the transport. Callers that need retries or custom
// timeouts install a preconfigured *http.Client here; the bearer token is
// layered on top of whatever transport it carries.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient returns a client for the YouTrack instance at baseURL,
// authenticating every request with the permanent token.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("youtrack: token must not be empty")
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("youtrack: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("youtrack: base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Transport: cleanhttp.DefaultPooledTransport(), Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   c.httpClient.Transport,
		},
		Timeout: c.httpClient.Timeout,
	}

	return c, nil
}

// BaseURL returns the configured instance URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// AbsoluteURL resolves a server-relative path (such as an attachment URL)
// against the instance URL.
func (c *Client) AbsoluteURL(path string) string {
	rel, err := url.Parse(path)
	if err != nil {
		return c.baseURL.String() + path
	}
	return c.baseURL.ResolveReference(rel).String()
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) apiURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api" + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do issues one API request. A non-nil body is encoded as JSON; a non-nil out
// receives the decoded response. Decode failures surface codec taxonomy
// errors, transport failures surface the error sentinels.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("youtrack: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("youtrack: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.roundTrip(req, out)
}

// upload posts files as a multipart form, the shape the attachments endpoints
// require.
func (c *Client) upload(ctx context.Context, path string, query url.Values, files map[string]io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(name, name)
		if err != nil {
			return fmt.Errorf("youtrack: build multipart form: %w", err)
		}
		if _, err := io.Copy(part, content); err != nil {
			return fmt.Errorf("youtrack: read attachment %q: %w", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("youtrack: finish multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path, query), &buf)
	if err != nil {
		return fmt.Errorf("youtrack: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.roundTrip(req, out)
}

func (c *Client) roundTrip(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapAPIError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("youtrack: read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return wrapAPIError(&APIError{StatusCode: resp.StatusCode, Body: string(respBody)})
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return codecError(err)
	}
	return nil
}
