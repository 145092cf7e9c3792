// Package activities is an HTTP client for the Activities API: the activity
// catalogue, signups and unregistrations.
//
// Example usage:
//
//	client, err := activities.New("http://localhost:8000")
//	list, err := client.GetActivities(ctx)
//	result, err := client.Signup(ctx, "Chess Club", "student@mergington.edu")
package activities

import (
	"activityBoard/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one Activities API instance.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type Option func(*Client)

// WithTimeout bounds every request. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the API rooted at baseURL, which must include the scheme.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must include scheme and host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetActivities fetches the catalogue in the key order the API sent it.
// Any non-2xx status or non-JSON body is an error.
func (c *Client) GetActivities(ctx context.Context) (models.Activities, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching activities: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var activities models.Activities
	if err = json.Unmarshal(body, &activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}

	return activities, nil
}

// Signup registers email for the named activity. A response from the API is
// returned as a result whatever its status; an error means no usable response
// was obtained.
func (c *Client) Signup(ctx context.Context, activityName, email string) (*models.SignupResult, error) {
	return c.post(ctx, activityName, "signup", email)
}

// Unregister removes email from the named activity's roster.
func (c *Client) Unregister(ctx context.Context, activityName, email string) (*models.SignupResult, error) {
	return c.post(ctx, activityName, "unregister", email)
}

func (c *Client) post(ctx context.Context, activityName, action, email string) (*models.SignupResult, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL.String(),
		encodeComponent(activityName),
		action,
		encodeComponent(email),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s request: %w", action, err)
	}
	defer resp.Body.Close()

	result := &models.SignupResult{StatusCode: resp.StatusCode}
	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", action, err)
	}

	return result, nil
}

// componentUnescaper restores the characters encodeURIComponent leaves alone
// and url.QueryEscape does not.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s for use as a path segment or query value the way
// encodeURIComponent does: letters, digits and -_.!~*'() stay as they are.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
