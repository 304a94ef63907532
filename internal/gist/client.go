// Package gist fetches benchmark submissions from the comment feed of
// a GitHub gist.
package gist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"qsbench/internal/config"
	"qsbench/internal/models"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected
// status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// maxResponseBytes caps a single API page; comment pages are far
// smaller in practice.
const maxResponseBytes = 10 * 1024 * 1024

// Comment is one gist comment as returned by the GitHub API. A nil
// User means the account was deleted.
type Comment struct {
	User *User  `json:"user"`
	Body string `json:"body"`
	ID   int64  `json:"id"`
}

// User is the comment author.
type User struct {
	Login string `json:"login"`
}

// Client pages through a gist's comments with config-driven retry
// logic.
type Client struct {
	httpClient  *http.Client
	retryPolicy *config.RetryPolicy
	baseURL     string
	gistID      string
	token       string
	perPage     int
}

// NewClient creates a client for the given gist with default retry
// behavior.
func NewClient(gistID string) *Client {
	return NewClientWithConfig(&config.SourceConfig{
		GistID:  gistID,
		BaseURL: "https://api.github.com",
		PerPage: 100,
	}, &config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    500,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        30,
	})
}

// NewClientWithConfig creates a client from explicit source and retry
// configuration.
func NewClientWithConfig(source *config.SourceConfig, retryPolicy *config.RetryPolicy) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy: retryPolicy,
		baseURL:     source.BaseURL,
		gistID:      source.GistID,
		perPage:     source.PerPage,
	}
}

// SetToken sets an optional bearer token for authenticated requests,
// which raises the API rate limit.
func (c *Client) SetToken(token string) {
	c.token = token
}

// FetchComments pages through the gist's comment feed until a short
// page signals the end, and returns every comment.
func (c *Client) FetchComments() ([]Comment, error) {
	var comments []Comment

	for page := 1; ; page++ {
		batch, err := c.fetchPage(page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}

		comments = append(comments, batch...)

		if len(batch) < c.perPage {
			break
		}
	}

	return comments, nil
}

// FetchSubmissions fetches all comments and converts them to pipeline
// submissions. A deleted author becomes an empty submitter; the
// pipeline applies the anonymous sentinel.
func (c *Client) FetchSubmissions() ([]models.Submission, error) {
	comments, err := c.FetchComments()
	if err != nil {
		return nil, err
	}

	subs := make([]models.Submission, 0, len(comments))
	for _, comment := range comments {
		sub := models.Submission{Body: comment.Body}
		if comment.User != nil {
			sub.Submitter = comment.User.Login
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

// fetchPage requests one page of comments, retrying transient failures
// with exponential backoff.
func (c *Client) fetchPage(page int) ([]Comment, error) {
	endpoint := fmt.Sprintf("%s/gists/%s/comments", c.baseURL, url.PathEscape(c.gistID))

	var lastErr error

	for attempt := 1; attempt <= c.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if delay := c.retryPolicy.GetRetryDelay(attempt); delay > 0 {
				time.Sleep(delay)
			}
		}

		req, err := http.NewRequest(http.MethodGet, endpoint, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		q := req.URL.Query()
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(c.perPage))
		req.URL.RawQuery = q.Encode()

		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("User-Agent", "qsbench-worker/1.0")

		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, c.retryPolicy.MaxAttempts, err)

			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if closeErr := resp.Body.Close(); closeErr != nil && readErr == nil {
			readErr = closeErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)

			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		var comments []Comment
		if err := json.Unmarshal(body, &comments); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}

		return comments, nil
	}

	return nil, lastErr
}

// isRetryableStatus determines if we should retry based on HTTP status
// code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable: // 503
		return true
	case http.StatusGatewayTimeout: // 504
		return true
	case http.StatusTooManyRequests: // 429
		return true
	case http.StatusRequestTimeout: // 408
		return true
	}

	return false
}
