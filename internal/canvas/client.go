package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gradebench-backend/internal/config"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/oauth2"
)

const apiPrefix = "/api/v1"

// Options tunes retry and pagination behavior of the client
type Options struct {
	PageSize       int
	Timeout        time.Duration
	MaxRetries     int           // transient-failure retries per page
	RetryInterval  time.Duration // base of the linear transient back-off
	RateLimitTries int           // throttle retries per page before giving up
	BackoffMax     time.Duration // cap for the exponential throttle back-off
	HTTPClient     *http.Client  // optional, overrides the oauth2 client
}

// Client talks to the Canvas REST API. It follows Link-header pagination,
// backs off on throttling, and retries transient failures; see Pager.
type Client struct {
	baseURL string
	http    *http.Client
	opts    Options
	log     *logger.Logger
}

// NewClient creates a Canvas client authenticated with a bearer token
func NewClient(baseURL, token string, opts Options) *Client {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = time.Second
	}
	if opts.RateLimitTries <= 0 {
		opts.RateLimitTries = 5
	}
	if opts.BackoffMax <= 0 {
		opts.BackoffMax = time.Minute
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = opts.Timeout

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		opts:    opts,
		log:     logger.New().WithField("component", "canvas"),
	}
}

// FromConfig creates a client from application configuration
func FromConfig(cfg *config.Config) *Client {
	return NewClient(cfg.CanvasBaseURL, cfg.CanvasAccessToken, Options{
		PageSize:       cfg.CanvasPageSize,
		Timeout:        cfg.CanvasTimeout(),
		MaxRetries:     cfg.CanvasMaxRetries,
		RateLimitTries: cfg.CanvasRateLimitTries,
		BackoffMax:     time.Duration(cfg.CanvasBackoffMaxSec) * time.Second,
	})
}

type fetchOutcome int

const (
	outcomeOK fetchOutcome = iota
	outcomeThrottled
	outcomeTransient
	outcomeAuth
	outcomeFatal
)

// classify buckets a response for the retry loop. Canvas signals throttling
// with 403 + "X-Rate-Limit-Remaining: 0" (or a throttle body), which must not
// be confused with a real permission failure.
func classify(resp *http.Response, body []byte, err error) (fetchOutcome, error) {
	if err != nil {
		return outcomeTransient, err
	}
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return outcomeOK, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return outcomeAuth, apperrors.NewAuthError("LMS rejected credential (401)")
	case resp.StatusCode == http.StatusForbidden:
		if resp.Header.Get("X-Rate-Limit-Remaining") == "0" ||
			strings.Contains(string(body), "Rate Limit Exceeded") {
			return outcomeThrottled, nil
		}
		return outcomeAuth, apperrors.NewAuthError("LMS rejected credential (403)")
	case resp.StatusCode == http.StatusTooManyRequests:
		return outcomeThrottled, nil
	case resp.StatusCode >= 500:
		return outcomeTransient, fmt.Errorf("LMS returned %d", resp.StatusCode)
	default:
		return outcomeFatal, fmt.Errorf("LMS returned %d: %s", resp.StatusCode, truncate(body, 200))
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// do issues one request and fully reads the body
func (c *Client) do(ctx context.Context, method, rawURL string, payload io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

// request runs one call with the full retry policy: exponential bounded
// back-off on throttling, linear back-off on transient failures, immediate
// failure on auth errors. Retries always re-issue the same URL, so a
// throttled page is re-fetched, never skipped.
func (c *Client) request(ctx context.Context, method, rawURL string, payload []byte) (*http.Response, []byte, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.opts.RetryInterval
	expo.MaxInterval = c.opts.BackoffMax

	var rateTries, transportTries int
	for {
		var reader io.Reader
		if payload != nil {
			reader = strings.NewReader(string(payload))
		}
		resp, body, err := c.do(ctx, method, rawURL, reader)

		outcome, cause := classify(resp, body, err)
		switch outcome {
		case outcomeOK:
			return resp, body, nil

		case outcomeThrottled:
			rateTries++
			if rateTries >= c.opts.RateLimitTries {
				return nil, nil, &apperrors.RateLimitedError{Endpoint: rawURL, Attempts: rateTries}
			}
			wait := expo.NextBackOff()
			c.log.WithFields(map[string]interface{}{
				"url": rawURL, "attempt": rateTries, "wait": wait.String(),
			}).Warn("LMS throttled request, backing off")
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, nil, &apperrors.TransportError{Endpoint: rawURL, Err: err}
			}

		case outcomeTransient:
			transportTries++
			if transportTries >= c.opts.MaxRetries {
				return nil, nil, &apperrors.TransportError{Endpoint: rawURL, Err: cause}
			}
			wait := time.Duration(transportTries) * c.opts.RetryInterval
			c.log.WithFields(map[string]interface{}{
				"url": rawURL, "attempt": transportTries, "error": cause.Error(),
			}).Warn("transient LMS failure, retrying")
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, nil, &apperrors.TransportError{Endpoint: rawURL, Err: err}
			}

		case outcomeAuth:
			return nil, nil, cause

		default:
			return nil, nil, cause
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextLink extracts the rel="next" target from an RFC 5988 Link header.
// Canvas requires following these links verbatim rather than constructing
// page URLs.
func nextLink(h http.Header) string {
	for _, link := range h.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			section := strings.Split(part, ";")
			if len(section) < 2 {
				continue
			}
			target := strings.Trim(strings.TrimSpace(section[0]), "<>")
			for _, param := range section[1:] {
				if strings.TrimSpace(param) == `rel="next"` {
					return target
				}
			}
		}
	}
	return ""
}

// Pager is a lazy, finite, non-restartable iterator over a paginated
// collection. Each call to Next fetches one page; the caller may stop early
// without retrieving remaining pages.
type Pager struct {
	client *Client
	next   string
	page   []json.RawMessage
	err    error
	done   bool
}

// NewPager builds a pager for a collection endpoint under /api/v1
func (c *Client) NewPager(path string, query url.Values) *Pager {
	if query == nil {
		query = url.Values{}
	}
	query.Set("per_page", fmt.Sprintf("%d", c.opts.PageSize))
	return &Pager{
		client: c,
		next:   c.baseURL + apiPrefix + path + "?" + query.Encode(),
	}
}

// Next fetches the next page. It returns false when the collection is
// exhausted or an error occurred; check Err afterwards.
func (p *Pager) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}
	resp, body, err := p.client.request(ctx, http.MethodGet, p.next, nil)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}

	var page []json.RawMessage
	if err := json.Unmarshal(body, &page); err != nil {
		p.err = fmt.Errorf("decode page from %s: %w", p.next, err)
		p.done = true
		return false
	}
	p.page = page

	p.next = nextLink(resp.Header)
	if p.next == "" {
		p.done = true
	}
	return true
}

// Page returns the records of the page fetched by the last Next call
func (p *Pager) Page() []json.RawMessage {
	return p.page
}

// Err returns the error that terminated iteration, if any
func (p *Pager) Err() error {
	return p.err
}

// FetchAll drains a collection endpoint into memory, in page order
func (c *Client) FetchAll(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	pager := c.NewPager(path, query)
	var all []json.RawMessage
	for pager.Next(ctx) {
		all = append(all, pager.Page()...)
	}
	if err := pager.Err(); err != nil {
		return nil, err
	}
	return all, nil
}

// listAll fetches every page of a collection and decodes records into T
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.FetchAll(ctx, path, query)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, record := range raw {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("decode record from %s: %w", path, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// getOne fetches a single object endpoint
func getOne[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	rawURL := c.baseURL + apiPrefix + path
	if query != nil {
		rawURL += "?" + query.Encode()
	}
	_, body, err := c.request(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decode object from %s: %w", path, err)
	}
	return &item, nil
}

// GetCourse retrieves one course including its term
func (c *Client) GetCourse(ctx context.Context, courseID int64) (*Course, error) {
	query := url.Values{}
	query.Add("include[]", "term")
	return getOne[Course](ctx, c, fmt.Sprintf("/courses/%d", courseID), query)
}

// ListCourses retrieves all courses visible to the credential
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	query := url.Values{}
	query.Add("include[]", "term")
	return listAll[Course](ctx, c, "/courses", query)
}

// ListEnrollments retrieves all enrollments of a course with embedded users
func (c *Client) ListEnrollments(ctx context.Context, courseID int64) ([]Enrollment, error) {
	query := url.Values{}
	query.Add("include[]", "user")
	return listAll[Enrollment](ctx, c, fmt.Sprintf("/courses/%d/enrollments", courseID), query)
}

// ListAssignments retrieves all assignments of a course
func (c *Client) ListAssignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	return listAll[Assignment](ctx, c, fmt.Sprintf("/courses/%d/assignments", courseID), nil)
}

// ListSubmissions retrieves all submissions of all students in a course
func (c *Client) ListSubmissions(ctx context.Context, courseID int64) ([]Submission, error) {
	query := url.Values{}
	query.Add("student_ids[]", "all")
	return listAll[Submission](ctx, c, fmt.Sprintf("/courses/%d/students/submissions", courseID), query)
}

// ListGroupCategories retrieves the group sets of a course
func (c *Client) ListGroupCategories(ctx context.Context, courseID int64) ([]GroupCategory, error) {
	return listAll[GroupCategory](ctx, c, fmt.Sprintf("/courses/%d/group_categories", courseID), nil)
}

// ListGroups retrieves the groups of a group category
func (c *Client) ListGroups(ctx context.Context, categoryID int64) ([]Group, error) {
	return listAll[Group](ctx, c, fmt.Sprintf("/group_categories/%d/groups", categoryID), nil)
}

// ListGroupUsers retrieves the members of a group
func (c *Client) ListGroupUsers(ctx context.Context, groupID int64) ([]User, error) {
	return listAll[User](ctx, c, fmt.Sprintf("/groups/%d/users", groupID), nil)
}
