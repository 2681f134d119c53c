// Package prismic is a client for the Prismic REST API v2 and the post
// repository built on top of it.
package prismic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/philly/spacetraveling/internal/platform/logger"
	"golang.org/x/sync/singleflight"
)

const (
	searchPath        = "/documents/search"
	accessTokenParam  = "access_token"
	defaultTimeout    = 30 * time.Second
	maxErrorBodyBytes = 4 << 10

	// masterRefTTL bounds how long a publish takes to show up.
	masterRefTTL = 5 * time.Second
)

// Client errors.
var (
	// ErrInvalidRef is returned when the API rejects the ref of a query,
	// which is how expired or forged preview tokens surface.
	ErrInvalidRef = errors.New("prismic: invalid ref")

	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("prismic: unexpected status code")

	// ErrForeignURL is returned when a next-page URL does not point at the
	// configured repository.
	ErrForeignURL = errors.New("prismic: url does not belong to the repository")

	// ErrNoMasterRef is returned when the API root lists no master ref.
	ErrNoMasterRef = errors.New("prismic: no master ref")
)

// Config holds the connection settings of a repository.
type Config struct {
	// Endpoint is the API root, e.g. https://repo.cdn.prismic.io/api/v2
	Endpoint    string
	AccessToken string
	Timeout     time.Duration
}

// Client talks to a single Prismic repository. It is safe for concurrent use.
type Client struct {
	endpoint    *url.URL
	accessToken string
	httpClient  *http.Client
	logger      logger.Logger

	refs singleflight.Group

	mu        sync.Mutex
	master    string
	fetchedAt time.Time
}

// NewClient validates cfg and creates a client.
func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	endpoint, err := url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute http(s) URL", cfg.Endpoint)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:    endpoint,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      log,
	}, nil
}

// Ref is a content version of the repository.
type Ref struct {
	ID          string `json:"id"`
	Ref         string `json:"ref"`
	Label       string `json:"label"`
	IsMasterRef bool   `json:"isMasterRef"`
}

type apiResponse struct {
	Refs []Ref `json:"refs"`
}

// QueryOptions are the optional parameters of a search.
type QueryOptions struct {
	// Ref selects a content version; empty means the master ref.
	Ref       string
	Fetch     []string
	PageSize  int
	After     string
	Orderings []Ordering
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Page             int        `json:"page"`
	ResultsPerPage   int        `json:"results_per_page"`
	ResultsSize      int        `json:"results_size"`
	TotalResultsSize int        `json:"total_results_size"`
	TotalPages       int        `json:"total_pages"`
	NextPage         *string    `json:"next_page"`
	PrevPage         *string    `json:"prev_page"`
	Results          []Document `json:"results"`
}

// Document is a search result. Data is left raw for the caller to decode
// into its custom type.
type Document struct {
	ID                   string          `json:"id"`
	UID                  string          `json:"uid"`
	Type                 string          `json:"type"`
	Href                 string          `json:"href"`
	Tags                 []string        `json:"tags"`
	FirstPublicationDate *string         `json:"first_publication_date"`
	LastPublicationDate  *string         `json:"last_publication_date"`
	Lang                 string          `json:"lang"`
	Data                 json.RawMessage `json:"data"`
}

// MasterRef returns the ref of the currently published content. The
// ref is cached for a few seconds and concurrent lookups share one
// request.
func (c *Client) MasterRef(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.master != "" && time.Since(c.fetchedAt) < masterRefTTL {
		ref := c.master
		c.mu.Unlock()
		return ref, nil
	}
	c.mu.Unlock()

	return c.refreshMasterRef(ctx)
}

// Ping checks that the API root answers. It always hits the network.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.refreshMasterRef(ctx)
	return err
}

// refreshMasterRef fetches the master ref. The shared request is detached
// from the caller's context, so one cancelled caller does not fail the
// others waiting on it; the HTTP client timeout still bounds it.
func (c *Client) refreshMasterRef(ctx context.Context) (string, error) {
	ch := c.refs.DoChan("master", func() (interface{}, error) {
		var api apiResponse
		if err := c.get(context.WithoutCancel(ctx), c.apiURL(), &api); err != nil {
			return "", fmt.Errorf("get api root: %w", err)
		}
		for _, ref := range api.Refs {
			if ref.IsMasterRef {
				c.mu.Lock()
				c.master, c.fetchedAt = ref.Ref, time.Now()
				c.mu.Unlock()
				return ref.Ref, nil
			}
		}
		return "", ErrNoMasterRef
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Query searches documents matching all predicates.
func (c *Client) Query(ctx context.Context, predicates []Predicate, opts QueryOptions) (*SearchResponse, error) {
	ref := opts.Ref
	if ref == "" {
		master, err := c.MasterRef(ctx)
		if err != nil {
			return nil, err
		}
		ref = master
	}

	u := c.endpoint.JoinPath(searchPath)
	q := url.Values{}
	q.Set("ref", ref)
	if len(predicates) > 0 {
		q.Set("q", buildQuery(predicates))
	}
	if len(opts.Fetch) > 0 {
		q.Set("fetch", strings.Join(opts.Fetch, ","))
	}
	if opts.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.After != "" {
		q.Set("after", opts.After)
	}
	if orderings := buildOrderings(opts.Orderings); orderings != "" {
		q.Set("orderings", orderings)
	}
	u.RawQuery = q.Encode()

	var resp SearchResponse
	if err := c.get(ctx, c.withToken(u), &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &resp, nil
}

// FetchURL follows a next_page URL returned by a previous search. The URL
// must point at the search endpoint of this repository.
func (c *Client) FetchURL(ctx context.Context, rawURL string) (*SearchResponse, error) {
	u, err := c.ownURL(rawURL)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := c.get(ctx, c.withToken(u), &resp); err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	return &resp, nil
}

// PublicURL strips the access token from a URL returned by the API so it
// can be handed to browsers. FetchURL adds it back.
func (c *Client) PublicURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if !q.Has(accessTokenParam) {
		return rawURL
	}
	q.Del(accessTokenParam)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) ownURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForeignURL, err)
	}
	if !strings.EqualFold(u.Host, c.endpoint.Host) || u.Scheme != c.endpoint.Scheme {
		return nil, fmt.Errorf("%w: host %q", ErrForeignURL, u.Host)
	}
	if u.Path != c.endpoint.JoinPath(searchPath).Path {
		return nil, fmt.Errorf("%w: path %q", ErrForeignURL, u.Path)
	}
	return u, nil
}

func (c *Client) apiURL() string {
	u := *c.endpoint
	return c.withToken(&u)
}

func (c *Client) withToken(u *url.URL) string {
	if c.accessToken == "" {
		return u.String()
	}
	q := u.Query()
	q.Set(accessTokenParam, c.accessToken)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "prismic request",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return statusError(resp.StatusCode, req.URL, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError classifies a failed response. A client error on a request
// carrying a ref means the ref was rejected.
func statusError(status int, u *url.URL, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if status >= 400 && status < 500 && status != http.StatusTooManyRequests && u.Query().Has("ref") {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidRef, status, msg)
	}
	return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, status, msg)
}
