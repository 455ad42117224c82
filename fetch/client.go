// Package fetch retrieves remote ActivityStreams objects for reference
// reification. Results, including failures, are memoized per URI for
// the lifetime of the process: fetched content for a given URI is
// treated as immutable within a run, so concurrent writes for the same
// key are safe to race.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/c360studio/apcheck/vocab"
)

// acceptHeader negotiates for ActivityStreams representations first,
// falling back to generic JSON and finally HTML (for alternate-link
// discovery).
const acceptHeader = `application/activity+json, application/ld+json; profile="https://www.w3.org/ns/activitystreams", application/json;q=0.9, text/html;q=0.5`

// maxBodyBytes bounds how much of a remote document is read.
const maxBodyBytes = 2 << 20

// DefaultTimeout bounds a single fetch. The upstream behavior had no
// timeout at all; validation of documents with many remote references
// could stall indefinitely without one.
const DefaultTimeout = 10 * time.Second

// ErrNotAnObject is returned when the remote document parses but is
// not object-shaped.
var ErrNotAnObject = errors.New("remote document is not an object")

// Options configures a Client. Zero values select defaults.
type Options struct {
	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	// Logger for fetch diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client fetches and caches remote objects. Safe for concurrent use.
type Client struct {
	http      *http.Client
	cache     *gocache.Cache
	userAgent string
	log       *slog.Logger
}

type entry struct {
	doc vocab.Document
	err error
}

// NewClient creates a fetch client with a process-lifetime memo cache.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "apcheck/" + Version
	}
	return &Client{
		http:      httpClient,
		cache:     gocache.New(gocache.NoExpiration, 0),
		userAgent: userAgent,
		log:       logger,
	}
}

// Version is the client version reported in the User-Agent header.
const Version = "0.1.0"

// Object fetches the document at uri, parsing it once per process.
// Repeated calls for the same URI return the cached outcome, success
// or failure alike, without touching the network again.
func (c *Client) Object(ctx context.Context, uri string) (vocab.Document, error) {
	if cached, ok := c.cache.Get(uri); ok {
		fetchesTotal.WithLabelValues(resultHit).Inc()
		e := cached.(entry)
		return e.doc, e.err
	}

	doc, err := c.fetch(ctx, uri, true)
	if err != nil {
		fetchesTotal.WithLabelValues(resultError).Inc()
		c.log.Debug("reference fetch failed", "uri", uri, "error", err)
	} else {
		fetchesTotal.WithLabelValues(resultFetched).Inc()
	}
	c.cache.Set(uri, entry{doc: doc, err: err}, gocache.NoExpiration)
	return doc, err
}

func (c *Client) fetch(ctx context.Context, uri string, followAlternate bool) (vocab.Document, error) {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("malformed reference URI %q", uri)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported reference scheme %q", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", uri, err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", uri, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", uri, err)
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		if !followAlternate {
			return nil, fmt.Errorf("fetching %s: alternate link led to HTML again", uri)
		}
		alt := AlternateLink(body, parsed)
		if alt == "" {
			return nil, fmt.Errorf("fetching %s: HTML response without ActivityStreams alternate link", uri)
		}
		// One hop only.
		return c.fetch(ctx, alt, false)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", uri, err)
	}
	doc, ok := vocab.AsDocument(raw)
	if !ok {
		return nil, fmt.Errorf("parsing %s: %w", uri, ErrNotAnObject)
	}
	return doc, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml" ||
		strings.HasSuffix(mediaType, "+html")
}
