package logview

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Response is what a Getter hands back for a request path.
type Response struct {
	Body        []byte
	ContentType string
}

// Getter performs a GET against the dashboard for a resolved request path.
// Failures, including non-2xx answers, are reported as errors.
type Getter interface {
	Get(ctx context.Context, path string) (*Response, error)
}

// Content is the outcome of a fetch: either a listing or raw text.
type Content struct {
	Entries []Entry
	Text    string

	listing bool
}

// IsListing reports whether the response was an HTML listing. An empty
// listing is still a listing.
func (c *Content) IsListing() bool {
	return c.listing
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL sets the dashboard origin that listing links are resolved
// against. The page path passed to Fetch completes it.
func WithBaseURL(u *url.URL) FetcherOption {
	return func(f *Fetcher) {
		f.base = u
	}
}

// Fetcher reads log references through a Getter. It holds no state between
// calls and never retries.
type Fetcher struct {
	getter Getter
	base   *url.URL
}

// NewFetcher returns a Fetcher that issues requests through g.
func NewFetcher(g Getter, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{getter: g}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch resolves raw relative to the page at pathname, requests it and
// returns either the parsed listing or the body as text.
func (f *Fetcher) Fetch(ctx context.Context, pathname, raw string) (*Content, error) {
	scoped := rescope(pathname, raw)
	reqPath := requestPath(scoped)

	resp, err := f.getter.Get(ctx, reqPath)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", reqPath, err)
	}

	if !strings.Contains(strings.ToLower(resp.ContentType), "html") {
		return &Content{Text: string(resp.Body)}, nil
	}

	entries, err := ParseListing(bytes.NewReader(resp.Body), f.documentURL(pathname), scoped == IndexPath)
	if err != nil {
		return nil, err
	}
	return &Content{Entries: entries, listing: true}, nil
}

// documentURL is the address of the page the listing is shown on.
func (f *Fetcher) documentURL(pathname string) *url.URL {
	if f.base == nil {
		return nil
	}
	page := *f.base
	if pathname != "" {
		page.Path = pathname
		page.RawPath = ""
	}
	page.RawQuery = ""
	page.Fragment = ""
	return &page
}
