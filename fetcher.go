package shopcrawl

import "context"

// FetchResult holds a fetched page plus minimal transport metadata.
type FetchResult struct {
	// StatusCode is the final HTTP status. Browser-rendered fetches report
	// 200 when navigation succeeded.
	StatusCode int

	// HTML is the raw (or rendered) page markup.
	HTML string

	// FinalURL is the URL after redirects. Equal to the requested URL when no
	// redirect occurred.
	FinalURL string
}

// Fetcher retrieves a single page for one URL. It is the crawl core's only
// true I/O boundary; implementations may issue a plain HTTP GET or drive a
// headless browser for JavaScript-rendered content.
//
// The context controls timeout and cancellation. A non-200 response is
// reported as an error with code EUNAVAILABLE so callers can count it without
// inspecting the result.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher (browser processes,
	// idle connections). Must be called when the Fetcher is no longer needed.
	Close() error
}
