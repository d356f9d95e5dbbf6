package shopcrawl

// ProductSchema holds structured product metadata extracted from a page,
// using a subset of the schema.org Product vocabulary (name, price, offers,
// brand, etc.). Values may be scalars or nested maps, exactly as they appear
// in the page's JSON-LD.
type ProductSchema map[string]any

// Document represents one fetched-and-parsed page.
//
// A Document is owned exclusively by the crawl session that produced it and
// is never mutated after the session finishes processing its page.
type Document struct {
	// SourceURL is the URL the page was fetched from (after redirects).
	SourceURL string

	// Text is the page content flattened to plain text.
	Text string

	// IsProduct reports whether the URL classifier judged this a product page.
	IsProduct bool

	// Schema is the extracted product schema, nil if none was found or
	// extraction was disabled.
	Schema ProductSchema

	// ContentHash is an xxhash of Text, useful for spotting duplicate content
	// across URLs.
	ContentHash string
}

// CrawlStats holds the summary counters for one crawl session.
// They are mutated incrementally as pages are processed and are read-only
// once the session finishes.
type CrawlStats struct {
	TotalPages   int
	ProductPages int
	SchemaFound  int
	Errors       int
}

// CrawlResult is the finalized outcome of one crawl session: the documents in
// visit order plus the aggregate counters.
type CrawlResult struct {
	// SessionID uniquely identifies the crawl session that produced this result.
	SessionID string

	// SeedURL is the URL the session was started from.
	SeedURL string

	// Mode is the traversal mode the session ran in.
	Mode Mode

	// Documents are in strict visit order (BFS level order for the basic mode).
	Documents []Document

	// Stats are the session counters.
	Stats CrawlStats
}
