package shopcrawl

import "context"

// RobotsPolicy answers whether a URL may be fetched under the site's
// robots.txt. Implementations fail open: when robots.txt cannot be retrieved
// or parsed, fetching is allowed.
type RobotsPolicy interface {
	Allowed(ctx context.Context, userAgent string, url string) bool
}
