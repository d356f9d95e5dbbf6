package mock

import "github.com/fwojciec/shopcrawl"

var _ shopcrawl.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of shopcrawl.PlatformDetector.
type PlatformDetector struct {
	DetectFn          func(html string) shopcrawl.Platform
	RequiresJSFn      func(html string) bool
	ProductPatternsFn func(html string) []string
}

func (d *PlatformDetector) Detect(html string) shopcrawl.Platform {
	return d.DetectFn(html)
}

func (d *PlatformDetector) RequiresJS(html string) bool {
	return d.RequiresJSFn(html)
}

func (d *PlatformDetector) ProductPatterns(html string) []string {
	return d.ProductPatternsFn(html)
}
