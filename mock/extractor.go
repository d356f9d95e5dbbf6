package mock

import "github.com/fwojciec/shopcrawl"

var _ shopcrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of shopcrawl.Extractor.
type Extractor struct {
	TextFn func(html string) (string, error)
}

func (e *Extractor) Text(html string) (string, error) {
	return e.TextFn(html)
}

var _ shopcrawl.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor is a mock implementation of shopcrawl.SchemaExtractor.
type SchemaExtractor struct {
	ProductSchemaFn func(html string) (shopcrawl.ProductSchema, bool)
}

func (e *SchemaExtractor) ProductSchema(html string) (shopcrawl.ProductSchema, bool) {
	return e.ProductSchemaFn(html)
}
