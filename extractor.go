package shopcrawl

// Extractor flattens raw HTML into plain text. Script, style, and page-chrome
// elements (nav, footer, header) are stripped; remaining text nodes are
// joined with one normalized line per block-level element.
type Extractor interface {
	Text(html string) (string, error)
}

// SchemaExtractor attempts structured product extraction from raw HTML.
type SchemaExtractor interface {
	// ProductSchema searches JSON-LD blocks for a schema.org Product object
	// (including objects nested under a @graph array), falling back to
	// itemtype microdata. It returns the first match found; ok is false when
	// the page carries no recognizable product schema. Malformed candidates
	// are skipped, never fatal.
	ProductSchema(html string) (schema ProductSchema, ok bool)
}
