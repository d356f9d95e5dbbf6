package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor pulls schema.org Product metadata out of a page. JSON-LD
// blocks are preferred; itemtype microdata is the fallback. The first match
// wins; multiple candidate schemas are never merged.
type SchemaExtractor struct{}

// NewSchemaExtractor creates a new SchemaExtractor.
func NewSchemaExtractor() *SchemaExtractor {
	return &SchemaExtractor{}
}

// ProductSchema returns the first Product schema found in the HTML.
// Malformed JSON-LD candidates are skipped per-candidate, never fatal.
func (e *SchemaExtractor) ProductSchema(rawHTML string) (shopcrawl.ProductSchema, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, false
	}

	if schema, ok := fromJSONLD(doc); ok {
		return schema, true
	}
	return fromMicrodata(doc)
}

// fromJSONLD searches <script type="application/ld+json"> blocks for an
// object whose @type is Product, including objects nested under a @graph
// array.
func fromJSONLD(doc *goquery.Document) (shopcrawl.ProductSchema, bool) {
	var found shopcrawl.ProductSchema

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true // skip malformed candidate
		}

		if isProduct(data) {
			found = data
			return false
		}

		if graph, ok := data["@graph"].([]any); ok {
			for _, item := range graph {
				node, ok := item.(map[string]any)
				if !ok {
					continue
				}
				if isProduct(node) {
					found = node
					return false
				}
			}
		}
		return true
	})

	return found, found != nil
}

// fromMicrodata scans for itemtype attributes referencing schema.org/Product
// and pulls the name and price sub-properties.
func fromMicrodata(doc *goquery.Document) (shopcrawl.ProductSchema, bool) {
	var found shopcrawl.ProductSchema

	doc.Find("[itemtype]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		itemtype, _ := s.Attr("itemtype")
		if !strings.Contains(itemtype, "schema.org/Product") {
			return true
		}

		schema := shopcrawl.ProductSchema{"@type": "Product"}
		if name := s.Find(`[itemprop="name"]`).First(); name.Length() > 0 {
			schema["name"] = strings.TrimSpace(name.Text())
		}
		if price := s.Find(`[itemprop="price"]`).First(); price.Length() > 0 {
			schema["offers"] = map[string]any{"price": strings.TrimSpace(price.Text())}
		}

		found = schema
		return false
	})

	return found, found != nil
}

func isProduct(node map[string]any) bool {
	switch t := node["@type"].(type) {
	case string:
		return t == "Product"
	case []any:
		// @type can legally be a list, e.g. ["Product", "IndividualProduct"].
		for _, v := range t {
			if s, ok := v.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}
