package shopcrawl_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/shopcrawl"
	"github.com/stretchr/testify/assert"
)

func TestCrawlResult_ConsolidatedText(t *testing.T) {
	t.Parallel()

	result := &shopcrawl.CrawlResult{
		SeedURL: "https://shop.example.com",
		Stats: shopcrawl.CrawlStats{
			TotalPages:   2,
			ProductPages: 1,
			SchemaFound:  1,
			Errors:       1,
		},
		Documents: []shopcrawl.Document{
			{
				SourceURL: "https://shop.example.com",
				Text:      "Welcome to the shop",
			},
			{
				SourceURL: "https://shop.example.com/products/widget",
				Text:      "Widget details",
				IsProduct: true,
				Schema:    shopcrawl.ProductSchema{"@type": "Product", "name": "Widget"},
			},
		},
	}

	text := result.ConsolidatedText()

	assert.True(t, strings.HasPrefix(text, "--- WEBSITE DATA FROM https://shop.example.com ---\n"))
	assert.Contains(t, text, "Total Pages: 2")
	assert.Contains(t, text, "Product Pages: 1")
	assert.Contains(t, text, "Pages with Schema: 1")
	assert.Contains(t, text, "Errors: 1")
	assert.Contains(t, text, "--- PAGE: https://shop.example.com ---")
	assert.Contains(t, text, "--- PRODUCT PAGE: https://shop.example.com/products/widget ---")
	assert.Contains(t, text, `"name":"Widget"`)
	assert.Contains(t, text, "Widget details")
}

func TestCrawlResult_ConsolidatedText_preserves_visit_order(t *testing.T) {
	t.Parallel()

	result := &shopcrawl.CrawlResult{
		SeedURL: "https://shop.example.com",
		Documents: []shopcrawl.Document{
			{SourceURL: "https://shop.example.com/a", Text: "first"},
			{SourceURL: "https://shop.example.com/b", Text: "second"},
			{SourceURL: "https://shop.example.com/c", Text: "third"},
		},
	}

	text := result.ConsolidatedText()

	posA := strings.Index(text, "/a ---")
	posB := strings.Index(text, "/b ---")
	posC := strings.Index(text, "/c ---")
	assert.True(t, posA < posB && posB < posC, "documents must appear in visit order")
}

func TestCrawlResult_ConsolidatedText_schema_omitted_for_non_product(t *testing.T) {
	t.Parallel()

	// Schema attached to a non-product page must not be serialized; schema
	// extraction is only attempted on product pages.
	result := &shopcrawl.CrawlResult{
		SeedURL: "https://shop.example.com",
		Documents: []shopcrawl.Document{
			{SourceURL: "https://shop.example.com/about", Text: "About", Schema: shopcrawl.ProductSchema{"name": "x"}},
		},
	}

	assert.NotContains(t, result.ConsolidatedText(), "PRODUCT DATA:")
}
