package shopcrawl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConsolidatedText serializes the crawl result into one plain-text blob for
// downstream LLM consumption: a summary block of the session counters
// followed by every document in visit order, each with a URL header, the
// schema JSON when one was found, and the page text.
func (r *CrawlResult) ConsolidatedText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- WEBSITE DATA FROM %s ---\n\n", r.SeedURL)

	b.WriteString("Crawl Statistics:\n")
	fmt.Fprintf(&b, "Total Pages: %d\n", r.Stats.TotalPages)
	fmt.Fprintf(&b, "Product Pages: %d\n", r.Stats.ProductPages)
	fmt.Fprintf(&b, "Pages with Schema: %d\n", r.Stats.SchemaFound)
	fmt.Fprintf(&b, "Errors: %d\n\n", r.Stats.Errors)

	for _, doc := range r.Documents {
		pageType := "PAGE"
		if doc.IsProduct {
			pageType = "PRODUCT PAGE"
		}
		fmt.Fprintf(&b, "--- %s: %s ---\n", pageType, doc.SourceURL)

		if doc.IsProduct && doc.Schema != nil {
			if data, err := json.Marshal(doc.Schema); err == nil {
				fmt.Fprintf(&b, "PRODUCT DATA: %s\n\n", data)
			}
		}

		b.WriteString(doc.Text)
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("-", 80))
		b.WriteString("\n\n")
	}

	return b.String()
}
