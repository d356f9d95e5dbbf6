// Package shopcrawl provides a bounded, configurable crawler for e-commerce
// sites. It fetches pages over plain HTTP or through a headless browser,
// classifies URLs, extracts plain text and schema.org Product metadata, and
// consolidates everything into a single text document for downstream
// extraction pipelines.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, crawl/).
package shopcrawl
