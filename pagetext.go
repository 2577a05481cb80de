// Package pagetext provides a single-page web text scraper.
// It fetches a page, selects elements by tag, id and text content,
// normalizes them into element records, and renders those records as
// plain text, Markdown and JSON exports.
//
// This package contains domain types, interfaces and the format
// renderers, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, sqlite/).
package pagetext
