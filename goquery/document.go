// Package goquery implements the document parser, element selector and
// record extractor on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagetext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// strippedTags are removed by StripScripts.
const strippedTags = "script, style, noscript"

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Parse parses raw page bytes into a Document.
// The encoding is sniffed from a BOM or <meta> declaration, defaulting to
// UTF-8. Parsing is lenient: malformed markup is repaired the way
// browsers repair it, and input that cannot be read at all yields an
// empty document.
func Parse(raw []byte) *Document {
	var r io.Reader = bytes.NewReader(raw)
	if decoded, err := charset.NewReader(r, ""); err == nil {
		r = decoded
	} else {
		r = bytes.NewReader(raw)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		doc = goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return &Document{doc: doc}
}

// FindAll returns every element whose tag name equals tag exactly, in
// document order.
func (d *Document) FindAll(tag string) []*html.Node {
	var nodes []*html.Node
	for _, n := range d.elements() {
		if n.Data == tag {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// FindFirstByAttr returns the first element, in document order, whose
// attribute equals value. The class and rel attributes match any of
// their space-separated tokens. Returns nil when nothing matches.
func (d *Document) FindFirstByAttr(attr, value string) *html.Node {
	for _, n := range d.elements() {
		v, ok := attrValue(n, attr)
		if !ok {
			continue
		}
		if attr == "class" || attr == "rel" {
			if slices.Contains(strings.Fields(v), value) {
				return n
			}
		} else if v == value {
			return n
		}
	}
	return nil
}

// StripScripts removes every script, style and noscript subtree.
// Removal is permanent for this Document.
func (d *Document) StripScripts() {
	d.doc.Find(strippedTags).Remove()
}

// BodyHTML returns the inner HTML of the <body> element.
func (d *Document) BodyHTML() (string, error) {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return "", nil
	}
	return body.Html()
}

// Metadata reads page metadata in a single pass over the head-level
// elements. The first matching element wins for each field; fields
// without a matching element stay empty.
func (d *Document) Metadata() pagetext.PageMetadata {
	var m pagetext.PageMetadata
	seen := make(map[string]bool)

	// set assigns the first value found for a field.
	set := func(field *string, key, value string) {
		if seen[key] {
			return
		}
		seen[key] = true
		*field = value
	}

	d.doc.Find("html, title, meta, link").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "html":
			if lang, ok := sel.Attr("lang"); ok {
				set(&m.Lang, "lang", lang)
			}
		case "title":
			set(&m.Title, "title", strings.TrimSpace(sel.Text()))
		case "link":
			if rel, ok := sel.Attr("rel"); ok && slices.Contains(strings.Fields(rel), "canonical") {
				set(&m.Canonical, "canonical", sel.AttrOr("href", ""))
			}
		case "meta":
			if cs, ok := sel.Attr("charset"); ok {
				set(&m.Charset, "charset", cs)
			}
			content := sel.AttrOr("content", "")
			switch sel.AttrOr("name", "") {
			case "description":
				set(&m.Description, "description", content)
			case "keywords":
				set(&m.Keywords, "keywords", content)
			case "author":
				set(&m.Author, "author", content)
			case "robots":
				set(&m.Robots, "robots", content)
			}
			switch sel.AttrOr("property", "") {
			case "og:title":
				set(&m.OGTitle, "og:title", content)
			case "og:description":
				set(&m.OGDescription, "og:description", content)
			case "og:image":
				set(&m.OGImage, "og:image", content)
			}
		}
	})

	return m
}

// elements returns every element node in document order.
func (d *Document) elements() []*html.Node {
	return d.doc.Find("*").Nodes
}

// attrValue returns the value of the named attribute of n.
func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// attrOr returns the named attribute of n, or def when absent.
func attrOr(n *html.Node, key, def string) string {
	if v, ok := attrValue(n, key); ok {
		return v
	}
	return def
}

// hasAttr reports whether n carries the named attribute, with any value.
func hasAttr(n *html.Node, key string) bool {
	_, ok := attrValue(n, key)
	return ok
}

// nodeText returns the concatenated text of n and its descendants.
func nodeText(n *html.Node) string {
	return goquery.NewDocumentFromNode(n).Text()
}
