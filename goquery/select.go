package goquery

import (
	"strings"

	"github.com/fwojciec/pagetext"
	"golang.org/x/net/html"
)

// Select returns the elements matching filter, in selection order.
//
// Tag matches come first, every match of each tag in document order and
// tags in caller order, followed by the first element for each id. Ids
// with no match are skipped. An element matched by both a tag and an id
// appears twice. When both lists are empty the default tag set is used.
// Non-empty terms then narrow the selection through FilterByText.
func Select(doc *Document, filter pagetext.FilterConfig) []*html.Node {
	tags := trimmed(filter.Tags)
	ids := trimmed(filter.IDs)
	if len(tags) == 0 && len(ids) == 0 {
		tags = pagetext.DefaultTags
	}

	var nodes []*html.Node
	for _, tag := range tags {
		nodes = append(nodes, doc.FindAll(tag)...)
	}
	for _, id := range ids {
		if n := doc.FindFirstByAttr("id", id); n != nil {
			nodes = append(nodes, n)
		}
	}

	if terms := lowered(filter.Terms); len(terms) > 0 {
		nodes = FilterByText(nodes, terms, filter.Mode())
	}
	return nodes
}

// FilterByText keeps the nodes whose normalized, lower-cased text matches
// any of terms under mode. Terms are trimmed and lower-cased; blank terms
// are ignored, and when no term remains the nodes are returned unchanged.
// Each node is kept at most once, in input order.
func FilterByText(nodes []*html.Node, terms []string, mode pagetext.MatchMode) []*html.Node {
	terms = lowered(terms)
	if len(terms) == 0 {
		return nodes
	}

	var kept []*html.Node
	for _, n := range nodes {
		text := strings.ToLower(NormalizeText(nodeText(n)))
		for _, term := range terms {
			if mode.Match(text, term) {
				kept = append(kept, n)
				break
			}
		}
	}
	return kept
}

func trimmed(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func lowered(terms []string) []string {
	out := trimmed(terms)
	for i, t := range out {
		out[i] = strings.ToLower(t)
	}
	return out
}
