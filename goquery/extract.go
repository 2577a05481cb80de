package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagetext"
	"golang.org/x/net/html"
)

// NormalizeText collapses every run of whitespace to a single space and
// trims the ends.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractRecords converts nodes into element records, in input order.
// Nodes whose normalized text is shorter than minLength characters are
// dropped; positions are numbered over the kept records starting at 1.
func ExtractRecords(nodes []*html.Node, minLength int) []pagetext.ElementRecord {
	records := make([]pagetext.ElementRecord, 0, len(nodes))
	for _, n := range nodes {
		text := NormalizeText(nodeText(n))
		length := utf8.RuneCountInString(text)
		if length < minLength {
			continue
		}

		tag := strings.ToLower(n.Data)
		kind := pagetext.KindOf(tag)
		records = append(records, pagetext.ElementRecord{
			Text:     text,
			Tag:      tag,
			Length:   length,
			ID:       attrOr(n, "id", ""),
			Position: len(records) + 1,
			Kind:     kind,
			Attrs:    attributes(n, kind),
		})
	}
	return records
}

// attributes reads the kind-specific attributes of n, applying defaults
// for absent type and method attributes.
func attributes(n *html.Node, kind pagetext.Kind) pagetext.Attributes {
	switch kind {
	case pagetext.KindAnchor:
		return pagetext.AnchorAttrs{
			Href:   attrOr(n, "href", ""),
			Target: attrOr(n, "target", ""),
			Title:  attrOr(n, "title", ""),
			Rel:    attrOr(n, "rel", ""),
		}
	case pagetext.KindButton:
		return pagetext.ButtonAttrs{
			Type:     attrOr(n, "type", pagetext.DefaultButtonType),
			OnClick:  attrOr(n, "onclick", ""),
			Form:     attrOr(n, "form", ""),
			Disabled: hasAttr(n, "disabled"),
		}
	case pagetext.KindInput:
		return pagetext.InputAttrs{
			Type:        attrOr(n, "type", pagetext.DefaultInputType),
			Name:        attrOr(n, "name", ""),
			Placeholder: attrOr(n, "placeholder", ""),
			Value:       attrOr(n, "value", ""),
			Required:    hasAttr(n, "required"),
		}
	case pagetext.KindImage:
		return pagetext.ImageAttrs{
			Src: attrOr(n, "src", ""),
			Alt: attrOr(n, "alt", ""),
		}
	case pagetext.KindForm:
		return pagetext.FormAttrs{
			Action: attrOr(n, "action", ""),
			Method: attrOr(n, "method", pagetext.DefaultFormMethod),
		}
	}
	return nil
}
