package pagetext

import (
	"net/url"
	"strings"
)

// absolutePrefixes are href prefixes left untouched by ResolveHref.
var absolutePrefixes = []string{"http://", "https://", "mailto:", "tel:"}

// ResolveHref turns an anchor href or form action into an absolute URL
// relative to sourceURL.
//
//	/x        -> scheme://host/x
//	#frag     -> sourceURL#frag
//	http(s):, mailto:, tel: -> unchanged
//	y/z       -> scheme://host/y/z
//
// Relative paths resolve against the site root, not the page directory.
func ResolveHref(sourceURL, href string) string {
	switch {
	case strings.HasPrefix(href, "/"):
		return origin(sourceURL) + href
	case strings.HasPrefix(href, "#"):
		return sourceURL + href
	}

	for _, prefix := range absolutePrefixes {
		if strings.HasPrefix(href, prefix) {
			return href
		}
	}

	return origin(sourceURL) + "/" + strings.TrimLeft(href, "/")
}

// origin returns "scheme://host" for rawURL.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
