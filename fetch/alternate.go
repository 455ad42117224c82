package fetch

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// alternateTypes are content types that identify an ActivityStreams
// representation in a <link rel="alternate"> element.
var alternateTypes = map[string]bool{
	"application/activity+json": true,
	"application/ld+json":       true,
}

// AlternateLink extracts the href of the first
// <link rel="alternate" type="application/activity+json"> (or ld+json)
// element from an HTML document, resolved against base. Returns ""
// when no such link exists or the document does not parse.
func AlternateLink(body []byte, base *url.URL) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "link" {
			if href := alternateHref(n); href != "" {
				found = href
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == "" {
		return ""
	}
	ref, err := url.Parse(found)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func alternateHref(n *html.Node) string {
	var rel, typ, href string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "rel":
			rel = strings.ToLower(attr.Val)
		case "type":
			typ = strings.ToLower(strings.TrimSpace(strings.SplitN(attr.Val, ";", 2)[0]))
		case "href":
			href = attr.Val
		}
	}
	if rel != "alternate" || !alternateTypes[typ] || href == "" {
		return ""
	}
	return href
}
