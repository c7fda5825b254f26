package everynoise

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	// The artist name is the second argument of playx(...).
	playxArtist = regexp.MustCompile(`playx\(.+?,\s*"(.*?)"\s*,`)
	featSplit   = regexp.MustCompile(`(?i)feat\.|featuring`)
)

// ParseArtists extracts artist names from a genre map page.
//
// Every div whose id starts with "item" is inspected. Names credited with
// "feat." are split into their individual artists. The result keeps first-seen
// order and holds no duplicates or empty names.
func ParseArtists(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse genre map: %w", err)
	}

	var artists []string
	seen := make(map[string]struct{})
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		artists = append(artists, name)
	}

	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "div" {
			return
		}
		if !strings.HasPrefix(attr(n, "id"), "item") {
			return
		}
		m := playxArtist.FindStringSubmatch(attr(n, "onclick"))
		if m == nil {
			return
		}
		name := strings.TrimSpace(m[1])
		if !strings.Contains(strings.ToLower(name), "feat.") {
			add(name)
			return
		}
		for _, part := range featSplit.Split(name, -1) {
			add(part)
		}
	})

	return artists, nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}
