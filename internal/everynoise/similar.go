package everynoise

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseSimilarGenres reads a similarity page for genre. The returned list
// starts with genre itself, followed by one entry per table row that links
// to another similarity page, in page order.
func ParseSimilarGenres(genre string, r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse similarity page: %w", err)
	}

	genres := []string{genre}
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "tr" {
			return
		}
		var b strings.Builder
		found := false
		walk(n, func(c *html.Node) {
			if c.Type == html.ElementNode && c.Data == "a" && strings.HasPrefix(attr(c, "href"), "everynoise1d-") {
				b.WriteString(text(c))
				found = true
			}
		})
		if found {
			genres = append(genres, strings.TrimSpace(b.String()))
		}
	})
	return genres, nil
}

// Score rates how close genre sits to the top of both lists, from 0 to 1.
// A genre missing from either list scores 0.
func Score(genre string, list1, list2 []string) float64 {
	r1 := indexOf(list1, genre)
	r2 := indexOf(list2, genre)
	if r1 < 0 || r2 < 0 {
		return 0
	}
	return 1 - (normalize(r1, len(list1))+normalize(r2, len(list2)))/2
}

// Match is the outcome of MostSimilar.
type Match struct {
	Genre string
	Score float64
	// Rank1 and Rank2 are the genre's positions in the two lists.
	Rank1 int
	Rank2 int
	// Ties holds every genre sharing the best score, Genre included.
	Ties []string
}

// MostSimilar finds the genre of list1, also present in list2, with the
// highest Score. When several genres tie, pick(len(ties)) selects one; a nil
// pick takes the first in list1 order. ok is false when the lists share no
// genre.
func MostSimilar(list1, list2 []string, pick func(n int) int) (m Match, ok bool) {
	best := -1.0
	var ties []string
	for _, g := range list1 {
		if indexOf(list2, g) < 0 {
			continue
		}
		s := Score(g, list1, list2)
		switch {
		case s > best:
			best = s
			ties = []string{g}
		case s == best && !contains(ties, g):
			ties = append(ties, g)
		}
	}
	if len(ties) == 0 {
		return Match{}, false
	}

	i := 0
	if pick != nil && len(ties) > 1 {
		i = pick(len(ties))
		if i < 0 || i >= len(ties) {
			i = 0
		}
	}
	g := ties[i]
	return Match{
		Genre: g,
		Score: best,
		Rank1: indexOf(list1, g),
		Rank2: indexOf(list2, g),
		Ties:  ties,
	}, true
}

// normalize maps rank into [0,1]. A single-entry list has its only entry at 0.
func normalize(rank, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(rank) / float64(n-1)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool { return indexOf(list, s) >= 0 }
