package domain

import (
	"mime"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Page is a fetched HTTP response.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
	FetchedAt   time.Time
}

// Text returns the body decoded to UTF-8. The encoding comes from a BOM, the
// Content-Type charset, then a <meta> prescan of the body. A charset label
// that names no known encoding returns the raw bytes unchanged, as does a
// body without any declaration that is already valid UTF-8. Anything else
// undeclared is read as windows-1252, the HTML default.
func (p Page) Text() []byte {
	if len(p.Body) == 0 {
		return p.Body
	}
	if _, params, err := mime.ParseMediaType(p.ContentType); err == nil {
		if label, ok := params["charset"]; ok {
			if e, _ := charset.Lookup(label); e == nil {
				return p.Body
			}
		}
	}

	e, name, certain := charset.DetermineEncoding(p.Body, p.ContentType)
	if e == encoding.Nop || (!certain && name == "windows-1252" && utf8.Valid(p.Body)) {
		return p.Body
	}
	out, err := e.NewDecoder().Bytes(p.Body)
	if err != nil {
		return p.Body
	}
	return out
}

// Result describes a completed fetch-and-write run.
type Result struct {
	RunID      string
	URL        string
	Path       string
	StatusCode int
	Bytes      int
	Duration   time.Duration
}
