package mdtools

import (
	"context"
	"mime"
	"path"
	"strings"
)

// FetchResult holds a document retrieved from a URL.
type FetchResult struct {
	// URL is the address the document was fetched from.
	URL string

	// ContentType is the media type reported by the server, without parameters.
	ContentType string

	// Body is the raw document content.
	Body []byte
}

// IsHTML reports whether the fetched document is an HTML page, judging by
// its content type or, when the server sent none, by the URL's extension.
func (r *FetchResult) IsHTML() bool {
	if r.ContentType != "" {
		mediaType, _, err := mime.ParseMediaType(r.ContentType)
		if err == nil {
			return mediaType == "text/html" || mediaType == "application/xhtml+xml"
		}
	}
	return IsHTMLPath(r.URL)
}

// Fetcher retrieves remote markdown documents.
type Fetcher interface {
	// Fetch downloads the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// IsHTMLPath reports whether p names an HTML file.
func IsHTMLPath(p string) bool {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return true
	}
	return false
}
