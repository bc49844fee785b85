// Package assets opens static files for the storefront: page documents,
// stylesheets and product images.
package assets

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var ErrNotFound = errors.New("asset not found")

type File struct {
	Content io.ReadSeekCloser
	Name    string
	ModTime time.Time
	// ContentType is empty when the store has no opinion, the server then
	// infers it from the name.
	ContentType string
}

func (f *File) Close() error { return f.Content.Close() }

type Store interface {
	Open(ctx context.Context, name string) (*File, error)
}

// cleanName normalizes a request path into a slash-separated name with no
// leading slash. Names with a hidden segment are rejected.
func cleanName(name string) (string, bool) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	for _, seg := range strings.Split(clean, "/") {
		if strings.HasPrefix(seg, ".") {
			return "", false
		}
	}
	return clean, true
}
