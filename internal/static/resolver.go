// Package static resolves URL paths to files under a root directory.
//
// Paths are joined to the root once and are not checked for containment, so
// a path with enough ".." elements can reach outside the root.
package static

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const INDEX_PATH string = "/index.html"

// ErrNotFound is returned for every failure to read a file.
var ErrNotFound = errors.New("not found")

// File is a fully read file ready to be written to a response.
type File struct {
	Path        string
	Body        []byte
	ContentType string
}

// Resolver serves files from Root.
type Resolver struct {
	Root string
}

func New(root string) *Resolver {
	return &Resolver{Root: root}
}

// FilePath maps a decoded URL path to a path on disk. The empty path and "/"
// map to the index document.
func (rs *Resolver) FilePath(urlPath string) string {
	if urlPath == "" || urlPath == "/" {
		urlPath = INDEX_PATH
	}
	return filepath.Join(rs.Root, filepath.FromSlash(urlPath))
}

type readResult struct {
	body []byte
	err  error
}

// Resolve reads the file behind urlPath. Any failure, including ctx being
// done before the read finishes, yields an error wrapping ErrNotFound.
func (rs *Resolver) Resolve(ctx context.Context, urlPath string) (*File, error) {
	path := rs.FilePath(urlPath)

	done := make(chan readResult, 1)
	go func() {
		body, err := os.ReadFile(path)
		done <- readResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrapf(ErrNotFound, "%s: %v", path, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, errors.Wrapf(ErrNotFound, "%v", res.err)
		}
		return &File{
			Path:        path,
			Body:        res.body,
			ContentType: ContentType(path),
		}, nil
	}
}

// ServeHTTP writes the file for r.URL.Path, or a plain-text 404.
func (rs *Resolver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := rs.Resolve(r.Context(), r.URL.Path)
	if err != nil {
		NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(f.Body)
}

// NotFound writes the fixed 404 response.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("404 Not Found"))
}
