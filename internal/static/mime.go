package static

import (
	"path/filepath"
	"strings"
)

const DEFAULT_CONTENT_TYPE string = "application/octet-stream"

// mimeTypes maps a lowercase extension, dot included, to a content type.
var mimeTypes = map[string]string{
	".html": "text/html; charset=UTF-8",
	".css":  "text/css; charset=UTF-8",
	".js":   "text/javascript; charset=UTF-8",
	".json": "application/json; charset=UTF-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

// ContentType infers a content type from the extension of name.
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return DEFAULT_CONTENT_TYPE
}
