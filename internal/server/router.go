package server

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
)

// Router matches a small set of exact API paths regardless of request
// method. Anything else goes to the fallback handler.
type Router struct {
	paths []string
	*httprouter.Router
}

func NewRouter(fallback http.Handler) *Router {
	hr := httprouter.New()
	hr.RedirectTrailingSlash = false
	hr.RedirectFixedPath = false
	hr.HandleMethodNotAllowed = false
	hr.HandleOPTIONS = false
	hr.NotFound = fallback

	return &Router{Router: hr}
}

// HandleAny registers h for path under every method.
func (r *Router) HandleAny(path string, h http.Handler) {
	r.paths = append(r.paths, path)
	// routes live in the GET tree; ServeHTTP looks everything up there
	r.Router.Handler(http.MethodGet, path, h)
}

// Routes returns the registered paths, sorted.
func (r *Router) Routes() []string {
	out := append([]string(nil), r.paths...)
	sort.Strings(out)
	return out
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if handle, ps, _ := r.Router.Lookup(http.MethodGet, req.URL.Path); handle != nil {
		handle(w, req, ps)
		return
	}

	r.Router.NotFound.ServeHTTP(w, req)
}
