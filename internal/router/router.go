// Package router implements a small pattern-matching router for the
// in-app navigation between surfaces.
package router

import (
	"net/url"
	"strings"
)

// Renderer is invoked when a route matches. params holds the named
// ":segment" bindings, query the flat query-string map.
type Renderer func(params map[string]string, query map[string]string)

type route struct {
	segments []string
	render   Renderer
}

// Router dispatches paths to registered renderers. Routes are tested in
// registration order; the first match wins. There is no specificity
// ranking and no wildcard support.
type Router struct {
	routes   []route
	notFound Renderer

	history []string
	cursor  int
	started bool
}

// New creates an empty router.
func New() *Router {
	return &Router{cursor: -1}
}

// AddRoute registers a pattern such as "/search" or "/lens/:id".
func (r *Router) AddRoute(pattern string, render Renderer) {
	r.routes = append(r.routes, route{
		segments: splitPath(pattern),
		render:   render,
	})
}

// SetNotFound registers the renderer used when no route matches.
func (r *Router) SetNotFound(render Renderer) {
	r.notFound = render
}

// CurrentPath returns the full current path including the query string.
func (r *Router) CurrentPath() string {
	if r.cursor < 0 || r.cursor >= len(r.history) {
		return ""
	}
	return r.history[r.cursor]
}

// Navigate moves to path. Navigating to the current path is a no-op:
// no history write, no re-render. With replace set the current history
// entry is overwritten instead of pushed.
func (r *Router) Navigate(path string, replace bool) {
	if path == r.CurrentPath() {
		return
	}

	if replace && r.cursor >= 0 {
		r.history[r.cursor] = path
	} else {
		// A push discards any forward entries.
		r.history = append(r.history[:r.cursor+1], path)
		r.cursor = len(r.history) - 1
	}
	r.Resolve()
}

// Back moves one entry back in history, if possible.
func (r *Router) Back() {
	if r.cursor <= 0 {
		return
	}
	r.cursor--
	r.Resolve()
}

// Forward moves one entry forward in history, if possible.
func (r *Router) Forward() {
	if r.cursor >= len(r.history)-1 {
		return
	}
	r.cursor++
	r.Resolve()
}

// Start performs the initial resolve against path. Calling Start twice
// has no additional effect.
func (r *Router) Start(path string) {
	if r.started {
		return
	}
	r.started = true
	r.history = []string{path}
	r.cursor = 0
	r.Resolve()
}

// Resolve matches the current path against the route table and invokes
// the winning renderer, or the not-found renderer when nothing matches.
// Resolve never panics; a malformed query string degrades to an empty map.
func (r *Router) Resolve() {
	path := r.CurrentPath()

	rawPath, rawQuery, _ := strings.Cut(path, "?")
	segments := splitPath(rawPath)
	query := parseQuery(rawQuery)

	for _, rt := range r.routes {
		params, ok := match(rt.segments, segments)
		if !ok {
			continue
		}
		rt.render(params, query)
		return
	}

	if r.notFound != nil {
		r.notFound(map[string]string{}, query)
	}
}

// match tests pattern segments against path segments. A route matches iff
// the counts are equal and every literal segment equals the path's; a
// ":name" segment binds unconditionally.
func match(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// parseQuery flattens a query string to a map. Repeated keys: last wins.
// Malformed input degrades to an empty map.
func parseQuery(raw string) map[string]string {
	flat := make(map[string]string)
	if raw == "" {
		return flat
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return map[string]string{}
	}
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[len(vals)-1]
		}
	}
	return flat
}
