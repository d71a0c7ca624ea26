package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

var ErrDuplicateRoute = errors.New("router: duplicate route")

// Request is the slice of an inbound HTTP request the panel handlers consume.
// The listener owns socket and header machinery; handlers only see this.
type Request struct {
	Path       string
	Query      url.Values
	RemoteAddr string
}

// Response closes one HTTP transaction. Body carries no application data
// beyond the page itself.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// Handler runs synchronously inside the serving task and must not block on
// I/O or on the control task.
type Handler func(Request) Response

// Table maps exact request paths to handlers. Lookup is case-sensitive and
// trailing-slash variants are distinct paths. Registration normally happens
// once before serving starts; the lock keeps late registration safe.
type Table struct {
	mu       sync.RWMutex
	routes   map[string]Handler
	notFound Handler
}

func New() *Table {
	return &Table{
		routes:   make(map[string]Handler),
		notFound: defaultNotFound,
	}
}

// Register binds path to handler. A duplicate path is a configuration bug and
// returns ErrDuplicateRoute rather than silently overwriting.
func (t *Table) Register(path string, h Handler) error {
	if path == "" || h == nil {
		return fmt.Errorf("router: invalid registration for path %q", path)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.routes[path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
	}
	t.routes[path] = h
	return nil
}

// MustRegister is Register for setup code where a duplicate is fatal.
func (t *Table) MustRegister(path string, h Handler) {
	if err := t.Register(path, h); err != nil {
		panic(err)
	}
}

// SetNotFound replaces the fallback handler invoked on a lookup miss.
func (t *Table) SetNotFound(h Handler) {
	if h == nil {
		return
	}
	t.mu.Lock()
	t.notFound = h
	t.mu.Unlock()
}

// Dispatch resolves req.Path and invokes the handler synchronously. Unknown
// paths go to the not-found handler; Dispatch itself never fails.
func (t *Table) Dispatch(req Request) Response {
	t.mu.RLock()
	h, ok := t.routes[req.Path]
	notFound := t.notFound
	t.mu.RUnlock()
	if !ok {
		return notFound(req)
	}
	return h(req)
}

// Paths returns the registered path set, for startup logging.
func (t *Table) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.routes))
	for p := range t.routes {
		out = append(out, p)
	}
	return out
}

func defaultNotFound(Request) Response {
	return Response{
		Status:      http.StatusNotFound,
		ContentType: "text/plain",
		Body:        "Not found",
	}
}
