package router

import (
	"errors"
	"net/http"
	"testing"
)

func ackHandler(body string) Handler {
	return func(Request) Response {
		return Response{Status: http.StatusOK, ContentType: "text/html", Body: body}
	}
}

func TestDispatchExactMatch(t *testing.T) {
	tbl := New()
	if err := tbl.Register("/activate", ackHandler("armed")); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp := tbl.Dispatch(Request{Path: "/activate"})
	if resp.Status != http.StatusOK || resp.Body != "armed" {
		t.Fatalf("dispatch = %+v", resp)
	}
}

func TestRegisterDuplicateErrors(t *testing.T) {
	tbl := New()
	if err := tbl.Register("/calibrate", ackHandler("a")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := tbl.Register("/calibrate", ackHandler("b"))
	if !errors.Is(err, ErrDuplicateRoute) {
		t.Fatalf("expected ErrDuplicateRoute, got %v", err)
	}

	// The original binding survives the failed second registration.
	if resp := tbl.Dispatch(Request{Path: "/calibrate"}); resp.Body != "a" {
		t.Fatalf("duplicate registration overwrote handler: %+v", resp)
	}
}

func TestRegisterRejectsEmptyPathAndNilHandler(t *testing.T) {
	tbl := New()
	if err := tbl.Register("", ackHandler("x")); err == nil {
		t.Fatal("empty path accepted")
	}
	if err := tbl.Register("/ok", nil); err == nil {
		t.Fatal("nil handler accepted")
	}
}

func TestDispatchUnknownPathIsNotFound(t *testing.T) {
	tbl := New()
	tbl.MustRegister("/", ackHandler("panel"))

	for _, path := range []string{"/nope", "/Activate", "/activate/", "//"} {
		resp := tbl.Dispatch(Request{Path: path})
		if resp.Status != http.StatusNotFound {
			t.Fatalf("path %q: status = %d, want 404", path, resp.Status)
		}
		if resp.Body != "Not found" || resp.ContentType != "text/plain" {
			t.Fatalf("path %q: unexpected not-found response %+v", path, resp)
		}
	}
}

func TestTrailingSlashVariantsAreDistinct(t *testing.T) {
	tbl := New()
	tbl.MustRegister("/calibrate", ackHandler("bare"))
	tbl.MustRegister("/calibrate/", ackHandler("slashed"))

	if resp := tbl.Dispatch(Request{Path: "/calibrate"}); resp.Body != "bare" {
		t.Fatalf("bare path: %+v", resp)
	}
	if resp := tbl.Dispatch(Request{Path: "/calibrate/"}); resp.Body != "slashed" {
		t.Fatalf("slashed path: %+v", resp)
	}
}

func TestSetNotFoundOverride(t *testing.T) {
	tbl := New()
	tbl.SetNotFound(func(req Request) Response {
		return Response{Status: http.StatusNotFound, ContentType: "text/plain", Body: "gone: " + req.Path}
	})
	if resp := tbl.Dispatch(Request{Path: "/x"}); resp.Body != "gone: /x" {
		t.Fatalf("override not used: %+v", resp)
	}
}
