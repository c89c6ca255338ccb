package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkglog"
)

type fixedGenerator struct {
	id string
}

func (f fixedGenerator) Generate() string { return f.id }

func TestNormalizeCID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc-123", "abc-123"},
		{"trimmed", "  abc  ", "abc"},
		{"empty", "   ", ""},
		{"newline rejected", "abc\ndef", ""},
		{"truncated", strings.Repeat("x", 200), strings.Repeat("x", 128)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeCID(tc.in); got != tc.want {
				t.Fatalf("normalizeCID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMiddlewareCorrelationIDGeneratesWhenMissing(t *testing.T) {
	var seen string
	handler := middlewareCorrelationID(fixedGenerator{id: "gen-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pkglog.GetCorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen != "gen-1" {
		t.Fatalf("expected generated cid in context, got %q", seen)
	}
	if got := rec.Header().Get(HeaderCorrelationID); got != "gen-1" {
		t.Fatalf("expected cid response header, got %q", got)
	}
}

func TestMiddlewareCorrelationIDKeepsIncoming(t *testing.T) {
	var seen string
	handler := middlewareCorrelationID(fixedGenerator{id: "gen-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pkglog.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "incoming-7")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "incoming-7" {
		t.Fatalf("expected incoming request id to win, got %q", seen)
	}
}
