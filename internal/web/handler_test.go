package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	NewHandler().RegisterRoutes(router)
	return router
}

func TestServeEmbedReturnsPageForAnyID(t *testing.T) {
	router := newTestRouter()

	for _, id := range []string{"1", "999", "not-a-number"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/embed/"+id, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("/embed/%s status = %d, want 200", id, rec.Code)
		}
		if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
			t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
		}
		if !strings.Contains(rec.Body.String(), "/api/play/") {
			t.Fatalf("page shell does not load the play API")
		}
	}
}

func TestEmbedScriptServed(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/embed.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"data-quiz-id", "quiz-container", "/embed/", "iframe"} {
		if !strings.Contains(body, want) {
			t.Fatalf("embed.js missing %q", want)
		}
	}
}

func TestUnknownStaticFile(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.css", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
