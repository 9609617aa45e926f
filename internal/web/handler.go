// Package web serves the embeddable play page and its loader script.
package web

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed public
var assets embed.FS

type Handler struct {
	public fs.FS
	files  http.Handler
}

func NewHandler() *Handler {
	public, err := fs.Sub(assets, "public")
	if err != nil {
		log.Fatalf("Failed to load embedded assets: %v", err)
	}
	return &Handler{
		public: public,
		files:  http.FileServer(http.FS(public)),
	}
}

// RegisterRoutes mounts the page shell and the static files. Register it
// last: the static handler matches every remaining path.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/embed/{quiz_id}", h.ServeEmbed).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(h.files).Methods(http.MethodGet, http.MethodHead)
}

// ServeEmbed returns the page shell. The quiz id is read by the page itself.
func (h *Handler) ServeEmbed(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(h.public, "index.html")
	if err != nil {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
