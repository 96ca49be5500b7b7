package handler

import (
	"net/http"

	"github.com/kryva/kryva/internal/catalog"
	"github.com/kryva/kryva/internal/legal"
	"github.com/kryva/kryva/internal/transport"
)

// Catalog returns every onboarding option list by name.
func Catalog(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, catalog.Lists())
}

// Terms returns the terms of service, as JSON or with ?format=markdown as
// markdown text.
func Terms(w http.ResponseWriter, r *http.Request) {
	doc := legal.Terms()
	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(legal.Markdown(doc)))
		return
	}
	transport.WriteJSON(w, http.StatusOK, doc)
}
