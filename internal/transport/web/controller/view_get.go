package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// HiddenGemsGet serves the hidden gems view.
type HiddenGemsGet struct {
	Reader      datasources.ViewReader
	CacheMaxAge time.Duration
}

func (c HiddenGemsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, c.Reader, domain.HiddenGemsViewName, c.CacheMaxAge)
}

// LocalFavoritesGet serves the local favorites view of the {locality} in the path.
type LocalFavoritesGet struct {
	Reader      datasources.ViewReader
	CacheMaxAge time.Duration
}

func (c LocalFavoritesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	locality := mux.Vars(r)["locality"]
	if locality == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveView(w, r, c.Reader, domain.LocalFavoritesViewName(locality), c.CacheMaxAge)
}

func serveView(w http.ResponseWriter, r *http.Request, reader datasources.ViewReader, name string, maxAge time.Duration) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx).With("view", name)

	view, err := reader.GetView(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch view", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if view.Entries == nil {
		view.Entries = []domain.ViewEntry{}
	}

	cacheControl(w, maxAge)
	writeJSON(w, r, http.StatusOK, view)
}
