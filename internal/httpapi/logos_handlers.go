package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"jobboard/internal/store"
)

type LogosHandler struct {
	DB *sql.DB
}

func (h LogosHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/logo/"))
	if key == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_key", "missing logo key")
		return
	}

	logo, err := store.GetLogo(r.Context(), h.DB, key)
	if errors.Is(err, store.ErrLogoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	ct := logo.ContentType
	if ct == "" {
		ct = "image/*"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "public, max-age=604800, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(logo.Bytes)
}
