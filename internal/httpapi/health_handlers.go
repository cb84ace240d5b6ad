package httpapi

import (
	"net/http"
)

type HealthHandler struct {
	Jobs JobSource
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":   true,
		"jobs": len(h.Jobs.All()),
	})
}
