package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"desi-beats/menu-svc/internal/service"
)

func (h *Handler) getHeroSlider(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Content.HeroSlider())
}

func (h *Handler) getImageKitAuth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expire, _ := strconv.ParseInt(q.Get("expire"), 10, 64)

	auth, err := h.Content.ImageKitAuth(q.Get("token"), expire)
	if errors.Is(err, service.ErrImageKitNotConfigured) {
		writeError(w, http.StatusInternalServerError, "ImageKit not configured")
		return
	}
	if err != nil {
		writeServiceError(w, err, "Signature", "Failed to generate signature")
		return
	}
	writeJSON(w, http.StatusOK, auth)
}

func (h *Handler) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "Stats", "Failed to fetch dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
