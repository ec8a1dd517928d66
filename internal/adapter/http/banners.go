package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleAllBanners returns every banner with its click count per campaign
// and quarter as a JSON array.
func (h *Handler) handleAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.svc.GetAllBanners(r.Context())
	if err != nil {
		h.writeError(w, r, "list banners", err)
		return
	}
	h.writeJSON(w, r, banners)
}

// handleCampaignBanners returns the banner selection for the {campaignID}
// path parameter. Already seen banners are passed as `seen` query
// parameters, either repeated or comma separated. Malformed ids result in
// HTTP 400. An empty selection is written as an empty JSON array.
func (h *Handler) handleCampaignBanners(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var seen []int64
	for _, raw := range r.URL.Query()["seen"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				http.Error(w, "invalid seen banner id", http.StatusBadRequest)
				return
			}
			seen = append(seen, id)
		}
	}

	banners, err := h.svc.SelectCampaignBanners(r.Context(), campaignID, seen)
	if err != nil {
		h.writeError(w, r, "select campaign banners", err)
		return
	}
	h.writeJSON(w, r, banners)
}
