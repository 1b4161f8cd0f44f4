package handlers

import (
	"net/http"
	"strconv"

	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
)

// CatalogHandler exposes read-only views of the city catalog.
type CatalogHandler struct {
	catalog countryLister
	logger  logx.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(logger logx.Logger, c countryLister) *CatalogHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CatalogHandler{catalog: c, logger: logger}
}

// Countries handles GET /catalog/countries?extended=true.
func (h *CatalogHandler) Countries(w http.ResponseWriter, r *http.Request) {
	extended := false
	if s := r.URL.Query().Get("extended"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid extended flag")
			return
		}
		extended = v
	}

	countries := h.catalog.Countries(domain.ModificationFilter{Extended: extended})
	if countries == nil {
		countries = []string{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, countriesResponse{Extended: extended, Countries: countries})
}
