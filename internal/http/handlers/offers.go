package handlers

import (
	"net/http"
	"strconv"

	"justdeliver-dispatch/internal/logx"
)

// OfferHandler serves the offers market.
type OfferHandler struct {
	usecase offerUsecase
	logger  logx.Logger
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(logger logx.Logger, uc offerUsecase) *OfferHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OfferHandler{usecase: uc, logger: logger}
}

// List handles GET /offers?limit=&offset=.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.usecase.List(r.Context(), limit, offset)
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, offersToResponse(list))
}

// Publish handles POST /offers/publish.
func (h *OfferHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishOffersRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	list, err := h.usecase.Publish(r.Context(), req.toModel())
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, offersToResponse(list))
}

// Accept handles POST /offers/{id}/accept. The body is optional and may carry a deadline.
func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	driverID, ok := driverFromRequest(h.logger, w, r)
	if !ok {
		return
	}
	offerID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req acceptOfferRequest
	if ok := decodeOptionalJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.usecase.Accept(r.Context(), driverID, offerID, derefTime(req.Deadline))
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/dispositions/"+strconv.FormatInt(a.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, dispositionToResponse(a))
}
