package handlers

import (
	"context"
	"net/http"
	"strconv"

	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
)

// DispositionHandler serves the dispositions of the authenticated driver.
type DispositionHandler struct {
	usecase dispositionUsecase
	logger  logx.Logger
}

// NewDispositionHandler creates a new DispositionHandler.
func NewDispositionHandler(logger logx.Logger, uc dispositionUsecase) *DispositionHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DispositionHandler{usecase: uc, logger: logger}
}

// List handles GET /dispositions.
func (h *DispositionHandler) List(w http.ResponseWriter, r *http.Request) {
	driverID, ok := driverFromRequest(h.logger, w, r)
	if !ok {
		return
	}

	res, err := h.usecase.List(r.Context(), driverID)
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverDispositionsToResponse(res))
}

// Generate handles POST /dispositions/generate.
func (h *DispositionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	driverID, ok := driverFromRequest(h.logger, w, r)
	if !ok {
		return
	}
	var req generateDispositionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.usecase.Generate(r.Context(), req.toModel(driverID))
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/dispositions/"+strconv.FormatInt(a.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, dispositionToResponse(a))
}

// Accept handles POST /dispositions/{id}/accept.
func (h *DispositionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.usecase.Accept)
}

// Cancel handles POST /dispositions/{id}/cancel.
func (h *DispositionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.usecase.Cancel)
}

type transitionFunc = func(ctx context.Context, driverID, id int64) (domain.Assignment, error)

func (h *DispositionHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	driverID, ok := driverFromRequest(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := fn(r.Context(), driverID, id)
	if err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, dispositionToResponse(a))
}

// Delete handles DELETE /dispositions/{id}.
func (h *DispositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	driverID, ok := driverFromRequest(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.usecase.Delete(r.Context(), driverID, id); err != nil {
		writeUsecaseError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
