package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/http/middleware/auth"
	"justdeliver-dispatch/internal/logx"
)

const bodyLimit = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode failed",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Debug("http error",
		logx.String("request_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

// writeUsecaseError maps a use case error onto the HTTP status taxonomy.
func writeUsecaseError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrConflictingAcceptedAssignment):
		writeError(logger, w, r, http.StatusConflict, "driver already has an accepted disposition")
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "conflict")
	case errors.Is(err, apperr.ErrEmptyCandidateSet):
		writeError(logger, w, r, http.StatusUnprocessableEntity, "no route available")
	case errors.Is(err, apperr.ErrAutoLoadingCityNotFound):
		writeError(logger, w, r, http.StatusUnprocessableEntity, "no previous unloading city")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("request timed out",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusServiceUnavailable, "timeout")
	default:
		logger.Error("request failed",
			logx.String("request_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a single JSON document into dst and validates it.
// On failure the response is written and false is returned.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	return decode(logger, w, r, dst, false)
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	return decode(logger, w, r, dst, true)
}

func decode[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			writeError(logger, w, r, http.StatusBadRequest, "invalid json")
			return false
		}
	} else if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(logger, w, r, http.StatusInternalServerError, "internal error")
			return false
		}
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
		writeJSON(logger, w, r, http.StatusBadRequest, errResponse{Error: "invalid input", Fields: fields})
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// driverFromRequest returns the authenticated driver or writes 401.
func driverFromRequest(logger logx.Logger, w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := auth.DriverID(r.Context())
	if !ok {
		writeError(logger, w, r, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}

func pageFromQuery(r *http.Request) (limit, offset *int, err error) {
	q := r.URL.Query()
	if limit, err = nonNegativeParam(q.Get("limit")); err != nil {
		return nil, nil, errors.New("invalid limit")
	}
	if offset, err = nonNegativeParam(q.Get("offset")); err != nil {
		return nil, nil, errors.New("invalid offset")
	}
	return limit, offset, nil
}

func nonNegativeParam(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errors.New("invalid")
	}
	return &v, nil
}
