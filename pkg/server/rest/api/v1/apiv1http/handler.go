// Package apiv1http routes the v1 REST API onto chi routers. Each New*Handler returns the
// path to mount the handler on together with the handler itself.
package apiv1http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const defaultPageSize = 6

var errMalformedBody = errors.New("malformed request body")

type handlerOptions struct {
	logger   *zap.Logger
	pageSize int
}

type HandlerOption func(*handlerOptions)

func WithLogger(logger *zap.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.logger = logger
	}
}

// WithPageSize sets the page size used when a list request has no valid limit.
func WithPageSize(size int) HandlerOption {
	return func(o *handlerOptions) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

func newHandlerOptions(opts []HandlerOption) handlerOptions {
	options := handlerOptions{logger: zap.NewNop(), pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

func respondJSON(w http.ResponseWriter, status int, payload any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError maps service errors onto status codes. Unexpected errors are logged and
// reported without detail.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	var validationErr *api.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, api.ErrorResponse{Detail: api.ErrInvalidInput.Error(), Errors: validationErr.Fields}, logger)
	case errors.Is(err, api.ErrInvalidInput), errors.Is(err, errMalformedBody), errors.Is(err, api.ErrMembershipNotFound):
		respondJSON(w, http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()}, logger)
	case errors.Is(err, api.ErrNotFound):
		respondJSON(w, http.StatusNotFound, api.ErrorResponse{Detail: err.Error()}, logger)
	case errors.Is(err, api.ErrPermissionDenied):
		respondJSON(w, http.StatusForbidden, api.ErrorResponse{Detail: err.Error()}, logger)
	case errors.Is(err, api.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondJSON(w, http.StatusUnauthorized, api.ErrorResponse{Detail: err.Error()}, logger)
	default:
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"}, logger)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	return nil
}

// pathID reads a numeric path parameter. Anything that is not a positive integer cannot
// name a stored row, so it is reported as not found.
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s %q", api.ErrNotFound, name, chi.URLParam(r, name))
	}

	return uint(id), nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, &api.ValidationError{Fields: map[string]string{name: "must be a non-negative integer"}}
	}

	return value, nil
}

func queryFlag(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}

func pageRequest(r *http.Request, pageSize int) (api.PageRequest, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return api.PageRequest{}, err
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return api.PageRequest{}, err
	}

	return api.PageRequest{Page: page, Limit: limit}.Normalize(pageSize), nil
}

// withPageLinks fills in the next and previous URLs of page for the request it answers.
func withPageLinks[T any](r *http.Request, request api.PageRequest, page *api.Page[T]) *api.Page[T] {
	if int64(request.Page*request.Limit) < page.Count {
		next := pageURL(r, request.Page+1)
		page.Next = &next
	}

	if request.Page > 1 {
		previous := pageURL(r, request.Page-1)
		page.Previous = &previous
	}

	if page.Results == nil {
		page.Results = []T{}
	}

	return page
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	query := r.URL.Query()
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	} else {
		query.Del("page")
	}

	link := fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.Path)
	if encoded := query.Encode(); encoded != "" {
		link += "?" + encoded
	}

	return link
}
