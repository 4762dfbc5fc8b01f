package http

import (
	"context"
	"errors"
	"net/http"

	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupAnalysis(base)
}

// statusForError maps the error taxonomy onto HTTP status codes so API
// consumers can distinguish bad input from upstream failures.
func statusForError(err error) int {
	var (
		cfgErr       *errs.ConfigurationError
		fetchErr     *errs.DataFetchError
		analysisErr  *errs.AnalysisError
		narrativeErr *errs.NarrativeError
	)

	switch {
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &analysisErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr), errors.As(err, &narrativeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
