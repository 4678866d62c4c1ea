package handler

import (
	"log/slog"
	"net/http"

	"scubakeep/internal/delivery/http/response"
	"scubakeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiveLogHandler holds dependencies for dive-log-related handlers.
type DiveLogHandler struct {
	uc     usecase.DiveLogUsecase
	logger *slog.Logger
}

// NewDiveLogHandler is the constructor for DiveLogHandler, injected by Fx.
func NewDiveLogHandler(uc usecase.DiveLogUsecase, logger *slog.Logger) *DiveLogHandler {
	return &DiveLogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDiveLogs handles the request to list every dive log.
func (h *DiveLogHandler) ListDiveLogs(c echo.Context) error {
	output, err := h.uc.ListDiveLogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiveLogResponses(output.DiveLogs), "Dive logs retrieved successfully")
}

// GetDiveLog handles the request to fetch a single dive log.
func (h *DiveLogHandler) GetDiveLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dive log ID")
	}

	output, err := h.uc.GetDiveLog(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiveLogResponse(output.DiveLog), "Dive log retrieved successfully")
}

// CreateDiveLog handles the dive log creation request.
func (h *DiveLogHandler) CreateDiveLog(c echo.Context) error {
	var input usecase.CreateDiveLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dive log input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateDiveLog(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDiveLogResponse(output.DiveLog), "Dive log created successfully")
}

// UpdateDiveLog handles the dive log update request.
func (h *DiveLogHandler) UpdateDiveLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dive log ID")
	}

	var input usecase.UpdateDiveLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dive log input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateDiveLog(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiveLogResponse(output.DiveLog), "Dive log updated successfully")
}

// DeleteDiveLog handles the dive log deletion request.
func (h *DiveLogHandler) DeleteDiveLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dive log ID")
	}

	if err := h.uc.DeleteDiveLog(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dive log deleted successfully")
}
