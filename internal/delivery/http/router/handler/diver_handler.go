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

// DiverHandler holds dependencies for diver-related handlers.
type DiverHandler struct {
	uc     usecase.DiverUsecase
	logger *slog.Logger
}

// NewDiverHandler is the constructor for DiverHandler, injected by Fx.
func NewDiverHandler(uc usecase.DiverUsecase, logger *slog.Logger) *DiverHandler {
	return &DiverHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDivers handles the request to list every diver.
func (h *DiverHandler) ListDivers(c echo.Context) error {
	output, err := h.uc.ListDivers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiverResponses(output.Divers), "Divers retrieved successfully")
}

// GetDiver handles the request to fetch a single diver.
func (h *DiverHandler) GetDiver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid diver ID")
	}

	output, err := h.uc.GetDiver(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiverResponse(output.Diver), "Diver retrieved successfully")
}

// GetDiverQRCode handles the request for a diver's profile share code.
// The response is a raw PNG image, not the JSON envelope.
func (h *DiverHandler) GetDiverQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid diver ID")
	}

	output, err := h.uc.GetDiverQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}

// CreateDiver handles the authenticated diver creation request.
func (h *DiverHandler) CreateDiver(c echo.Context) error {
	var input usecase.CreateDiverInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diver input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateDiver(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDiverResponse(output.Diver), "Diver created successfully")
}

// UpdateDiver handles the diver profile update request.
func (h *DiverHandler) UpdateDiver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid diver ID")
	}

	var input usecase.UpdateDiverInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diver input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateDiver(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiverResponse(output.Diver), "Diver updated successfully")
}

// DeleteDiver handles the diver deletion request.
func (h *DiverHandler) DeleteDiver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid diver ID")
	}

	if err := h.uc.DeleteDiver(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Diver deleted successfully")
}
