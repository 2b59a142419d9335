package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/halls/{id}/availability
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.service.AvailableCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// ReserveSeat handles POST /api/halls/{id}/seats/reserve
func (h *AvailabilityHandler) ReserveSeat(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.ReserveSeat(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "reserve seat")
		return
	}

	if !reservation.Reserved {
		utils.ResponseSuccess(w, "no seats available", reservation)
		return
	}
	utils.ResponseSuccess(w, "success", reservation)
}

// ==================== ADMIN METHODS ====================

// LoadHall handles POST /api/admin/halls/{id}/availability/load
func (h *AvailabilityHandler) LoadHall(w http.ResponseWriter, r *http.Request) {
	availability, err := h.service.LoadHall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "load hall")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// ReleaseSeat handles POST /api/admin/halls/{id}/seats/release
func (h *AvailabilityHandler) ReleaseSeat(w http.ResponseWriter, r *http.Request) {
	var req request.ReleaseSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseError(w, http.StatusBadRequest, "Validation failed", validationErrors)
		return
	}

	availability, err := h.service.ReleaseSeat(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "release seat")
		return
	}

	utils.ResponseCreated(w, "success", availability)
}

// statusFor classifies service errors by their wrapped sentinel. Error text
// is never inspected since it carries caller-supplied seat ids.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrHallNotFound), errors.Is(err, repository.ErrSeatNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidHallID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestID(r.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", requestID),
	}

	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		h.log.Warn(operation+" failed - not found", fields...)
	case http.StatusBadRequest:
		h.log.Warn("Invalid input for "+operation, fields...)
	default:
		h.log.Error("Failed to "+operation, fields...)
	}
	utils.ResponseError(w, status, err.Error(), nil)
}
