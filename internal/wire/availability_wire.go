package wire

import (
	"seat-booking/internal/adaptor"
	"seat-booking/pkg/middleware"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/halls/{id}/availability", availabilityHandler.GetAvailability)
	r.Post("/api/halls/{id}/seats/reserve", availabilityHandler.ReserveSeat)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/halls/{id}", func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.KeyHash, log))

		r.Post("/availability/load", availabilityHandler.LoadHall) // warm queue from the seats table
		r.Post("/seats/release", availabilityHandler.ReleaseSeat)
	})
}
