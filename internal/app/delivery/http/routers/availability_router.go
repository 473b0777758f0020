package routers

import (
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/availabilities"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *availabilities.AvailabilityController) {
	router.Use(middlewares.Authenticate)
	router.Put("/", availabilityController.Upsert)
	router.Get("/{therapistID}", availabilityController.GetByTherapist)
}
