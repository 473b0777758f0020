package routers

import (
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", appointmentController.Book)
	router.Post("/assign-by-therapist", appointmentController.Assign)
	router.Get("/", appointmentController.List)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
