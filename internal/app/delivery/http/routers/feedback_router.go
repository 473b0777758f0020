package routers

import (
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/feedbacks"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *feedbacks.FeedbackController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", feedbackController.Submit)
	// /students must be registered before the wildcard so it is not swallowed
	// as an appointment ID.
	router.Get("/students", feedbackController.ListStudents)
	router.Get("/{appointmentID}", feedbackController.GetByAppointment)
}
