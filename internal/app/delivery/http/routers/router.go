package routers

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/appointments"
	"caps-service/internal/app/services/core/auth"
	"caps-service/internal/app/services/core/availabilities"
	"caps-service/internal/app/services/core/chatbot"
	"caps-service/internal/app/services/core/feedbacks"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	appointmentController *appointments.AppointmentController,
	availabilityController *availabilities.AvailabilityController,
	feedbackController *feedbacks.FeedbackController,
	chatbotController *chatbot.ChatbotController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/availability", func(r chi.Router) {
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/feedback", func(r chi.Router) {
			attachFeedbackRoutes(r, middlewares, feedbackController)
		})

		r.Route("/chatbot", func(r chi.Router) {
			attachChatbotRoutes(r, middlewares, chatbotController)
		})
	})
}
