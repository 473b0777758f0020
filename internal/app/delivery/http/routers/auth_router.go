package routers

import (
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/signup", authController.SignUp)
	router.Post("/login", authController.SignIn)
	router.With(middlewares.Authenticate).Post("/logout", authController.SignOut)
}
