package routers

import (
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/send-link", authController.SendMagicLink)
	router.Post("/verify", authController.VerifyMagicLink)
	router.With(middlewares.Authentication).Post("/logout", authController.Logout)
}
