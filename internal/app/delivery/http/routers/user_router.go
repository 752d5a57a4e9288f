package routers

import (
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authentication).Get("/profile", userController.GetUserProfileBySession)
	router.With(middlewares.Authentication).Patch("/profile", userController.UpdateUserProfileBySession)
}
