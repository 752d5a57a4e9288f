package routers

import (
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProgressRoutes(router chi.Router, middlewares *middlewares.Middlewares, progressController *controllers.ProgressController) {
	router.With(middlewares.Authentication).Post("/weight", progressController.CreateWeightEntry)
	router.With(middlewares.Authentication).Get("/weight", progressController.ListWeightEntries)
	router.With(middlewares.Authentication).Get("/reminder", progressController.GetWeighInReminder)
}
