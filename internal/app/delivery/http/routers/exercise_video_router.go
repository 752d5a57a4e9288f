package routers

import (
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachExerciseVideoRoutes(router chi.Router, middlewares *middlewares.Middlewares, exerciseVideoController *controllers.ExerciseVideoController) {
	router.Get("/", exerciseVideoController.ListExerciseVideos)
	router.With(middlewares.Authentication).Post("/", exerciseVideoController.UploadExerciseVideo)
}
