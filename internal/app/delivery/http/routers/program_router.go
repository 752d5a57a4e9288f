package routers

import (
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProgramRoutes(router chi.Router, middlewares *middlewares.Middlewares, programController *controllers.ProgramController) {
	router.Get("/", programController.ListPrograms)
	router.Get("/{programID}", programController.GetProgramByID)
}
