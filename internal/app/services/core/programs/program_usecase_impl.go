package programs

import (
	"context"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type programUsecase struct {
	ProgramRepository contracts.ProgramRepository
	Log               *zap.Logger
}

func NewProgramUsecase(
	programRepository contracts.ProgramRepository,
	logger *zap.Logger,
) contracts.ProgramUsecase {
	return &programUsecase{
		ProgramRepository: programRepository,
		Log:               logger,
	}
}

func (uc *programUsecase) ListPrograms(ctx context.Context) ([]responses.ProgramSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("programUsecase.ListPrograms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	programs, err := uc.ProgramRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.ProgramSummary, 0, len(programs))
	for _, program := range programs {
		summaries = append(summaries, responses.ProgramSummary{
			ProgramID:           program.ProgramID,
			Name:                program.Name,
			DurationWeeks:       program.DurationWeeks,
			TrainingDaysPerWeek: program.TrainingDaysPerWeek,
			Goal:                program.Goal,
			TargetUser:          program.TargetUser,
		})
	}
	return summaries, nil
}

func (uc *programUsecase) FindProgramByID(ctx context.Context, programID string) (*responses.Program, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("programUsecase.FindProgramByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProgramIDKey, programID),
	)

	program, err := uc.ProgramRepository.FindByProgramID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, exceptions.ErrProgramNotFound(nil)
	}

	return buildProgramResponse(program), nil
}

func buildProgramResponse(program *models.Program) *responses.Program {
	phases := make([]responses.Phase, 0, len(program.Phases))
	for _, phase := range program.Phases {
		workouts := make(map[string]responses.WorkoutDay, len(phase.Workouts))
		for day, workout := range phase.Workouts {
			exercises := make([]responses.Exercise, 0, len(workout.Exercises))
			for _, exercise := range workout.Exercises {
				exercises = append(exercises, responses.Exercise{
					Name:    exercise.Name,
					Sets:    exercise.Sets,
					Reps:    exercise.Reps,
					Rest:    exercise.Rest,
					Type:    exercise.Type,
					Details: exercise.Details,
				})
			}
			workouts[day] = responses.WorkoutDay{
				Title:     workout.Title,
				Exercises: exercises,
			}
		}
		phases = append(phases, responses.Phase{
			Phase:    phase.Phase,
			Weeks:    phase.Weeks,
			Focus:    phase.Focus,
			Workouts: workouts,
		})
	}

	return &responses.Program{
		ProgramID:           program.ProgramID,
		Name:                program.Name,
		DurationWeeks:       program.DurationWeeks,
		TrainingDaysPerWeek: program.TrainingDaysPerWeek,
		Goal:                program.Goal,
		TargetUser:          program.TargetUser,
		Phases:              phases,
	}
}
