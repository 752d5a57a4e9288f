package requests

type UploadExerciseVideo struct {
	ExerciseName string `json:"exercise_name" validate:"required,max=120"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`

	SessionData string
}
