package responses

type ExerciseVideo struct {
	ExerciseName string `json:"exercise_name"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}
