package models

// ExerciseVideo maps an exercise name to its demo video asset.
// ExerciseName is stored lower-cased so lookups are case-insensitive.
type ExerciseVideo struct {
	ID           string `bson:"_id,omitempty"`
	ExerciseName string `bson:"exerciseName"`
	VideoURL     string `bson:"videoUrl"`
	ThumbnailURL string `bson:"thumbnailUrl,omitempty"`
	TimeModel    `bson:",inline"`
}
