package models

type Exercise struct {
	Name    string `bson:"name" json:"name"`
	Sets    int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps    string `bson:"reps,omitempty" json:"reps,omitempty"`
	Rest    string `bson:"rest,omitempty" json:"rest,omitempty"`
	Type    string `bson:"type,omitempty" json:"type,omitempty"`
	Details string `bson:"details,omitempty" json:"details,omitempty"`
}

type WorkoutDay struct {
	Title     string     `bson:"title" json:"title"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

type Phase struct {
	Phase    string                `bson:"phase" json:"phase"`
	Weeks    string                `bson:"weeks" json:"weeks"`
	Focus    string                `bson:"focus" json:"focus"`
	Workouts map[string]WorkoutDay `bson:"workouts" json:"workouts"`
}

type Program struct {
	ID                  string  `bson:"_id,omitempty" json:"-"`
	ProgramID           string  `bson:"program_id" json:"program_id"`
	Name                string  `bson:"name" json:"name"`
	DurationWeeks       int     `bson:"duration_weeks" json:"duration_weeks"`
	TrainingDaysPerWeek int     `bson:"training_days_per_week" json:"training_days_per_week"`
	Goal                string  `bson:"goal" json:"goal"`
	TargetUser          string  `bson:"target_user" json:"target_user"`
	Phases              []Phase `bson:"phases" json:"phases"`
}
