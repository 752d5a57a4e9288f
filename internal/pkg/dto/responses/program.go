package responses

type Exercise struct {
	Name    string `json:"name"`
	Sets    int    `json:"sets,omitempty"`
	Reps    string `json:"reps,omitempty"`
	Rest    string `json:"rest,omitempty"`
	Type    string `json:"type,omitempty"`
	Details string `json:"details,omitempty"`
}

type WorkoutDay struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

type Phase struct {
	Phase    string                `json:"phase"`
	Weeks    string                `json:"weeks"`
	Focus    string                `json:"focus"`
	Workouts map[string]WorkoutDay `json:"workouts"`
}

type Program struct {
	ProgramID           string  `json:"program_id"`
	Name                string  `json:"name"`
	DurationWeeks       int     `json:"duration_weeks"`
	TrainingDaysPerWeek int     `json:"training_days_per_week"`
	Goal                string  `json:"goal"`
	TargetUser          string  `json:"target_user"`
	Phases              []Phase `json:"phases"`
}

type ProgramSummary struct {
	ProgramID           string `json:"program_id"`
	Name                string `json:"name"`
	DurationWeeks       int    `json:"duration_weeks"`
	TrainingDaysPerWeek int    `json:"training_days_per_week"`
	Goal                string `json:"goal"`
	TargetUser          string `json:"target_user"`
}
