package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	SendLinkSuccess = "verification email sent, please check your inbox"
	VerifySuccess   = "successfully login"
	LogoutSuccess   = "successfully logout"

	// User messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Program messages
	ProgramListSuccess = "get programs successfully"
	ProgramGetSuccess  = "get program successfully"

	// Progress messages
	WeightEntryCreatedSuccess = "weight entry recorded successfully"
	WeightEntryListSuccess    = "get weight entries successfully"
	ReminderGetSuccess        = "get weigh-in reminder successfully"

	// Exercise video messages
	ExerciseVideoListSuccess   = "get exercise videos successfully"
	ExerciseVideoUploadSuccess = "exercise video uploaded successfully"
)
