package utils

import (
	"jondonfit-service/internal/pkg/dto/requests"
	"strings"
)

// NormalizeEmail lower-cases and trims an address the same way the
// magic-link store indexes it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSendMagicLinkRequest(input *requests.SendMagicLink) {
	input.Email = NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
}

func SanitizeVerifyMagicLinkRequest(input *requests.VerifyMagicLink) {
	input.Token = strings.ToLower(strings.TrimSpace(input.Token))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.ProgramID = strings.TrimSpace(input.ProgramID)
}

func SanitizeUploadExerciseVideoRequest(input *requests.UploadExerciseVideo) {
	input.ExerciseName = strings.TrimSpace(input.ExerciseName)
	input.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
}
