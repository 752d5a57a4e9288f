package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"gt":       "must be greater than %s",
	"datetime": "must be a valid date in format %s",
	"url":      "must be a valid URL",
}

var TagsWithParams = map[string]bool{
	"oneof":    true,
	"min":      true,
	"max":      true,
	"gt":       true,
	"datetime": true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailRequired                 = "email is required"
	ErrClientNameRequiredForRegister       = "name is required for registration"
	ErrClientInvalidMode                   = "invalid mode"
	ErrClientEmailAlreadyRegistered        = "email already in use, please sign in instead"
	ErrClientMagicLinkInvalidOrExpired     = "this link is invalid or has expired, please request a new one"
	ErrClientVerificationEmailFailed       = "could not send verification email, please try again"
	ErrClientProgramNotFound               = "program not found"
	ErrClientExerciseVideoTooLarge         = "the video you uploaded exceeds the size limit"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
)

const (
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthMissingRequestID      = "request id missing from context"
	ErrDevAuthMissingSessionData    = "session data missing from context"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevMagicLinkGenerateToken    = "failed to generate magic link token"
	ErrDevMagicLinkNotRedeemable    = "no unconsumed unexpired magic link matched the token"
	ErrDevEmailAlreadyRegistered    = "register requested for an email that already owns an account"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevWeightEntryInvalid        = "weight entry rejected by validation"
	ErrDevProgramNotFound           = "program not found on database"
	ErrDevExerciseVideoNotFound     = "exercise video not found on database"
	ErrDevExerciseVideoUploadFailed = "failed to upload exercise video asset"
	ErrDevExerciseVideoTooLarge     = "uploaded video exceeds the configured size limit"
)

const (
	ErrDevDBFailedToInsertDocument        = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument        = "failed to update document into database"
	ErrDevDBFailedToFindDocument          = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument        = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments      = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndexes         = "failed to create indexes on database"
	ErrDevDBFailedToFindAndUpdateDocument = "failed when do find-and-update document on database"
	ErrDevDBStringNotObjectID             = "given string cannot be converted to mongo ObjectID"
)

const (
	ErrDevRedisSet         = "failed to set value on redis"
	ErrDevRedisGetNoData   = "failed to get value from redis with key %s"
	ErrDevRedisDelete      = "failed to delete value on redis"
	ErrDevRedisSetNX       = "failed to setnx value on redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevSMTPSendEmail    = "failed to send email via SMTP client hostname %s"
	ErrDevQueuePublish     = "failed to publish message to queue"
	ErrDevMinioPutObject   = "failed to create object on minio bucket %s"
	ErrDevMinioPresignedURL = "failed to create presigned URL on minio bucket %s"
)
