package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "JDF_SVC_"
)

const (
	MongoCollectionMagicLinks     = "magiclinks"
	MongoCollectionUsers          = "users"
	MongoCollectionPrograms       = "programs"
	MongoCollectionWeightEntries  = "weightentries"
	MongoCollectionExerciseVideos = "exercisevideos"
)

const (
	MagicLinkModeLogin    = "login"
	MagicLinkModeRegister = "register"

	// MagicLinkTokenBytes is the entropy of a link token before hex encoding.
	MagicLinkTokenBytes = 32

	MagicLinkExpiryTime = 15 * time.Minute
)

// Weigh-in reminder thresholds, in days since the last weight entry.
const (
	ReminderThresholdGentle    = 3
	ReminderThresholdReminder  = 7
	ReminderThresholdStrong    = 12
	ReminderThresholdMandatory = 14
)

const (
	ReminderLevelNone      = "none"
	ReminderLevelGentle    = "gentle"
	ReminderLevelReminder  = "reminder"
	ReminderLevelStrong    = "strong"
	ReminderLevelMandatory = "mandatory"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 30
)

const (
	RedisWeighInSweepLockKey = "jondonfit:weighin_sweep_lock"
)
