package constvars

const (
	RegexEmail           = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric    = `^[a-zA-Z0-9]+$`
	RegexNumeric         = `^\d+$`
	RegexURL             = `^(http|https):\/\/[^\s$.?#].[^\s]*$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexMagicLinkToken  = `^[a-f0-9]{64}$`
	RegexDisplayName     = `^[\p{L}\p{N} .'-]{1,80}$`
	RegexProgramID       = `^[a-z0-9_-]+$`
	RegexHexColorCode    = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
)
