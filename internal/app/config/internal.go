package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		Address                        string
		Timezone                       string
		EndpointPrefix                 string
		FrontendDomain                 string
		MaxRequests                    int
		ShutdownTimeout                int
		RequestBodyLimitInMegabyte     int
		MailerQueue                    string
		SessionExpiredTimeInHours      int
		WeighInSweepIntervalInHours    int
		ExerciseVideoMaxUploadSizeInMB int64
		PlaceholderVideoURL            string
		PlaceholderThumbnailURL        string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
