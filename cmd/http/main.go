package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"
	"jondonfit-service/internal/app/delivery/http/routers"
	"jondonfit-service/internal/app/drivers/database"
	"jondonfit-service/internal/app/drivers/logger"
	"jondonfit-service/internal/app/drivers/mailer"
	"jondonfit-service/internal/app/drivers/messaging"
	drivestorage "jondonfit-service/internal/app/drivers/storage"
	"jondonfit-service/internal/app/services/core/auth"
	"jondonfit-service/internal/app/services/core/magiclinks"
	"jondonfit-service/internal/app/services/core/programs"
	"jondonfit-service/internal/app/services/core/progress"
	"jondonfit-service/internal/app/services/core/session"
	"jondonfit-service/internal/app/services/core/users"
	"jondonfit-service/internal/app/services/core/videos"
	"jondonfit-service/internal/app/services/shared/locker"
	sharedmailer "jondonfit-service/internal/app/services/shared/mailer"
	"jondonfit-service/internal/app/services/shared/mailqueue"
	sharedredis "jondonfit-service/internal/app/services/shared/redis"
	sharedstorage "jondonfit-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := sharedmailer.NewMailerService(smtpClient, bootstrap.InternalConfig)
	minioClient := drivestorage.NewMinio(bootstrap.DriverConfig)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig)

	mailQueueService, err := mailqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize mail queue: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Magic links
	magicLinkRepository := magiclinks.NewMagicLinkMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	magicLinkUsecase := magiclinks.NewMagicLinkUsecase(magicLinkRepository, bootstrap.Logger)

	// User
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Program
	programRepository := programs.NewProgramMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	programUsecase := programs.NewProgramUsecase(programRepository, bootstrap.Logger)

	userUsecase := users.NewUserUsecase(userRepository, programRepository, sessionService, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(magicLinkUsecase, userRepository, sessionService, mailerService, bootstrap.Logger)

	// Progress
	weightEntryRepository := progress.NewWeightEntryMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	progressUsecase := progress.NewProgressUsecase(weightEntryRepository, sessionService, bootstrap.Logger)

	// Exercise videos
	exerciseVideoRepository := videos.NewExerciseVideoMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	exerciseVideoUsecase := videos.NewExerciseVideoUsecase(exerciseVideoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)

	ensureIndexes(magicLinkRepository, programRepository, weightEntryRepository, exerciseVideoRepository)

	// Weigh-in reminder sweep
	sweeper := progress.NewWeighInSweeper(userRepository, weightEntryRepository, mailQueueService, lockerService, bootstrap.Logger)
	sweepInterval := time.Duration(bootstrap.InternalConfig.App.WeighInSweepIntervalInHours) * time.Hour
	bootstrap.SweepStop = sweeper.Start(sweepInterval)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	programController := controllers.NewProgramController(bootstrap.Logger, programUsecase)
	progressController := controllers.NewProgressController(bootstrap.Logger, progressUsecase)
	exerciseVideoController := controllers.NewExerciseVideoController(bootstrap.Logger, exerciseVideoUsecase, bootstrap.InternalConfig)

	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		authController,
		userController,
		programController,
		progressController,
		exerciseVideoController,
	)
}

func ensureIndexes(indexed ...interface{ EnsureIndexes(context.Context) error }) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, repository := range indexed {
		if err := repository.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}
}
