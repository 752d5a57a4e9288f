package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/drivers/logger"
	"jondonfit-service/internal/app/drivers/mailer"
	"jondonfit-service/internal/app/drivers/messaging"
	sharedmailer "jondonfit-service/internal/app/services/shared/mailer"
	"jondonfit-service/internal/app/services/shared/mailqueue"
	"jondonfit-service/internal/pkg/dto/requests"
)

// Drains the reminder queue and delivers each payload over SMTP.
// Runs as its own process so slow mail servers never stall the API.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)

	smtpClient := mailer.NewSMTPClient(driverConfig)
	mailerService := sharedmailer.NewMailerService(smtpClient, internalConfig)

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down mail worker..")
		cancel()
	}()

	log.Printf("Mail worker consuming queue %s", internalConfig.App.MailerQueue)

	err := mailqueue.Consume(ctx, rabbitMQ, internalConfig.App.MailerQueue, zapLogger, func(payload *requests.EmailPayload) error {
		return mailerService.SendEmail(payload)
	})
	if err != nil && err != context.Canceled {
		log.Fatalf("Mail worker stopped with error: %v", err)
	}

	if err := rabbitMQ.Close(); err != nil {
		log.Printf("Error closing RabbitMQ connection: %v", err)
	}
	log.Println("Mail worker exiting")
}
