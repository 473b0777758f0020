package main

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/delivery/http/routers"
	"caps-service/internal/app/drivers/database"
	"caps-service/internal/app/drivers/logger"
	smtpDriver "caps-service/internal/app/drivers/mailer"
	"caps-service/internal/app/drivers/messaging"
	"caps-service/internal/app/services/core/appointments"
	"caps-service/internal/app/services/core/auth"
	"caps-service/internal/app/services/core/availabilities"
	"caps-service/internal/app/services/core/chatbot"
	"caps-service/internal/app/services/core/feedbacks"
	"caps-service/internal/app/services/core/reminders"
	"caps-service/internal/app/services/core/users"
	"caps-service/internal/app/services/shared/locker"
	"caps-service/internal/app/services/shared/mailer"
	"caps-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQConnection(driverConfig)
	chiRouter := chi.NewRouter()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		log.Fatal("failed to ensure mongo indexes", zap.Error(err))
	}
	cancelIndex()

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	reminderWorker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, workerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to be processed")

	if reminderWorker != nil {
		reminderWorker.Stop()
	}
	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, workerCtx context.Context) *reminders.Worker {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := smtpDriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.Reminder.MailerQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("failed to initialize mailer service", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, userMongoRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Availability
	availabilityMongoRepository := availabilities.NewAvailabilityMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	availabilityUsecase := availabilities.NewAvailabilityUsecase(availabilityMongoRepository, userMongoRepository, bootstrap.Logger)
	availabilityController := availabilities.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Feedback
	feedbackMongoRepository := feedbacks.NewFeedbackMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	feedbackUsecase := feedbacks.NewFeedbackUsecase(feedbackMongoRepository, appointmentMongoRepository, userMongoRepository, bootstrap.Logger)
	feedbackController := feedbacks.NewFeedbackController(bootstrap.Logger, feedbackUsecase)

	// Chatbot
	chatbotClient := chatbot.NewChatbotHTTPClient(bootstrap.InternalConfig)
	chatbotUsecase := chatbot.NewChatbotUsecase(chatbotClient, bootstrap.Logger)
	chatbotController := chatbot.NewChatbotController(bootstrap.Logger, chatbotUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		appointmentController,
		availabilityController,
		feedbackController,
		chatbotController,
	)

	if err := mailerService.StartConsumer(workerCtx); err != nil {
		bootstrap.Logger.Fatal("failed to start mailer consumer", zap.Error(err))
	}

	if !bootstrap.InternalConfig.Reminder.Enabled {
		return nil
	}

	reminderWorker := reminders.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		redisRepository,
		appointmentMongoRepository,
		userMongoRepository,
		mailerService,
	)
	reminderWorker.Start(workerCtx)
	return reminderWorker
}
