package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"qa-review-be/internal/config"
	"qa-review-be/internal/controller"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/pkg/mailer"
	"qa-review-be/internal/production"
	"qa-review-be/internal/repository/unitofwork"
	"qa-review-be/internal/service"
	"qa-review-be/pkg/answer"
)

type Container struct {
	// Controllers
	ReviewController  controller.IReviewController
	SessionController controller.ISessionController
	QueueController   controller.IQueueController
	AdminController   controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	answerClient := answer.NewClient(answer.Config{
		BaseURL: cfg.Answer.BaseURL,
		APIKey:  cfg.Answer.APIKey,
		Timeout: cfg.Answer.Timeout,
	})

	registry := production.DefaultRegistry()

	// Services
	publisherService := service.NewPublisherService(pubSub, sysLogger)
	productionService := service.NewProductionService(uowFactory, registry, cfg.Production, sysLogger)
	reviewService := service.NewReviewService(uowFactory, productionService, publisherService, cfg.Review, sysLogger)
	queueService := service.NewQueueService(uowFactory, cfg.Review, sysLogger)
	sessionService := service.NewSessionService(uowFactory, sysLogger)
	intakeService := service.NewIntakeService(uowFactory, answerClient, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory, emailService, sysLogger)

	return &Container{
		ReviewController:  controller.NewReviewController(reviewService, queueService, productionService),
		SessionController: controller.NewSessionController(sessionService),
		QueueController:   controller.NewQueueController(intakeService),
		AdminController:   controller.NewAdminController(adminService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
