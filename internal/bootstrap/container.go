package bootstrap

import (
	"log"

	"rescueos-be/internal/config"
	"rescueos-be/internal/controller"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/pkg/mailer"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/internal/service"
	"rescueos-be/pkg/storage"

	natsbus "rescueos-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	RescueController       controller.IRescueController
	PublicController       controller.IPublicController
	AnimalController       controller.IAnimalController
	InquiryController      controller.IInquiryController
	TeamController         controller.ITeamController
	NotificationController controller.INotificationController
	ModerationController   controller.IModerationController
	BillingController      controller.IBillingController

	// Background services, main.go starts these.
	NotificationService service.INotificationService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades.
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.SupportEmail,
	)

	photoStore, err := storage.NewLocalStorage(cfg.App.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare upload directory: %v", err)
	}

	// Event bus. A missing NATS server degrades to synchronous-only
	// behavior, emails simply stop going out.
	natsPub, err := natsbus.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := natsbus.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	publisherService := service.NewPublisherService(natsPub, sysLogger)

	// Services. The elevated factory parameters take the same handle as the
	// caller-scoped one: tenancy is enforced by specifications, not by
	// database roles, so a single connection pool serves both. Deployments
	// that split a service-role DSN can construct a second factory here.
	authContextService := service.NewAuthContextService(uowFactory, uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, authContextService, cfg.App.JWTSecret, sysLogger)
	rescueService := service.NewRescueService(uowFactory, sysLogger)
	animalService := service.NewAnimalService(uowFactory, photoStore, sysLogger)
	inquiryService := service.NewInquiryService(uowFactory, publisherService, sysLogger)
	teamService := service.NewTeamService(uowFactory, publisherService, sysLogger)
	moderationService := service.NewModerationService(uowFactory, cfg.Moderation.OperatorEmails, sysLogger)
	billingService := service.NewBillingService(
		uowFactory,
		uowFactory,
		cfg.Payment.MidtransServerKey,
		cfg.Payment.MidtransProd,
		cfg.App.ClientURL,
		sysLogger,
	)

	// The dispatcher logs to its own file so delivery noise stays out of
	// the request log.
	dispatchLogger := logger.NewIsolatedLogger("dispatcher.log")
	notificationService := service.NewNotificationService(
		uowFactory,
		natsSub,
		publisherService,
		emailService,
		cfg.App.SupportEmail,
		cfg.App.ClientURL,
		dispatchLogger,
	)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		RescueController:       controller.NewRescueController(rescueService, authContextService),
		PublicController:       controller.NewPublicController(rescueService, animalService, inquiryService, moderationService),
		AnimalController:       controller.NewAnimalController(animalService, authContextService),
		InquiryController:      controller.NewInquiryController(inquiryService, authContextService),
		TeamController:         controller.NewTeamController(teamService, authContextService),
		NotificationController: controller.NewNotificationController(notificationService, authContextService),
		ModerationController:   controller.NewModerationController(moderationService),
		BillingController:      controller.NewBillingController(billingService, authContextService),

		NotificationService: notificationService,
		Logger:              sysLogger,
	}
}
