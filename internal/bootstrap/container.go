package bootstrap

import (
	"shared-notes-be/internal/config"
	"shared-notes-be/internal/controller"
	"shared-notes-be/internal/pkg/logger"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController

	// Background services (run by main)
	ActivityService service.IActivityService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	activityService := service.NewActivityService(pubSub, cfg.App.ActivityTopic, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		NoteController:  controller.NewNoteController(noteService),
		ActivityService: activityService,
		Logger:          sysLogger,
	}
}
