package service

import (
	"context"
	"encoding/json"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/pkg/logger"
	"shared-notes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IActivityService drains the activity topic and persists each note
// lifecycle event as an audit row in system_logs.
type IActivityService interface {
	Consume(ctx context.Context) error
}

type activityService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewActivityService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IActivityService {
	return &activityService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (s *activityService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *activityService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.NoteActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("activity", "Failed to unmarshal activity message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads are never retriable
		return
	}

	module := "note"
	row := &model.SystemLog{
		Id:      uuid.New(),
		Level:   "INFO",
		Module:  &module,
		Message: payload.Event,
		Details: datatypes.JSON(msg.Payload),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, row); err != nil {
		s.logger.Error("activity", "Failed to persist activity row", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}
