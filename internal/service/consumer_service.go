package service

import (
	"context"
	"encoding/json"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const consumerModule = "ViewConsumer"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Consume subscribes to the view topic and records views in the background
// until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishViewNoteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	first, err := cs.recordView(ctx, payload)
	if err != nil {
		cs.logger.Error(consumerModule, "Failed to record view", map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"user_id": payload.UserId,
			"error":   err.Error(),
		})
		// Views are best effort; drop rather than redeliver in a tight loop.
		msg.Ack()
		return
	}

	cs.logger.Debug(consumerModule, "View processed", map[string]interface{}{
		"note_id":    payload.NoteId.String(),
		"user_id":    payload.UserId,
		"first_view": first,
	})
	msg.Ack()
}

func (cs *consumerService) recordView(ctx context.Context, payload dto.PublishViewNoteMessage) (bool, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	created, err := uow.ViewRepository().CreateIfAbsent(ctx, &entity.View{
		UserId: payload.UserId,
		NoteId: payload.NoteId,
	})
	if err != nil {
		return false, err
	}
	if created {
		if err := uow.NoteRepository().IncrementViewsCount(ctx, payload.NoteId); err != nil {
			return false, err
		}
	}

	return created, uow.Commit()
}
