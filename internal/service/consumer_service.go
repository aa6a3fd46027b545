package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/pkg/mailer"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/internal/repository/unitofwork"
)

// IConsumerService drains the flagged-review topic and notifies every active
// admin by email.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, constant.TopicReviewFlagged)
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
	var payload dto.ReviewFlaggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal flagged event", map[string]interface{}{
			"error": err.Error(),
		})
		// Malformed payloads never become valid; ack to stop the retry loop.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	admins, err := uow.ReviewerRepository().FindAll(ctx,
		specification.Filter("role", constant.RoleAdmin),
		specification.Filter("is_active", true),
	)
	if err != nil {
		cs.logger.Error("consumer", "failed to list admins", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	for _, admin := range admins {
		if err := cs.emailService.SendFlagAlert(admin.Email, payload.ReviewerName, payload.Intent, payload.QueryText, payload.Reason); err != nil {
			cs.logger.Error("consumer", "failed to send flag alert", map[string]interface{}{
				"admin_email":   admin.Email,
				"queue_item_id": payload.QueueItemId,
				"error":         err.Error(),
			})
		}
	}

	cs.logger.Info("consumer", "flag alert dispatched", map[string]interface{}{
		"queue_item_id": payload.QueueItemId,
		"admins":        len(admins),
	})
	msg.Ack()
}
