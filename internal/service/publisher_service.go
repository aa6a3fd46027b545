package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/logger"
)

// IPublisherService emits domain events after the owning transaction commits.
// Delivery is best effort; the committed state is the source of truth.
type IPublisherService interface {
	PublishReviewFlagged(payload dto.ReviewFlaggedMessage)
}

type publisherService struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, logger logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *publisherService) PublishReviewFlagged(payload dto.ReviewFlaggedMessage) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("publisher", "failed to marshal flagged event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if err := s.publisher.Publish(constant.TopicReviewFlagged, msg); err != nil {
		s.logger.Error("publisher", "failed to publish flagged event", map[string]interface{}{
			"error":         err.Error(),
			"queue_item_id": payload.QueueItemId,
		})
	}
}
