// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains committed transition events off the bus and writes
// them to the notification log. Delivery here is observational; the audit
// trail in the store is the source of truth.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event dto.TransitionEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("lifecycle", "failed to decode transition event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads are never retriable
		return
	}

	cs.logger.Info("lifecycle", "entity transitioned", map[string]interface{}{
		"entityId":      event.EntityId,
		"entityType":    event.EntityType,
		"fromState":     event.FromState,
		"toState":       event.ToState,
		"interactionId": event.InteractionId,
		"occurredAt":    event.OccurredAt,
	})
	msg.Ack()
}
