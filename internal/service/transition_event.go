// FILE: internal/service/transition_event.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/logger"
)

// publishTransitionEvent notifies bus subscribers after a transition has
// committed. The audit row is the durable record; the event is best effort
// and a publish failure never rolls the transition back.
func publishTransitionEvent(ctx context.Context, publisher IPublisherService, sysLogger logger.ILogger, entityId string, entityType entity.HistoryEntityType, from, to, interactionId string) {
	if publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.TransitionEventMessage{
		EntityId:      entityId,
		EntityType:    string(entityType),
		FromState:     from,
		ToState:       to,
		InteractionId: interactionId,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		logEventFailure(sysLogger, "failed to encode transition event", entityId, err)
		return
	}
	if err := publisher.Publish(ctx, payload); err != nil {
		logEventFailure(sysLogger, "failed to publish transition event", entityId, err)
	}
}

func logEventFailure(sysLogger logger.ILogger, message, entityId string, err error) {
	if sysLogger == nil {
		return
	}
	sysLogger.Error("lifecycle", message, map[string]interface{}{
		"entityId": entityId,
		"error":    err.Error(),
	})
}
