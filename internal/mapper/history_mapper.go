package mapper

import (
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.AccountHistory) *entity.AccountHistory {
	if h == nil {
		return nil
	}
	return &entity.AccountHistory{
		InteractionId:    h.InteractionId,
		EntityId:         h.EntityId,
		EntityType:       entity.HistoryEntityType(h.EntityType),
		CreationDate:     h.CreationDate,
		Description:      h.Description,
		Direction:        h.Direction,
		Reason:           h.Reason,
		Status:           h.Status,
		Channel:          h.Channel,
		InteractionStart: h.InteractionStart,
		InteractionEnd:   h.InteractionEnd,
		Attachment:       h.Attachment,
		Version:          h.Version,
	}
}

func (m *HistoryMapper) ToModel(h *entity.AccountHistory) *model.AccountHistory {
	if h == nil {
		return nil
	}
	return &model.AccountHistory{
		InteractionId:    h.InteractionId,
		EntityId:         h.EntityId,
		EntityType:       string(h.EntityType),
		CreationDate:     h.CreationDate,
		Description:      h.Description,
		Direction:        h.Direction,
		Reason:           h.Reason,
		Status:           h.Status,
		Channel:          h.Channel,
		InteractionStart: h.InteractionStart,
		InteractionEnd:   h.InteractionEnd,
		Attachment:       h.Attachment,
		Version:          h.Version,
	}
}
