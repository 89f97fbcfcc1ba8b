// FILE: internal/service/history_service.go
// Audit trail writer and query side. Transition records are written by the
// lifecycle services inside their own transactions through
// newTransitionRecord; this service carries the manual-entry and read paths.
package service

import (
	"context"
	"fmt"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/repository/specification"
	"ocs-provisioning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	historyDefaultLimit = 20
	historyMaxLimit     = 100
)

type IHistoryService interface {
	Create(ctx context.Context, req *dto.CreateHistoryRequest) (*dto.HistoryResponse, error)
	Get(ctx context.Context, interactionId string) (*dto.HistoryResponse, error)
	List(ctx context.Context, entityId string, limit, offset int) ([]*dto.HistoryResponse, error)
	Patch(ctx context.Context, interactionId string, ops []dto.PatchOperation) (*dto.HistoryResponse, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (s *historyService) Create(ctx context.Context, req *dto.CreateHistoryRequest) (*dto.HistoryResponse, error) {
	record := &entity.AccountHistory{
		InteractionId:    req.InteractionId,
		EntityId:         req.EntityId,
		EntityType:       entity.HistoryEntityType(req.EntityType),
		CreationDate:     time.Now().UTC(),
		Description:      req.Description,
		Direction:        req.Direction,
		Reason:           req.Reason,
		Status:           req.Status,
		Channel:          req.Channel,
		InteractionStart: req.InteractionStart,
		InteractionEnd:   req.InteractionEnd,
		Attachment:       req.Attachment,
		Version:          1,
	}
	if record.InteractionId == "" {
		record.InteractionId = uuid.NewString()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return toHistoryResponse(record), nil
}

func (s *historyService) Get(ctx context.Context, interactionId string) (*dto.HistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.HistoryRepository().FindOne(ctx, specification.ByInteractionID{InteractionID: interactionId})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading account history")
	}
	if record == nil {
		return nil, apperror.NotFound("interaction %s not found", interactionId)
	}
	return toHistoryResponse(record), nil
}

// List returns history for one entity, newest interaction first. An entity
// with no history, or an offset past the end, yields an empty slice.
func (s *historyService) List(ctx context.Context, entityId string, limit, offset int) ([]*dto.HistoryResponse, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.HistoryRepository().FindAll(ctx,
		specification.ByEntityID{EntityID: entityId},
		specification.OrderByInteractionStart{},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, apperror.Unavailable(err, "listing account history")
	}

	result := make([]*dto.HistoryResponse, len(records))
	for i, record := range records {
		result[i] = toHistoryResponse(record)
	}
	return result, nil
}

// historyPatchFields is the static allow-list for patching an interaction.
// interactionId, entityId, entityType and creationDate are identity and stay
// immutable for the lifetime of the record.
var historyPatchFields = map[string]func(*entity.AccountHistory, dto.PatchOperation) error{
	"description": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		h.Description = v
		return nil
	},
	"direction": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		h.Direction = v
		return nil
	},
	"reason": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		h.Reason = v
		return nil
	},
	"status": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		h.Status = v
		return nil
	},
	"channel": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		h.Channel = v
		return nil
	},
	"interactionDate.start": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := timePtrValue(op)
		if err != nil {
			return err
		}
		h.InteractionStart = v
		return nil
	},
	"interactionDate.end": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := timePtrValue(op)
		if err != nil {
			return err
		}
		h.InteractionEnd = v
		return nil
	},
	"attachment": func(h *entity.AccountHistory, op dto.PatchOperation) error {
		v, err := jsonValue(op)
		if err != nil {
			return err
		}
		h.Attachment = v
		return nil
	},
}

func (s *historyService) Patch(ctx context.Context, interactionId string, ops []dto.PatchOperation) (*dto.HistoryResponse, error) {
	// Fail closed before touching anything
	for _, op := range ops {
		if _, known := historyPatchFields[op.FieldName]; !known {
			return nil, apperror.Validation("unknown account history field %q", op.FieldName)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.HistoryRepository().FindOne(ctx, specification.ByInteractionID{InteractionID: interactionId})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading account history")
	}
	if record == nil {
		return nil, apperror.NotFound("interaction %s not found", interactionId)
	}

	expectedVersion := record.Version
	for _, op := range ops {
		if err := historyPatchFields[op.FieldName](record, op); err != nil {
			return nil, err
		}
	}
	record.Version = expectedVersion + 1

	swapped, err := uow.HistoryRepository().UpdateCAS(ctx, record, expectedVersion)
	if err != nil {
		return nil, apperror.Unavailable(err, "updating account history")
	}
	if !swapped {
		return nil, apperror.Conflict("interaction %s was modified concurrently", interactionId)
	}
	return toHistoryResponse(record), nil
}

// newTransitionRecord builds the audit row paired with one accepted lifecycle
// transition. The description encodes the traversed edge.
func newTransitionRecord(entityId string, entityType entity.HistoryEntityType, from, to, reason string) *entity.AccountHistory {
	now := time.Now().UTC()
	return &entity.AccountHistory{
		InteractionId:    uuid.NewString(),
		EntityId:         entityId,
		EntityType:       entityType,
		CreationDate:     now,
		Description:      fmt.Sprintf("state transition %s -> %s", from, to),
		Direction:        "none",
		Reason:           reason,
		Status:           "completed",
		Channel:          "system",
		InteractionStart: &now,
		InteractionEnd:   &now,
		Version:          1,
	}
}

func toHistoryResponse(h *entity.AccountHistory) *dto.HistoryResponse {
	return &dto.HistoryResponse{
		InteractionId: h.InteractionId,
		EntityId:      h.EntityId,
		EntityType:    string(h.EntityType),
		CreationDate:  h.CreationDate,
		Description:   h.Description,
		Direction:     h.Direction,
		Reason:        h.Reason,
		Status:        h.Status,
		Channel:       h.Channel,
		InteractionDate: dto.InteractionDate{
			Start: h.InteractionStart,
			End:   h.InteractionEnd,
		},
		Attachment: h.Attachment,
		Version:    h.Version,
	}
}
