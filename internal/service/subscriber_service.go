// FILE: internal/service/subscriber_service.go
package service

import (
	"context"
	"regexp"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/logger"
	"ocs-provisioning-be/internal/repository/specification"
	"ocs-provisioning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	msisdnPattern = regexp.MustCompile(`^[0-9]{11,15}$`)
	imsiPattern   = regexp.MustCompile(`^[0-9]{12,15}$`)
)

type ISubscriberService interface {
	Create(ctx context.Context, req *dto.CreateSubscriberRequest) (*dto.SubscriberResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SubscriberResponse, error)
	Patch(ctx context.Context, id uuid.UUID, ops []dto.PatchOperation) (*dto.SubscriberResponse, error)
	Transition(ctx context.Context, id uuid.UUID, action entity.TransitionAction) (*dto.SubscriberResponse, error)

	// Terminate hard-deletes the subscriber and its subscriptions. The
	// audit row outlives the entity.
	Terminate(ctx context.Context, id uuid.UUID) error
}

type subscriberService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewSubscriberService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, sysLogger logger.ILogger) ISubscriberService {
	return &subscriberService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func (s *subscriberService) Create(ctx context.Context, req *dto.CreateSubscriberRequest) (*dto.SubscriberResponse, error) {
	if !msisdnPattern.MatchString(req.Msisdn) {
		return nil, apperror.Validation("msisdn must be 11-15 digits")
	}
	if !imsiPattern.MatchString(req.Imsi) {
		return nil, apperror.Validation("imsi must be 12-15 digits")
	}

	now := time.Now().UTC()
	subscriber := &entity.Subscriber{
		Id:                uuid.New(),
		BusinessAccountId: req.BusinessAccountId,
		Msisdn:            req.Msisdn,
		Imsi:              req.Imsi,
		IccId:             req.IccId,
		SubscriberType:    req.SubscriberType,
		State:             entity.SubscriberStatePreProvisioned,
		CreationDate:      now,
		ExpirationDate:    entity.ExpirationSentinel,
		PersonalInfo:      req.PersonalInfo,
		Billing:           req.Billing,
	}
	if req.ExpirationDate != nil {
		subscriber.ExpirationDate = *req.ExpirationDate
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SubscriberRepository().Create(ctx, subscriber); err != nil {
		return nil, err
	}
	return toSubscriberResponse(subscriber), nil
}

func (s *subscriberService) Get(ctx context.Context, id uuid.UUID) (*dto.SubscriberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscriber, err := uow.SubscriberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading subscriber")
	}
	if subscriber == nil {
		return nil, apperror.NotFound("subscriber %s not found", id)
	}
	return toSubscriberResponse(subscriber), nil
}

func (s *subscriberService) Transition(ctx context.Context, id uuid.UUID, action entity.TransitionAction) (*dto.SubscriberResponse, error) {
	target, ok := entity.SubscriberTargetState(action)
	if !ok {
		return nil, apperror.InvalidState("action %q is not defined for subscribers", action)
	}
	return s.transitionToState(ctx, id, target, nil)
}

// transitionToState drives the subscriber state machine. A lost
// compare-and-swap is retried once against the freshly observed state; if the
// edge is gone by then the request fails like any other illegal transition.
func (s *subscriberService) transitionToState(ctx context.Context, id uuid.UUID, target entity.SubscriberState, edits func(*entity.Subscriber)) (*dto.SubscriberResponse, error) {
	for attempt := 0; attempt < 2; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		subscriber, err := uow.SubscriberRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, apperror.Unavailable(err, "loading subscriber")
		}
		if subscriber == nil {
			return nil, apperror.NotFound("subscriber %s not found", id)
		}
		if !entity.SubscriberCanTransition(subscriber.State, target) {
			return nil, apperror.InvalidTransition("subscriber %s cannot move %s -> %s", id, subscriber.State, target)
		}

		from := subscriber.State
		now := time.Now().UTC()
		prev := from
		subscriber.PreviousState = &prev
		subscriber.State = target
		subscriber.LastTransitionDate = &now
		subscriber.LastModifiedDate = &now
		if target == entity.SubscriberStateActive && subscriber.ActivationDate == nil {
			subscriber.ActivationDate = &now
		}
		if edits != nil {
			edits(subscriber)
		}

		record, err := s.commitTransition(ctx, uow, subscriber, from)
		if err == nil {
			publishTransitionEvent(ctx, s.publisher, s.logger, subscriber.Id.String(), entity.HistoryEntitySubscriber,
				string(from), string(target), record.InteractionId)
			return toSubscriberResponse(subscriber), nil
		}
		if !apperror.IsKind(err, apperror.KindConflict) {
			return nil, err
		}
		// Lost the swap; reload and try the edge once more.
	}
	return nil, apperror.Conflict("subscriber %s was modified concurrently", id)
}

// commitTransition writes the state change and its audit row as one unit.
func (s *subscriberService) commitTransition(ctx context.Context, uow unitofwork.UnitOfWork, subscriber *entity.Subscriber, from entity.SubscriberState) (*entity.AccountHistory, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Unavailable(err, "starting transaction")
	}
	defer uow.Rollback()

	swapped, err := uow.SubscriberRepository().UpdateStateCAS(ctx, subscriber, from)
	if err != nil {
		return nil, apperror.Unavailable(err, "writing subscriber state")
	}
	if !swapped {
		return nil, apperror.Conflict("subscriber %s state changed concurrently", subscriber.Id)
	}

	record := newTransitionRecord(subscriber.Id.String(), entity.HistoryEntitySubscriber,
		string(from), string(subscriber.State), "lifecycle transition")
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Unavailable(err, "committing transition")
	}
	return record, nil
}

func (s *subscriberService) Terminate(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscriber, err := uow.SubscriberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Unavailable(err, "loading subscriber")
	}
	if subscriber == nil {
		return apperror.NotFound("subscriber %s not found", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.Unavailable(err, "starting transaction")
	}
	defer uow.Rollback()

	// Balances go first; their subquery still needs the subscription rows.
	if err := uow.BalanceRepository().DeleteAllBySubscriberId(ctx, id); err != nil {
		return apperror.Unavailable(err, "removing balances")
	}
	if err := uow.SubscriptionRepository().DeleteAllBySubscriberId(ctx, id); err != nil {
		return apperror.Unavailable(err, "removing subscriptions")
	}
	rows, err := uow.SubscriberRepository().Delete(ctx, id)
	if err != nil {
		return apperror.Unavailable(err, "removing subscriber")
	}
	if rows == 0 {
		// Deleted from under us between load and delete
		return apperror.NotFound("subscriber %s not found", id)
	}

	record := newTransitionRecord(id.String(), entity.HistoryEntitySubscriber,
		string(subscriber.State), string(entity.SubscriberStateTerminated), "subscriber terminated")
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return apperror.Unavailable(err, "committing termination")
	}
	publishTransitionEvent(ctx, s.publisher, s.logger, id.String(), entity.HistoryEntitySubscriber,
		string(subscriber.State), string(entity.SubscriberStateTerminated), record.InteractionId)
	return nil
}

// subscriberPatchFields is the static allow-list for plain field patches.
// state is handled separately: its presence routes the patch through the
// state machine instead of a raw write.
var subscriberPatchFields = map[string]func(*entity.Subscriber, dto.PatchOperation) error{
	"businessAccountId": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.BusinessAccountId = v
		return nil
	},
	"msisdn": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		if !msisdnPattern.MatchString(v) {
			return apperror.Validation("msisdn must be 11-15 digits")
		}
		sub.Msisdn = v
		return nil
	},
	"imsi": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		if !imsiPattern.MatchString(v) {
			return apperror.Validation("imsi must be 12-15 digits")
		}
		sub.Imsi = v
		return nil
	},
	"iccId": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.IccId = v
		return nil
	},
	"subscriberType": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.SubscriberType = v
		return nil
	},
	"expirationDate": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := timeValue(op)
		if err != nil {
			return err
		}
		sub.ExpirationDate = v
		return nil
	},
	"personalInfo": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := jsonValue(op)
		if err != nil {
			return err
		}
		sub.PersonalInfo = v
		return nil
	},
	"billing": func(sub *entity.Subscriber, op dto.PatchOperation) error {
		v, err := jsonValue(op)
		if err != nil {
			return err
		}
		sub.Billing = v
		return nil
	},
}

func (s *subscriberService) Patch(ctx context.Context, id uuid.UUID, ops []dto.PatchOperation) (*dto.SubscriberResponse, error) {
	var stateOp *dto.PatchOperation
	fieldOps := make([]dto.PatchOperation, 0, len(ops))
	for i, op := range ops {
		if op.FieldName == "state" {
			stateOp = &ops[i]
			continue
		}
		if _, known := subscriberPatchFields[op.FieldName]; !known {
			return nil, apperror.Validation("unknown subscriber field %q", op.FieldName)
		}
		fieldOps = append(fieldOps, op)
	}

	if stateOp != nil {
		raw, err := stringValue(*stateOp)
		if err != nil {
			return nil, err
		}
		// Decode every value up front so the transition closure cannot fail
		scratch := &entity.Subscriber{}
		for _, op := range fieldOps {
			if err := subscriberPatchFields[op.FieldName](scratch, op); err != nil {
				return nil, err
			}
		}
		target := entity.SubscriberState(raw)
		return s.transitionToState(ctx, id, target, func(sub *entity.Subscriber) {
			for _, op := range fieldOps {
				_ = subscriberPatchFields[op.FieldName](sub, op)
			}
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscriber, err := uow.SubscriberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading subscriber")
	}
	if subscriber == nil {
		return nil, apperror.NotFound("subscriber %s not found", id)
	}

	for _, op := range fieldOps {
		if err := subscriberPatchFields[op.FieldName](subscriber, op); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	subscriber.LastModifiedDate = &now

	if err := uow.SubscriberRepository().Update(ctx, subscriber); err != nil {
		return nil, err
	}
	return toSubscriberResponse(subscriber), nil
}

func toSubscriberResponse(s *entity.Subscriber) *dto.SubscriberResponse {
	var previous *string
	if s.PreviousState != nil {
		p := string(*s.PreviousState)
		previous = &p
	}
	return &dto.SubscriberResponse{
		SubscriberId:       s.Id,
		BusinessAccountId:  s.BusinessAccountId,
		Msisdn:             s.Msisdn,
		Imsi:               s.Imsi,
		IccId:              s.IccId,
		SubscriberType:     s.SubscriberType,
		CurrentState:       string(s.State),
		PreviousState:      previous,
		CreationDate:       s.CreationDate,
		LastTransitionDate: s.LastTransitionDate,
		ActivationDate:     s.ActivationDate,
		ExpirationDate:     s.ExpirationDate,
		PersonalInfo:       s.PersonalInfo,
		Billing:            s.Billing,
		LastModifiedDate:   s.LastModifiedDate,
	}
}
