// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/logger"
	"ocs-provisioning-be/internal/repository/specification"
	"ocs-provisioning-be/internal/repository/unitofwork"
	"ocs-provisioning-be/pkg/catalog"
	"ocs-provisioning-be/pkg/cycle"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error)
	ListBySubscriber(ctx context.Context, subscriberId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	Patch(ctx context.Context, id uuid.UUID, ops []dto.PatchOperation) (*dto.SubscriptionResponse, error)
	Transition(ctx context.Context, id uuid.UUID, action entity.TransitionAction) (*dto.SubscriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    *catalog.Catalog
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, offerCatalog *catalog.Catalog, publisher IPublisherService, sysLogger logger.ILogger) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		catalog:    offerCatalog,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func (s *subscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.SubscriberRepository().FindOne(ctx, specification.ByID{ID: req.SubscriberId})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading subscriber")
	}
	if owner == nil {
		return nil, apperror.NotFound("subscriber %s not found", req.SubscriberId)
	}

	now := time.Now().UTC()
	subscription := &entity.Subscription{
		Id:               uuid.New(),
		SubscriberId:     req.SubscriberId,
		OfferId:          req.OfferId,
		OfferName:        req.OfferName,
		SubscriptionType: req.SubscriptionType,
		State:            entity.SubscriptionStatePending,
		CycleLengthUnits: 1,
		CycleLengthType:  entity.CycleLengthMonths,
		ExpirationDate:   entity.ExpirationSentinel,
		CustomParameters: req.CustomParameters,
		CreationDate:     now,
	}

	// Offer lookup fills whatever the caller left unspecified
	if req.OfferId != nil {
		if offer, found := s.catalog.Get(*req.OfferId); found {
			if subscription.OfferName == nil {
				subscription.OfferName = &offer.OfferName
			}
			if subscription.SubscriptionType == nil {
				subscription.SubscriptionType = &offer.SubscriptionType
			}
			subscription.Recurring = offer.Recurring
			subscription.MaxRecurringCycles = offer.MaxRecurringCycles
			if offer.CycleLengthUnits > 0 {
				subscription.CycleLengthUnits = offer.CycleLengthUnits
				subscription.CycleLengthType = offer.CycleLengthType
			}
		}
	}
	if req.Recurring != nil {
		subscription.Recurring = *req.Recurring
	}
	if req.MaxRecurringCycles != nil {
		subscription.MaxRecurringCycles = req.MaxRecurringCycles
	}
	if req.CycleLengthUnits != nil {
		subscription.CycleLengthUnits = *req.CycleLengthUnits
	}
	if req.CycleLengthType != nil {
		subscription.CycleLengthType = entity.CycleLengthType(*req.CycleLengthType)
	}
	if req.ExpirationDate != nil {
		subscription.ExpirationDate = *req.ExpirationDate
	}

	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}
	return toSubscriptionResponse(subscription), nil
}

func (s *subscriptionService) Get(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading subscription")
	}
	if subscription == nil {
		return nil, apperror.NotFound("subscription %s not found", id)
	}
	return toSubscriptionResponse(subscription), nil
}

func (s *subscriptionService) ListBySubscriber(ctx context.Context, subscriberId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscriptions, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.BySubscriberID{SubscriberID: subscriberId},
		specification.OrderBy{Field: "creation_date", Desc: true},
	)
	if err != nil {
		return nil, apperror.Unavailable(err, "listing subscriptions")
	}
	result := make([]*dto.SubscriptionResponse, len(subscriptions))
	for i, subscription := range subscriptions {
		result[i] = toSubscriptionResponse(subscription)
	}
	return result, nil
}

func (s *subscriptionService) Transition(ctx context.Context, id uuid.UUID, action entity.TransitionAction) (*dto.SubscriptionResponse, error) {
	if action == entity.ActionRenew {
		return s.renew(ctx, id)
	}
	target, ok := entity.SubscriptionTargetState(action)
	if !ok {
		return nil, apperror.InvalidState("action %q is not defined for subscriptions", action)
	}
	return s.transitionToState(ctx, id, target, nil)
}

// transitionToState drives the user-requested edges of the subscription
// state machine. One retry covers a lost compare-and-swap; the system-only
// active -> expired edge never goes through here.
func (s *subscriptionService) transitionToState(ctx context.Context, id uuid.UUID, target entity.SubscriptionState, edits func(*entity.Subscription)) (*dto.SubscriptionResponse, error) {
	for attempt := 0; attempt < 2; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, apperror.Unavailable(err, "loading subscription")
		}
		if subscription == nil {
			return nil, apperror.NotFound("subscription %s not found", id)
		}
		if !entity.SubscriptionCanTransition(subscription.State, target) {
			return nil, apperror.InvalidTransition("subscription %s cannot move %s -> %s", id, subscription.State, target)
		}

		from := subscription.State
		now := time.Now().UTC()
		prev := from
		subscription.PreviousState = &prev
		subscription.State = target
		subscription.LastModifiedDate = &now
		// Field edits apply before the activation bookkeeping so the renewal
		// horizon is computed from the cycle the caller just set.
		if edits != nil {
			edits(subscription)
		}
		if target == entity.SubscriptionStateActive {
			if subscription.ActivationDate == nil {
				subscription.ActivationDate = &now
			}
			// Entry into active always refreshes the renewal horizon
			next, err := cycle.NextRenewal(now, subscription.CycleLengthUnits, subscription.CycleLengthType)
			if err != nil {
				return nil, err
			}
			subscription.RenewalDate = &next
		}

		record, err := s.commitTransition(ctx, uow, subscription, from, "lifecycle transition")
		if err == nil {
			publishTransitionEvent(ctx, s.publisher, s.logger, subscription.Id.String(), entity.HistoryEntitySubscription,
				string(from), string(target), record.InteractionId)
			return toSubscriptionResponse(subscription), nil
		}
		if !apperror.IsKind(err, apperror.KindConflict) {
			return nil, err
		}
	}
	return nil, apperror.Conflict("subscription %s was modified concurrently", id)
}

// renew applies one billing cycle. Reaching maxRecurringCycles routes the
// subscription into expired through the system edge; otherwise the renewal
// date advances and the subscription stays active. Either way exactly one
// audit row is written with the cycle bookkeeping.
func (s *subscriptionService) renew(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	for attempt := 0; attempt < 2; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, apperror.Unavailable(err, "loading subscription")
		}
		if subscription == nil {
			return nil, apperror.NotFound("subscription %s not found", id)
		}

		now := time.Now().UTC()
		result, err := cycle.EvaluateRenewal(subscription, now)
		if err != nil {
			return nil, err
		}

		from := subscription.State
		expectedCycles := subscription.RecurringCyclesCompleted
		subscription.RecurringCyclesCompleted = result.CyclesCompleted
		subscription.LastModifiedDate = &now
		reason := "renewal cycle applied"
		if result.ForcedExpire {
			prev := from
			subscription.PreviousState = &prev
			subscription.State = entity.SubscriptionStateExpired
			subscription.RenewalDate = nil
			reason = "max recurring cycles reached"
		} else {
			subscription.RenewalDate = result.NewRenewalDate
		}

		record, err := s.commitRenewal(ctx, uow, subscription, from, expectedCycles, reason)
		if err == nil {
			if subscription.State != from {
				publishTransitionEvent(ctx, s.publisher, s.logger, subscription.Id.String(), entity.HistoryEntitySubscription,
					string(from), string(subscription.State), record.InteractionId)
			}
			return toSubscriptionResponse(subscription), nil
		}
		if !apperror.IsKind(err, apperror.KindConflict) {
			return nil, err
		}
	}
	return nil, apperror.Conflict("subscription %s was modified concurrently", id)
}

func (s *subscriptionService) commitTransition(ctx context.Context, uow unitofwork.UnitOfWork, subscription *entity.Subscription, from entity.SubscriptionState, reason string) (*entity.AccountHistory, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Unavailable(err, "starting transaction")
	}
	defer uow.Rollback()

	swapped, err := uow.SubscriptionRepository().UpdateStateCAS(ctx, subscription, from)
	if err != nil {
		return nil, apperror.Unavailable(err, "writing subscription state")
	}
	if !swapped {
		return nil, apperror.Conflict("subscription %s state changed concurrently", subscription.Id)
	}

	record := newTransitionRecord(subscription.Id.String(), entity.HistoryEntitySubscription,
		string(from), string(subscription.State), reason)
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Unavailable(err, "committing transition")
	}
	return record, nil
}

// commitRenewal is commitTransition with the cycle counter folded into the
// compare-and-swap, since a non-expiring renewal leaves the state unchanged.
func (s *subscriptionService) commitRenewal(ctx context.Context, uow unitofwork.UnitOfWork, subscription *entity.Subscription, from entity.SubscriptionState, expectedCycles int, reason string) (*entity.AccountHistory, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Unavailable(err, "starting transaction")
	}
	defer uow.Rollback()

	swapped, err := uow.SubscriptionRepository().UpdateRenewalCAS(ctx, subscription, from, expectedCycles)
	if err != nil {
		return nil, apperror.Unavailable(err, "writing subscription renewal")
	}
	if !swapped {
		return nil, apperror.Conflict("subscription %s renewed concurrently", subscription.Id)
	}

	record := newTransitionRecord(subscription.Id.String(), entity.HistoryEntitySubscription,
		string(from), string(subscription.State), reason)
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Unavailable(err, "committing renewal")
	}
	return record, nil
}

// Delete hard-deletes the subscription and its balance buckets together.
func (s *subscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Unavailable(err, "starting transaction")
	}
	defer uow.Rollback()

	if _, err := uow.BalanceRepository().DeleteAllBySubscriptionId(ctx, id); err != nil {
		return apperror.Unavailable(err, "removing balances")
	}
	rows, err := uow.SubscriptionRepository().Delete(ctx, id)
	if err != nil {
		return apperror.Unavailable(err, "removing subscription")
	}
	if rows == 0 {
		return apperror.NotFound("subscription %s not found", id)
	}
	if err := uow.Commit(); err != nil {
		return apperror.Unavailable(err, "committing deletion")
	}
	return nil
}

// subscriptionPatchFields is the static allow-list for plain field patches.
var subscriptionPatchFields = map[string]func(*entity.Subscription, dto.PatchOperation) error{
	"offerId": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.OfferId = v
		return nil
	},
	"offerName": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.OfferName = v
		return nil
	},
	"subscriptionType": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := stringPtrValue(op)
		if err != nil {
			return err
		}
		sub.SubscriptionType = v
		return nil
	},
	"recurring": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := boolValue(op)
		if err != nil {
			return err
		}
		sub.Recurring = v
		return nil
	},
	"maxRecurringCycles": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := intPtrValue(op)
		if err != nil {
			return err
		}
		if v != nil && *v < 1 {
			return apperror.Validation("maxRecurringCycles must be positive")
		}
		sub.MaxRecurringCycles = v
		return nil
	},
	"cycleLengthUnits": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := intValue(op)
		if err != nil {
			return err
		}
		if v < 1 {
			return apperror.Validation("cycleLengthUnits must be positive")
		}
		sub.CycleLengthUnits = v
		return nil
	},
	"cycleLengthType": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := stringValue(op)
		if err != nil {
			return err
		}
		switch entity.CycleLengthType(v) {
		case entity.CycleLengthDays, entity.CycleLengthWeeks, entity.CycleLengthMonths:
			sub.CycleLengthType = entity.CycleLengthType(v)
			return nil
		}
		return apperror.Validation("cycleLengthType must be days, weeks or months")
	},
	"expirationDate": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := timeValue(op)
		if err != nil {
			return err
		}
		sub.ExpirationDate = v
		return nil
	},
	"customParameters": func(sub *entity.Subscription, op dto.PatchOperation) error {
		v, err := jsonValue(op)
		if err != nil {
			return err
		}
		sub.CustomParameters = v
		return nil
	},
}

func (s *subscriptionService) Patch(ctx context.Context, id uuid.UUID, ops []dto.PatchOperation) (*dto.SubscriptionResponse, error) {
	var stateOp *dto.PatchOperation
	fieldOps := make([]dto.PatchOperation, 0, len(ops))
	for i, op := range ops {
		if op.FieldName == "state" {
			stateOp = &ops[i]
			continue
		}
		if _, known := subscriptionPatchFields[op.FieldName]; !known {
			return nil, apperror.Validation("unknown subscription field %q", op.FieldName)
		}
		fieldOps = append(fieldOps, op)
	}

	if stateOp != nil {
		raw, err := stringValue(*stateOp)
		if err != nil {
			return nil, err
		}
		scratch := &entity.Subscription{}
		for _, op := range fieldOps {
			if err := subscriptionPatchFields[op.FieldName](scratch, op); err != nil {
				return nil, err
			}
		}
		target := entity.SubscriptionState(raw)
		return s.transitionToState(ctx, id, target, func(sub *entity.Subscription) {
			for _, op := range fieldOps {
				_ = subscriptionPatchFields[op.FieldName](sub, op)
			}
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Unavailable(err, "loading subscription")
	}
	if subscription == nil {
		return nil, apperror.NotFound("subscription %s not found", id)
	}

	for _, op := range fieldOps {
		if err := subscriptionPatchFields[op.FieldName](subscription, op); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	subscription.LastModifiedDate = &now

	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, err
	}
	return toSubscriptionResponse(subscription), nil
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	var previous *string
	if s.PreviousState != nil {
		p := string(*s.PreviousState)
		previous = &p
	}
	return &dto.SubscriptionResponse{
		SubscriptionId:           s.Id,
		SubscriberId:             s.SubscriberId,
		OfferId:                  s.OfferId,
		OfferName:                s.OfferName,
		SubscriptionType:         s.SubscriptionType,
		State:                    string(s.State),
		PreviousState:            previous,
		Recurring:                s.Recurring,
		MaxRecurringCycles:       s.MaxRecurringCycles,
		RecurringCyclesCompleted: s.RecurringCyclesCompleted,
		CycleLengthUnits:         s.CycleLengthUnits,
		CycleLengthType:          string(s.CycleLengthType),
		ActivationDate:           s.ActivationDate,
		RenewalDate:              s.RenewalDate,
		ExpirationDate:           s.ExpirationDate,
		CustomParameters:         s.CustomParameters,
		CreationDate:             s.CreationDate,
		LastModifiedDate:         s.LastModifiedDate,
	}
}
