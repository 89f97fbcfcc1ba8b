// FILE: internal/service/balance_service.go
// Balance bucket lifecycle on a subscription: create, list, delete-all. The
// buckets are provisioning state only; consumption against them belongs to
// the charging domain.
package service

import (
	"context"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/repository/specification"
	"ocs-provisioning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBalanceService interface {
	Create(ctx context.Context, subscriptionId uuid.UUID, req *dto.CreateBalanceRequest) (*dto.BalanceResponse, error)
	List(ctx context.Context, subscriptionId uuid.UUID) ([]*dto.BalanceResponse, error)
	DeleteAll(ctx context.Context, subscriptionId uuid.UUID) error
}

type balanceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBalanceService(uowFactory unitofwork.RepositoryFactory) IBalanceService {
	return &balanceService{
		uowFactory: uowFactory,
	}
}

func (s *balanceService) Create(ctx context.Context, subscriptionId uuid.UUID, req *dto.CreateBalanceRequest) (*dto.BalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireSubscription(ctx, uow, subscriptionId); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	balance := &entity.Balance{
		Id:                uuid.New(),
		SubscriptionId:    subscriptionId,
		BalanceType:       req.BalanceType,
		UnitType:          entity.BalanceUnitType(req.UnitType),
		BalanceAmount:     req.BalanceAmount,
		BalanceAvailable:  req.BalanceAmount,
		IsGroupBalance:    req.IsGroupBalance,
		IsRecurring:       req.IsRecurring,
		CycleLengthUnits:  1,
		CycleLengthType:   entity.CycleLengthMonths,
		MaxRolloverAmount: req.MaxRolloverAmount,
		IsRolloverAllowed: req.IsRolloverAllowed,
		EffectiveDate:     req.EffectiveDate,
		ExpirationDate:    entity.ExpirationSentinel,
		CreationDate:      now,
	}
	if req.BalanceAvailable != nil {
		balance.BalanceAvailable = *req.BalanceAvailable
	}
	if req.CycleLengthUnits != nil {
		balance.CycleLengthUnits = *req.CycleLengthUnits
	}
	if req.CycleLengthType != nil {
		balance.CycleLengthType = entity.CycleLengthType(*req.CycleLengthType)
	}
	balance.MaxRecurringCycles = req.MaxRecurringCycles
	if req.ExpirationDate != nil {
		balance.ExpirationDate = *req.ExpirationDate
	}

	if err := uow.BalanceRepository().Create(ctx, balance); err != nil {
		return nil, apperror.Unavailable(err, "writing balance")
	}
	return toBalanceResponse(balance), nil
}

func (s *balanceService) List(ctx context.Context, subscriptionId uuid.UUID) ([]*dto.BalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireSubscription(ctx, uow, subscriptionId); err != nil {
		return nil, err
	}

	balances, err := uow.BalanceRepository().FindAll(ctx,
		specification.BySubscriptionID{SubscriptionID: subscriptionId},
		specification.OrderBy{Field: "creation_date", Desc: true},
	)
	if err != nil {
		return nil, apperror.Unavailable(err, "listing balances")
	}
	result := make([]*dto.BalanceResponse, len(balances))
	for i, balance := range balances {
		result[i] = toBalanceResponse(balance)
	}
	return result, nil
}

// DeleteAll clears every bucket on the subscription. A subscription with no
// buckets deletes cleanly; only a missing subscription is an error.
func (s *balanceService) DeleteAll(ctx context.Context, subscriptionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireSubscription(ctx, uow, subscriptionId); err != nil {
		return err
	}
	if _, err := uow.BalanceRepository().DeleteAllBySubscriptionId(ctx, subscriptionId); err != nil {
		return apperror.Unavailable(err, "removing balances")
	}
	return nil
}

func (s *balanceService) requireSubscription(ctx context.Context, uow unitofwork.UnitOfWork, subscriptionId uuid.UUID) error {
	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subscriptionId})
	if err != nil {
		return apperror.Unavailable(err, "loading subscription")
	}
	if subscription == nil {
		return apperror.NotFound("subscription %s not found", subscriptionId)
	}
	return nil
}

func toBalanceResponse(b *entity.Balance) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		BalanceId:                b.Id,
		SubscriptionId:           b.SubscriptionId,
		BalanceType:              b.BalanceType,
		UnitType:                 string(b.UnitType),
		BalanceAmount:            b.BalanceAmount,
		BalanceAvailable:         b.BalanceAvailable,
		IsGroupBalance:           b.IsGroupBalance,
		IsRecurring:              b.IsRecurring,
		CycleLengthUnits:         b.CycleLengthUnits,
		CycleLengthType:          string(b.CycleLengthType),
		MaxRecurringCycles:       b.MaxRecurringCycles,
		RecurringCyclesCompleted: b.RecurringCyclesCompleted,
		RolloverAmount:           b.RolloverAmount,
		MaxRolloverAmount:        b.MaxRolloverAmount,
		IsRolloverAllowed:        b.IsRolloverAllowed,
		EffectiveDate:            b.EffectiveDate,
		ExpirationDate:           b.ExpirationDate,
		CreationDate:             b.CreationDate,
		LastModifiedDate:         b.LastModifiedDate,
	}
}
