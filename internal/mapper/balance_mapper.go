package mapper

import (
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/model"
)

type BalanceMapper struct{}

func NewBalanceMapper() *BalanceMapper {
	return &BalanceMapper{}
}

func (m *BalanceMapper) ToEntity(b *model.Balance) *entity.Balance {
	if b == nil {
		return nil
	}
	return &entity.Balance{
		Id:                       b.Id,
		SubscriptionId:           b.SubscriptionId,
		BalanceType:              b.BalanceType,
		UnitType:                 entity.BalanceUnitType(b.UnitType),
		BalanceAmount:            b.BalanceAmount,
		BalanceAvailable:         b.BalanceAvailable,
		IsGroupBalance:           b.IsGroupBalance,
		IsRecurring:              b.IsRecurring,
		CycleLengthUnits:         b.CycleLengthUnits,
		CycleLengthType:          entity.CycleLengthType(b.CycleLengthType),
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

func (m *BalanceMapper) ToModel(b *entity.Balance) *model.Balance {
	if b == nil {
		return nil
	}
	return &model.Balance{
		Id:                       b.Id,
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
