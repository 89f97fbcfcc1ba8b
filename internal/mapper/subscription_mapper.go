package mapper

import (
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:                       s.Id,
		SubscriberId:             s.SubscriberId,
		OfferId:                  s.OfferId,
		OfferName:                s.OfferName,
		SubscriptionType:         s.SubscriptionType,
		State:                    entity.SubscriptionState(s.State),
		PreviousState:            subscriptionStatePtr(s.PreviousState),
		Recurring:                s.Recurring,
		MaxRecurringCycles:       s.MaxRecurringCycles,
		RecurringCyclesCompleted: s.RecurringCyclesCompleted,
		CycleLengthUnits:         s.CycleLengthUnits,
		CycleLengthType:          entity.CycleLengthType(s.CycleLengthType),
		ActivationDate:           s.ActivationDate,
		RenewalDate:              s.RenewalDate,
		ExpirationDate:           s.ExpirationDate,
		CustomParameters:         s.CustomParameters,
		CreationDate:             s.CreationDate,
		LastModifiedDate:         s.LastModifiedDate,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                       s.Id,
		SubscriberId:             s.SubscriberId,
		OfferId:                  s.OfferId,
		OfferName:                s.OfferName,
		SubscriptionType:         s.SubscriptionType,
		State:                    string(s.State),
		PreviousState:            stringPtrFromSubscriptionState(s.PreviousState),
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

func subscriptionStatePtr(s *string) *entity.SubscriptionState {
	if s == nil {
		return nil
	}
	state := entity.SubscriptionState(*s)
	return &state
}

func stringPtrFromSubscriptionState(s *entity.SubscriptionState) *string {
	if s == nil {
		return nil
	}
	str := string(*s)
	return &str
}
