package mapper

import (
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/model"
)

type SubscriberMapper struct{}

func NewSubscriberMapper() *SubscriberMapper {
	return &SubscriberMapper{}
}

func (m *SubscriberMapper) ToEntity(s *model.Subscriber) *entity.Subscriber {
	if s == nil {
		return nil
	}
	return &entity.Subscriber{
		Id:                 s.Id,
		BusinessAccountId:  s.BusinessAccountId,
		Msisdn:             s.Msisdn,
		Imsi:               s.Imsi,
		IccId:              s.IccId,
		SubscriberType:     s.SubscriberType,
		State:              entity.SubscriberState(s.State),
		PreviousState:      subscriberStatePtr(s.PreviousState),
		CreationDate:       s.CreationDate,
		LastTransitionDate: s.LastTransitionDate,
		ActivationDate:     s.ActivationDate,
		ExpirationDate:     s.ExpirationDate,
		PersonalInfo:       s.PersonalInfo,
		Billing:            s.Billing,
		LastModifiedDate:   s.LastModifiedDate,
	}
}

func (m *SubscriberMapper) ToModel(s *entity.Subscriber) *model.Subscriber {
	if s == nil {
		return nil
	}
	return &model.Subscriber{
		Id:                 s.Id,
		BusinessAccountId:  s.BusinessAccountId,
		Msisdn:             s.Msisdn,
		Imsi:               s.Imsi,
		IccId:              s.IccId,
		SubscriberType:     s.SubscriberType,
		State:              string(s.State),
		PreviousState:      stringPtrFromSubscriberState(s.PreviousState),
		CreationDate:       s.CreationDate,
		LastTransitionDate: s.LastTransitionDate,
		ActivationDate:     s.ActivationDate,
		ExpirationDate:     s.ExpirationDate,
		PersonalInfo:       s.PersonalInfo,
		Billing:            s.Billing,
		LastModifiedDate:   s.LastModifiedDate,
	}
}

func subscriberStatePtr(s *string) *entity.SubscriberState {
	if s == nil {
		return nil
	}
	state := entity.SubscriberState(*s)
	return &state
}

func stringPtrFromSubscriberState(s *entity.SubscriberState) *string {
	if s == nil {
		return nil
	}
	str := string(*s)
	return &str
}
