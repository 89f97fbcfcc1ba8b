// FILE: internal/service/offer_service.go
// Read-only access to the offer catalog.
package service

import (
	"context"

	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/pkg/catalog"
)

type IOfferService interface {
	List(ctx context.Context) []catalog.Offer
	Get(ctx context.Context, offerId string) (*catalog.Offer, error)
}

type offerService struct {
	catalog *catalog.Catalog
}

func NewOfferService(offerCatalog *catalog.Catalog) IOfferService {
	return &offerService{
		catalog: offerCatalog,
	}
}

func (s *offerService) List(ctx context.Context) []catalog.Offer {
	return s.catalog.List()
}

func (s *offerService) Get(ctx context.Context, offerId string) (*catalog.Offer, error) {
	offer, found := s.catalog.Get(offerId)
	if !found {
		return nil, apperror.NotFound("offer %s not found", offerId)
	}
	return offer, nil
}
