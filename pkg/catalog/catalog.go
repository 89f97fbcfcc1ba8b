// Package catalog is an in-process read-side of the offer catalog. Offers are
// provisioned out of band; the engine only needs to resolve cycle defaults
// when a subscription references an offerId.
package catalog

import (
	"sort"

	"ocs-provisioning-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type Offer struct {
	OfferId            string                 `json:"offerId"`
	OfferName          string                 `json:"offerName"`
	Description        string                 `json:"description,omitempty"`
	Price              float64                `json:"price"`
	SubscriptionType   string                 `json:"type"`
	Recurring          bool                   `json:"recurring"`
	MaxRecurringCycles *int                   `json:"maxRecurringCycles"`
	CycleLengthUnits   int                    `json:"cycleLength"`
	CycleLengthType    entity.CycleLengthType `json:"cycleUnit"`
}

type Catalog struct {
	cache *cache.Cache
}

func New() *Catalog {
	return &Catalog{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *Catalog) Put(offer Offer) {
	c.cache.Set(offer.OfferId, offer, cache.NoExpiration)
}

func (c *Catalog) Get(offerId string) (*Offer, bool) {
	if x, found := c.cache.Get(offerId); found {
		offer := x.(Offer)
		return &offer, true
	}
	return nil, false
}

func (c *Catalog) List() []Offer {
	items := c.cache.Items()
	offers := make([]Offer, 0, len(items))
	for _, item := range items {
		offers = append(offers, item.Object.(Offer))
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].OfferId < offers[j].OfferId
	})
	return offers
}

// SeedDefaults loads the static OCS catalog used when no external catalog
// feed is configured.
func (c *Catalog) SeedDefaults() {
	twelve := 12
	for _, offer := range []Offer{
		{
			OfferId:          "1000",
			OfferName:        "Basic prepaid plan",
			Description:      "Basic prepaid priceplan, which covers all type of services",
			Price:            7.99,
			SubscriptionType: "PREPAID",
			Recurring:        true,
			CycleLengthUnits: 1,
			CycleLengthType:  entity.CycleLengthMonths,
		},
		{
			OfferId:          "1001",
			OfferName:        "Basic postpaid plan",
			Description:      "Basic postpaid priceplan, which covers all type of services",
			Price:            15.99,
			SubscriptionType: "POSTPAID",
			Recurring:        true,
			CycleLengthUnits: 1,
			CycleLengthType:  entity.CycleLengthMonths,
		},
		{
			OfferId:            "1003",
			OfferName:          "Weekly data bundle",
			Description:        "Prepaid data bundle renewing weekly for up to twelve cycles",
			Price:              2.49,
			SubscriptionType:   "PREPAID",
			Recurring:          true,
			MaxRecurringCycles: &twelve,
			CycleLengthUnits:   1,
			CycleLengthType:    entity.CycleLengthWeeks,
		},
	} {
		c.Put(offer)
	}
}
