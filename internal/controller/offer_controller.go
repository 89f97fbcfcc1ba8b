// FILE: internal/controller/offer_controller.go
package controller

import (
	"ocs-provisioning-be/internal/pkg/serverutils"
	"ocs-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOfferController interface {
	RegisterRoutes(api fiber.Router)
}

type offerController struct {
	offerService service.IOfferService
}

func NewOfferController(offerService service.IOfferService) IOfferController {
	return &offerController{
		offerService: offerService,
	}
}

func (c *offerController) RegisterRoutes(api fiber.Router) {
	offers := api.Group("/offers")
	offers.Get("/", c.List)
	offers.Get("/:offerId", c.Get)
}

func (c *offerController) List(ctx *fiber.Ctx) error {
	offers := c.offerService.List(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Offers retrieved", offers))
}

func (c *offerController) Get(ctx *fiber.Ctx) error {
	offer, err := c.offerService.Get(ctx.Context(), ctx.Params("offerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Offer retrieved", offer))
}
