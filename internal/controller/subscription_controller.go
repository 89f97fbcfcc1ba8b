// FILE: internal/controller/subscription_controller.go
package controller

import (
	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/serverutils"
	"ocs-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(api fiber.Router)
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (c *subscriptionController) RegisterRoutes(api fiber.Router) {
	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/", c.Create)
	subscriptions.Get("/:id", c.Get)
	subscriptions.Patch("/:id", c.Patch)
	subscriptions.Post("/:id/transition", c.Transition)
	subscriptions.Delete("/:id", c.Delete)
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperror.Validation("%s", err.Error())
	}

	subscription, err := c.subscriptionService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", subscription))
}

func (c *subscriptionController) Get(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	subscription, err := c.subscriptionService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription retrieved", subscription))
}

func (c *subscriptionController) Patch(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	var ops []dto.PatchOperation
	if err := ctx.BodyParser(&ops); err != nil {
		return apperror.Validation("malformed patch body")
	}
	if len(ops) == 0 {
		return apperror.Validation("patch body must contain at least one operation")
	}

	subscription, err := c.subscriptionService.Patch(ctx.Context(), id, ops)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription updated", subscription))
}

func (c *subscriptionController) Transition(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	var req dto.TransitionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperror.Validation("%s", err.Error())
	}

	subscription, err := c.subscriptionService.Transition(ctx.Context(), id, entity.TransitionAction(req.Action))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription transitioned", subscription))
}

func (c *subscriptionController) Delete(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	if err := c.subscriptionService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription deleted", nil))
}
