// FILE: internal/controller/subscriber_controller.go
package controller

import (
	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/serverutils"
	"ocs-provisioning-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type ISubscriberController interface {
	RegisterRoutes(api fiber.Router)
}

type subscriberController struct {
	subscriberService   service.ISubscriberService
	subscriptionService service.ISubscriptionService
}

func NewSubscriberController(subscriberService service.ISubscriberService, subscriptionService service.ISubscriptionService) ISubscriberController {
	return &subscriberController{
		subscriberService:   subscriberService,
		subscriptionService: subscriptionService,
	}
}

func (c *subscriberController) RegisterRoutes(api fiber.Router) {
	subscribers := api.Group("/subscribers")
	subscribers.Post("/", c.Create)
	subscribers.Get("/:id", c.Get)
	subscribers.Patch("/:id", c.Patch)
	subscribers.Post("/:id/transition", c.Transition)
	subscribers.Delete("/:id", c.Terminate)
	subscribers.Get("/:id/subscriptions", c.ListSubscriptions)
}

func (c *subscriberController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperror.Validation("%s", err.Error())
	}

	subscriber, err := c.subscriberService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscriber created", subscriber))
}

func (c *subscriberController) Get(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	subscriber, err := c.subscriberService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriber retrieved", subscriber))
}

func (c *subscriberController) Patch(ctx *fiber.Ctx) error {
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

	subscriber, err := c.subscriberService.Patch(ctx.Context(), id, ops)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriber updated", subscriber))
}

func (c *subscriberController) Transition(ctx *fiber.Ctx) error {
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

	subscriber, err := c.subscriberService.Transition(ctx.Context(), id, entity.TransitionAction(req.Action))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriber transitioned", subscriber))
}

func (c *subscriberController) Terminate(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	if err := c.subscriberService.Terminate(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriber terminated", nil))
}

func (c *subscriberController) ListSubscriptions(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	subscriptions, err := c.subscriptionService.ListBySubscriber(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriptions retrieved", subscriptions))
}

func parseEntityId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("id must be a valid UUID")
	}
	return id, nil
}
