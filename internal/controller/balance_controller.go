// FILE: internal/controller/balance_controller.go
package controller

import (
	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/serverutils"
	"ocs-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBalanceController interface {
	RegisterRoutes(api fiber.Router)
}

type balanceController struct {
	balanceService service.IBalanceService
}

func NewBalanceController(balanceService service.IBalanceService) IBalanceController {
	return &balanceController{
		balanceService: balanceService,
	}
}

func (c *balanceController) RegisterRoutes(api fiber.Router) {
	balances := api.Group("/subscriptions/:id/balances")
	balances.Post("/", c.Create)
	balances.Get("/", c.List)
	balances.Delete("/", c.DeleteAll)
}

func (c *balanceController) Create(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateBalanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperror.Validation("%s", err.Error())
	}

	balance, err := c.balanceService.Create(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Balance created", balance))
}

func (c *balanceController) List(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	balances, err := c.balanceService.List(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Balances retrieved", balances))
}

func (c *balanceController) DeleteAll(ctx *fiber.Ctx) error {
	id, err := parseEntityId(ctx)
	if err != nil {
		return err
	}
	if err := c.balanceService.DeleteAll(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Balances deleted", nil))
}
