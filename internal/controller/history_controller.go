// FILE: internal/controller/history_controller.go
package controller

import (
	"strconv"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/pkg/serverutils"
	"ocs-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(api fiber.Router)
}

type historyController struct {
	historyService service.IHistoryService
}

func NewHistoryController(historyService service.IHistoryService) IHistoryController {
	return &historyController{
		historyService: historyService,
	}
}

func (c *historyController) RegisterRoutes(api fiber.Router) {
	history := api.Group("/accountHistory")
	history.Post("/", c.Create)
	history.Get("/", c.List)
	history.Get("/:interactionId", c.Get)
	history.Patch("/:interactionId", c.Patch)
}

func (c *historyController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperror.Validation("%s", err.Error())
	}

	record, err := c.historyService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Account history created", record))
}

func (c *historyController) Get(ctx *fiber.Ctx) error {
	record, err := c.historyService.Get(ctx.Context(), ctx.Params("interactionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account history retrieved", record))
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	entityId := ctx.Query("entityId")
	if entityId == "" {
		return apperror.Validation("entityId query parameter is required")
	}

	limit, err := queryInt(ctx, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		return err
	}

	records, err := c.historyService.List(ctx.Context(), entityId, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account history retrieved", records))
}

func (c *historyController) Patch(ctx *fiber.Ctx) error {
	var ops []dto.PatchOperation
	if err := ctx.BodyParser(&ops); err != nil {
		return apperror.Validation("malformed patch body")
	}
	if len(ops) == 0 {
		return apperror.Validation("patch body must contain at least one operation")
	}

	record, err := c.historyService.Patch(ctx.Context(), ctx.Params("interactionId"), ops)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account history updated", record))
}

func queryInt(ctx *fiber.Ctx, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("%s must be an integer", name)
	}
	return value, nil
}
