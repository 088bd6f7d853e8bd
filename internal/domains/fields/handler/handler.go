package handler

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/response"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.FieldService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.FieldService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - field - %s"

	routepath = "/fields"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	fields := r.Group(routepath)

	fields.Post("/", h.CreateField)
	fields.Get("/", h.GetFields)
	// registered before /:id so "available" is not read as an id
	fields.Get("/available", h.GetAvailableFields)
	fields.Get("/:id", h.GetField)
	fields.Put("/:id", h.UpdateField)
	fields.Delete("/:id", h.DeleteField)
}

// CreateField godoc
// @Summary Create new field
// @Description Create new field
// @Tags fields
// @Accept json
// @Produce json
// @Param field body dto.FieldCreateRequest true "Create field request"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/ [post]
func (h *Handler) CreateField(ctx *fiber.Ctx) error {
	var req dto.FieldCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "create - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.Create(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error creating field: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetField godoc
// @Summary Get field by ID
// @Description Get field by ID
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[dto.FieldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [get]
func (h *Handler) GetField(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting field: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetFields godoc
// @Summary Get fields
// @Description Get fields with pagination, optionally filtered by name
// @Tags fields
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by name"
// @Success 200 {object} response.Data[dto.GetFieldsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/ [get]
func (h *Handler) GetFields(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting fields: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAvailableFields godoc
// @Summary Get available fields
// @Description Get fields free for the requested window on a date
// @Tags fields
// @Accept json
// @Produce json
// @Param request query dto.GetAvailableFieldsRequest true "Availability window"
// @Success 200 {object} response.Data[dto.GetAvailableFieldsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/available [get]
func (h *Handler) GetAvailableFields(ctx *fiber.Ctx) error {
	var req dto.GetAvailableFieldsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "get available - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.GetAvailable(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting available fields: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// UpdateField godoc
// @Summary Update field
// @Description Update field by ID
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param field body dto.FieldUpdateRequest true "Update field request"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [put]
func (h *Handler) UpdateField(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.FieldUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "update - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.Update(ctx.Context(), id, req)
	if err != nil {
		h.logger.Error(identifier, "error updating field: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeleteField godoc
// @Summary Delete field
// @Description Delete field by ID
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [delete]
func (h *Handler) DeleteField(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting field: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Field %s deleted", id)

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
