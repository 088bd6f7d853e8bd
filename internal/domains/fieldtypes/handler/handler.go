package handler

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/response"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.FieldTypeService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.FieldTypeService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - fieldtype - %s"

	routepath = "/field-types"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	fieldTypes := r.Group(routepath)

	fieldTypes.Post("/", h.CreateFieldType)
	fieldTypes.Get("/", h.GetFieldTypes)
	fieldTypes.Get("/:id", h.GetFieldType)
	fieldTypes.Put("/:id", h.UpdateFieldType)
	fieldTypes.Delete("/:id", h.DeleteFieldType)
}

// CreateFieldType godoc
// @Summary Create new field type
// @Description Create new field type
// @Tags field-types
// @Accept json
// @Produce json
// @Param fieldType body dto.FieldTypeCreateRequest true "Create field type request"
// @Success 201 {object} response.Data[dto.FieldTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /field-types/ [post]
func (h *Handler) CreateFieldType(ctx *fiber.Ctx) error {
	var req dto.FieldTypeCreateRequest
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
		h.logger.Error(identifier, "error creating field type: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetFieldType godoc
// @Summary Get field type by ID
// @Description Get field type by ID
// @Tags field-types
// @Accept json
// @Produce json
// @Param id path string true "Field type ID"
// @Success 200 {object} response.Data[dto.FieldTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /field-types/{id} [get]
func (h *Handler) GetFieldType(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field type id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting field type: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetFieldTypes godoc
// @Summary Get field types
// @Description Get field types with pagination, optionally filtered by name
// @Tags field-types
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by name"
// @Success 200 {object} response.Data[dto.GetFieldTypesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /field-types/ [get]
func (h *Handler) GetFieldTypes(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting field types: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// UpdateFieldType godoc
// @Summary Update field type
// @Description Update field type by ID
// @Tags field-types
// @Accept json
// @Produce json
// @Param id path string true "Field type ID"
// @Param fieldType body dto.FieldTypeUpdateRequest true "Update field type request"
// @Success 200 {object} response.Data[dto.FieldTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /field-types/{id} [put]
func (h *Handler) UpdateFieldType(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field type id format")

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.FieldTypeUpdateRequest
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
		h.logger.Error(identifier, "error updating field type: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeleteFieldType godoc
// @Summary Delete field type
// @Description Delete field type by ID
// @Tags field-types
// @Accept json
// @Produce json
// @Param id path string true "Field type ID"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /field-types/{id} [delete]
func (h *Handler) DeleteFieldType(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field type id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting field type: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Field type %s deleted", id)

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
