package handler

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/response"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.MembershipService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.MembershipService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - membership - %s"

	routepath = "/memberships"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	memberships := r.Group(routepath)

	memberships.Post("/", h.CreateMembership)
	memberships.Get("/", h.GetMemberships)
	memberships.Get("/:id", h.GetMembership)
	memberships.Put("/:id", h.UpdateMembership)
	memberships.Delete("/:id", h.DeleteMembership)

	r.Get("/users/:id/membership", h.GetUserMembership)
}

// CreateMembership godoc
// @Summary Create new membership
// @Description Create new membership for a user
// @Tags memberships
// @Accept json
// @Produce json
// @Param membership body dto.MembershipCreateRequest true "Create membership request"
// @Success 201 {object} response.Data[dto.MembershipResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /memberships/ [post]
func (h *Handler) CreateMembership(ctx *fiber.Ctx) error {
	var req dto.MembershipCreateRequest
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
		h.logger.Error(identifier, "error creating membership: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetMembership godoc
// @Summary Get membership by ID
// @Description Get membership by ID
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} response.Data[dto.MembershipResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /memberships/{id} [get]
func (h *Handler) GetMembership(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid membership id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting membership: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetUserMembership godoc
// @Summary Get user membership
// @Description Get the membership belonging to a user
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.MembershipResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/{id}/membership [get]
func (h *Handler) GetUserMembership(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid user id format")

		h.logger.Error(identifier, "get user membership - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetByUserID(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting user membership: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetMemberships godoc
// @Summary Get memberships
// @Description Get memberships with pagination, optionally filtered by type or status
// @Tags memberships
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by type or status"
// @Success 200 {object} response.Data[dto.GetMembershipsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /memberships/ [get]
func (h *Handler) GetMemberships(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting memberships: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// UpdateMembership godoc
// @Summary Update membership
// @Description Update membership by ID
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Param membership body dto.MembershipUpdateRequest true "Update membership request"
// @Success 200 {object} response.Data[dto.MembershipResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /memberships/{id} [put]
func (h *Handler) UpdateMembership(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid membership id format")

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.MembershipUpdateRequest
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
		h.logger.Error(identifier, "error updating membership: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeleteMembership godoc
// @Summary Delete membership
// @Description Delete membership by ID
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /memberships/{id} [delete]
func (h *Handler) DeleteMembership(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid membership id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting membership: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Membership %s deleted", id)

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
