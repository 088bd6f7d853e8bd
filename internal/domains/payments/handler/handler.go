package handler

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/response"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - payment - %s"

	routepath = "/payments"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payments := r.Group(routepath)

	payments.Post("/", h.CreatePayment)
	payments.Get("/", h.GetPayments)
	payments.Get("/:id", h.GetPayment)
	payments.Put("/:id/confirm", h.ConfirmPayment)
	payments.Delete("/:id", h.DeletePayment)
}

// CreatePayment godoc
// @Summary Create new payment
// @Description Record a payment for a pending booking
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.PaymentCreateRequest true "Create payment request"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/ [post]
func (h *Handler) CreatePayment(ctx *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
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
		h.logger.Error(identifier, "error creating payment: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetPayment godoc
// @Summary Get payment by ID
// @Description Get payment by ID
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id} [get]
func (h *Handler) GetPayment(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid payment id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting payment: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetPayments godoc
// @Summary Get payments
// @Description Get payments with pagination, optionally filtered by status or method
// @Tags payments
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status or method"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/ [get]
func (h *Handler) GetPayments(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting payments: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// ConfirmPayment godoc
// @Summary Confirm payment
// @Description Confirm a payment and approve its booking
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.PaymentConfirmRequest true "Confirm payment request"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id}/confirm [put]
func (h *Handler) ConfirmPayment(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid payment id format")

		h.logger.Error(identifier, "confirm - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.PaymentConfirmRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	req.PaymentID = id

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "confirm - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.Confirm(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error confirming payment: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeletePayment godoc
// @Summary Delete payment
// @Description Delete payment by ID
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id} [delete]
func (h *Handler) DeletePayment(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid payment id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting payment: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Payment %s deleted", id)

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
