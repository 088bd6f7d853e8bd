package handler

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/response"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Post("/", h.CreateBooking)
	bookings.Get("/", h.GetAllBookings)
	bookings.Get("/:id", h.GetBookingByID)
	bookings.Post("/slots", h.GetBookedSlots)
	bookings.Put("/:id/status", h.UpdateBookingStatus)
	bookings.Delete("/:id", h.DeleteBooking)

	r.Get("/users/:id/bookings", h.GetUserBookings)
}

// CreateBooking godoc
// @Summary Create new booking
// @Description Book a field for a time slot on a date
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/ [post]
func (h *Handler) CreateBooking(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
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

	res, err := h.service.CreateBooking(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error creating booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetBookingByID godoc
// @Summary Get booking by ID
// @Description Get booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
func (h *Handler) GetBookingByID(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetBookingByID(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting booking by id: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAllBookings godoc
// @Summary Get all bookings
// @Description Get all bookings with pagination, optionally filtered by status
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/ [get]
func (h *Handler) GetAllBookings(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAllBookings(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting all bookings: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetUserBookings godoc
// @Summary Get user bookings
// @Description Get bookings for a user
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/{id}/bookings [get]
func (h *Handler) GetUserBookings(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid user id format")

		h.logger.Error(identifier, "get user bookings - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetUserBookings(ctx.Context(), id, req)
	if err != nil {
		h.logger.Error(identifier, "error getting user bookings: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetBookedSlots godoc
// @Summary Get booked slots
// @Description Get booked slots for a specific date and field
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.GetBookedSlotsRequest true "Get booked slots request"
// @Success 200 {object} response.Data[dto.GetBookedSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/slots [post]
func (h *Handler) GetBookedSlots(ctx *fiber.Ctx) error {
	var req dto.GetBookedSlotsRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "get booked slots - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.GetBookedSlots(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting booked slots: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// UpdateBookingStatus godoc
// @Summary Update booking status
// @Description Move a booking to a new status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update booking status request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id}/status [put]
func (h *Handler) UpdateBookingStatus(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "update status - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateBookingStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	req.BookingID = id

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "update status - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.UpdateBookingStatus(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error updating booking status: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeleteBooking godoc
// @Summary Delete booking
// @Description Delete booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [delete]
func (h *Handler) DeleteBooking(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.DeleteBooking(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Booking %s deleted", id)

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
