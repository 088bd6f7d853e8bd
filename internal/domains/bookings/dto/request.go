package dto

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required,uuid"`
	FieldID   uuid.UUID `json:"field_id" validate:"required,uuid"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime string    `json:"start_time" validate:"required,datetime=15:04" example:"15:04"`
	EndTime   string    `json:"end_time" validate:"required,datetime=15:04" example:"15:04"`
	Notes     string    `json:"notes" validate:"omitempty,max=500"`
}

type GetBookedSlotsRequest struct {
	FieldID string `json:"field_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid" swaggerignore:"true"`
	Status    string `json:"status" validate:"required,oneof=pending approved rejected completed cancelled"`
}
