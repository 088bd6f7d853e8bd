package dto

import "github.com/google/uuid"

type PaymentCreateRequest struct {
	BookingID       uuid.UUID `json:"booking_id" validate:"required,uuid"`
	PaymentMethod   string    `json:"payment_method" validate:"required,oneof=cash transfer ewallet"`
	PaymentProofURL string    `json:"payment_proof_url" validate:"omitempty,url"`
	Notes           string    `json:"notes" validate:"omitempty,max=500"`
}

type PaymentConfirmRequest struct {
	PaymentID   string `json:"payment_id" validate:"required,uuid" swaggerignore:"true"`
	ConfirmedBy string `json:"confirmed_by" validate:"required,uuid"`
}
