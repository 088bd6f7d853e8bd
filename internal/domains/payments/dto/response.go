package dto

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

type PaymentResponse struct {
	ID              string `json:"id"`
	BookingID       string `json:"booking_id"`
	Amount          int64  `json:"amount"`
	PaymentMethod   string `json:"payment_method"`
	PaymentProofURL string `json:"payment_proof_url"`
	Status          string `json:"status"`
	ConfirmedAt     string `json:"confirmed_at,omitempty"`
	ConfirmedBy     string `json:"confirmed_by,omitempty"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"created_at"`
}

func (p PaymentResponse) FromModel(model repository.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:              model.ID.String(),
		BookingID:       model.BookingID.String(),
		Amount:          helper.Int64FromPg(model.Amount),
		PaymentMethod:   model.PaymentMethod,
		PaymentProofURL: model.PaymentProofURL.String,
		Status:          model.Status,
		Notes:           model.Notes.String,
		CreatedAt:       model.CreatedAt.Time.Format(constant.FullDateFormat),
	}

	if model.ConfirmedAt.Valid {
		res.ConfirmedAt = model.ConfirmedAt.Time.Format(constant.FullDateFormat)
	}

	if model.ConfirmedBy.Valid {
		res.ConfirmedBy = model.ConfirmedBy.String()
	}

	return res
}

type GetPaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (p *GetPaymentsResponse) FromModel(payments []repository.Payment, totalItems, limit int) {
	p.TotalItems = totalItems
	p.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(payments) == 0 {
		p.Payments = []PaymentResponse{}

		return
	}

	p.Payments = make([]PaymentResponse, len(payments))

	for i, payment := range payments {
		p.Payments[i] = PaymentResponse{}.FromModel(payment)
	}
}
