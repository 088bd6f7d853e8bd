package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Payment struct {
	ID              pgtype.UUID
	BookingID       pgtype.UUID
	Amount          pgtype.Numeric
	PaymentMethod   string
	PaymentProofURL pgtype.Text
	Status          string
	ConfirmedAt     pgtype.Timestamp
	ConfirmedBy     pgtype.UUID
	Notes           pgtype.Text
	CreatedAt       pgtype.Timestamp
}
