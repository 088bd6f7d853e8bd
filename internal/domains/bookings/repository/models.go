package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID             pgtype.UUID
	UserID         pgtype.UUID
	FieldID        pgtype.UUID
	BookingDate    pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	DurationHours  int32
	TotalPrice     pgtype.Numeric
	DiscountAmount pgtype.Numeric
	FinalPrice     pgtype.Numeric
	Status         string
	Notes          pgtype.Text
	CreatedAt      pgtype.Timestamp
	UpdatedAt      pgtype.Timestamp
}

type GetBookedTimeSlotsRow struct {
	StartTime pgtype.Time
	EndTime   pgtype.Time
}
