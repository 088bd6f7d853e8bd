package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Field struct {
	ID           pgtype.UUID
	FieldTypeID  pgtype.UUID
	Name         string
	Description  pgtype.Text
	PricePerHour pgtype.Numeric
	Status       string
	ImageURL     pgtype.Text
	CreatedAt    pgtype.Timestamp
	UpdatedAt    pgtype.Timestamp
}
