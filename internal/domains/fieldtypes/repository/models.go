package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type FieldType struct {
	ID          pgtype.UUID
	Name        string
	Description pgtype.Text
	CreatedAt   pgtype.Timestamp
}
