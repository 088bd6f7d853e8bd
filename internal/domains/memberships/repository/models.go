package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Membership struct {
	ID                 pgtype.UUID
	UserID             pgtype.UUID
	MembershipType     string
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	DiscountPercentage pgtype.Numeric
	Status             string
	CreatedAt          pgtype.Timestamp
}
