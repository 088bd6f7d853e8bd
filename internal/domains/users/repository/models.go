package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           pgtype.UUID
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Phone        pgtype.Text
	Address      pgtype.Text
	Role         string
	CreatedAt    pgtype.Timestamp
	UpdatedAt    pgtype.Timestamp
}

// GetUserWithMembershipRow joins a user with its optional membership. The
// membership columns are all nullable: MembershipID.Valid reports presence.
type GetUserWithMembershipRow struct {
	User               User
	MembershipID       pgtype.UUID
	MembershipType     pgtype.Text
	MembershipStatus   pgtype.Text
	DiscountPercentage pgtype.Numeric
	StartDate          pgtype.Date
	EndDate            pgtype.Date
}
