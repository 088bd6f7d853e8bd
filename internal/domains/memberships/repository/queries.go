package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const membershipColumns = `id, user_id, membership_type, start_date, end_date, discount_percentage, status, created_at`

func scanMembership(row interface{ Scan(dest ...any) error }) (Membership, error) {
	var m Membership
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.MembershipType,
		&m.StartDate,
		&m.EndDate,
		&m.DiscountPercentage,
		&m.Status,
		&m.CreatedAt,
	)

	return m, err
}

const createMembership = `
INSERT INTO memberships (user_id, membership_type, start_date, end_date, discount_percentage, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + membershipColumns + `
`

type CreateMembershipParams struct {
	UserID             pgtype.UUID
	MembershipType     string
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	DiscountPercentage pgtype.Numeric
	Status             string
}

func (q *Queries) CreateMembership(ctx context.Context, db DBTX, arg CreateMembershipParams) (Membership, error) {
	return scanMembership(db.QueryRow(ctx, createMembership,
		arg.UserID,
		arg.MembershipType,
		arg.StartDate,
		arg.EndDate,
		arg.DiscountPercentage,
		arg.Status,
	))
}

const getMembershipById = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE id = $1
`

func (q *Queries) GetMembershipById(ctx context.Context, db DBTX, id pgtype.UUID) (Membership, error) {
	return scanMembership(db.QueryRow(ctx, getMembershipById, id))
}

const getMembershipByUserId = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE user_id = $1
`

func (q *Queries) GetMembershipByUserId(ctx context.Context, db DBTX, userID pgtype.UUID) (Membership, error) {
	return scanMembership(db.QueryRow(ctx, getMembershipByUserId, userID))
}

const getMemberships = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE ($1::text = '' OR status = $1 OR membership_type = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type GetMembershipsParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetMemberships(ctx context.Context, db DBTX, arg GetMembershipsParams) ([]Membership, error) {
	rows, err := db.Query(ctx, getMemberships, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Membership

	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, m)
	}

	return items, rows.Err()
}

const countMemberships = `
SELECT COUNT(*)
FROM memberships
WHERE ($1::text = '' OR status = $1 OR membership_type = $1)
`

func (q *Queries) CountMemberships(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countMemberships, filter).Scan(&count)

	return count, err
}

const updateMembership = `
UPDATE memberships
SET membership_type = $2,
	start_date = $3,
	end_date = $4,
	discount_percentage = $5,
	status = $6
WHERE id = $1
RETURNING ` + membershipColumns + `
`

type UpdateMembershipParams struct {
	ID                 pgtype.UUID
	MembershipType     string
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	DiscountPercentage pgtype.Numeric
	Status             string
}

func (q *Queries) UpdateMembership(ctx context.Context, db DBTX, arg UpdateMembershipParams) (Membership, error) {
	return scanMembership(db.QueryRow(ctx, updateMembership,
		arg.ID,
		arg.MembershipType,
		arg.StartDate,
		arg.EndDate,
		arg.DiscountPercentage,
		arg.Status,
	))
}

const deleteMembership = `
DELETE FROM memberships
WHERE id = $1
`

func (q *Queries) DeleteMembership(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteMembership, id)

	return err
}

const expireMemberships = `
UPDATE memberships
SET status = $2
WHERE status = $3
  AND end_date < $1
`

type ExpireMembershipsParams struct {
	Now           pgtype.Date
	ExpiredStatus string
	ActiveStatus  string
}

// ExpireMemberships flips active memberships whose end date has passed to
// expired. Runs from the cron scheduler.
func (q *Queries) ExpireMemberships(ctx context.Context, db DBTX, arg ExpireMembershipsParams) (int64, error) {
	tag, err := db.Exec(ctx, expireMemberships, arg.Now, arg.ExpiredStatus, arg.ActiveStatus)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
