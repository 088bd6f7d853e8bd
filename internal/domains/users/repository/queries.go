package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, username, email, password_hash, full_name, phone, address, role, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

const createUser = `
INSERT INTO users (username, email, password_hash, full_name, phone, address, role)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns + `
`

type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Phone        pgtype.Text
	Address      pgtype.Text
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	return scanUser(db.QueryRow(ctx, createUser,
		arg.Username,
		arg.Email,
		arg.PasswordHash,
		arg.FullName,
		arg.Phone,
		arg.Address,
		arg.Role,
	))
}

const getUserById = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

func (q *Queries) GetUserById(ctx context.Context, db DBTX, id pgtype.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserById, id))
}

const getUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const getUserWithMembership = `
SELECT u.id, u.username, u.email, u.password_hash, u.full_name, u.phone, u.address, u.role,
	u.created_at, u.updated_at,
	m.id, m.membership_type, m.status, m.discount_percentage, m.start_date, m.end_date
FROM users u
LEFT JOIN memberships m ON m.user_id = u.id
WHERE u.id = $1
`

func (q *Queries) GetUserWithMembership(ctx context.Context, db DBTX, id pgtype.UUID) (GetUserWithMembershipRow, error) {
	var r GetUserWithMembershipRow
	err := db.QueryRow(ctx, getUserWithMembership, id).Scan(
		&r.User.ID,
		&r.User.Username,
		&r.User.Email,
		&r.User.PasswordHash,
		&r.User.FullName,
		&r.User.Phone,
		&r.User.Address,
		&r.User.Role,
		&r.User.CreatedAt,
		&r.User.UpdatedAt,
		&r.MembershipID,
		&r.MembershipType,
		&r.MembershipStatus,
		&r.DiscountPercentage,
		&r.StartDate,
		&r.EndDate,
	)

	return r, err
}

const getUsers = `
SELECT ` + userColumns + `
FROM users
WHERE ($1::text = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type GetUsersParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetUsers(ctx context.Context, db DBTX, arg GetUsersParams) ([]User, error) {
	rows, err := db.Query(ctx, getUsers, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, u)
	}

	return items, rows.Err()
}

const countUsers = `
SELECT COUNT(*)
FROM users
WHERE ($1::text = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
`

func (q *Queries) CountUsers(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countUsers, filter).Scan(&count)

	return count, err
}
