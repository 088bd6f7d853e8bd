package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository Querier

type Querier interface {
	CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error)
	GetUserById(ctx context.Context, db DBTX, id pgtype.UUID) (User, error)
	GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error)
	GetUserWithMembership(ctx context.Context, db DBTX, id pgtype.UUID) (GetUserWithMembershipRow, error)
	GetUsers(ctx context.Context, db DBTX, arg GetUsersParams) ([]User, error)
	CountUsers(ctx context.Context, db DBTX, filter string) (int64, error)
}

var _ Querier = (*Queries)(nil)
