package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository Querier

type Querier interface {
	CreateMembership(ctx context.Context, db DBTX, arg CreateMembershipParams) (Membership, error)
	GetMembershipById(ctx context.Context, db DBTX, id pgtype.UUID) (Membership, error)
	GetMembershipByUserId(ctx context.Context, db DBTX, userID pgtype.UUID) (Membership, error)
	GetMemberships(ctx context.Context, db DBTX, arg GetMembershipsParams) ([]Membership, error)
	CountMemberships(ctx context.Context, db DBTX, filter string) (int64, error)
	UpdateMembership(ctx context.Context, db DBTX, arg UpdateMembershipParams) (Membership, error)
	DeleteMembership(ctx context.Context, db DBTX, id pgtype.UUID) error
	ExpireMemberships(ctx context.Context, db DBTX, arg ExpireMembershipsParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
