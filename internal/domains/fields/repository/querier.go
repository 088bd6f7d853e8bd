package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository Querier

type Querier interface {
	CreateField(ctx context.Context, db DBTX, arg CreateFieldParams) (pgtype.UUID, error)
	GetFieldById(ctx context.Context, db DBTX, id pgtype.UUID) (Field, error)
	GetFieldByIdForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (Field, error)
	GetFields(ctx context.Context, db DBTX, arg GetFieldsParams) ([]Field, error)
	CountFields(ctx context.Context, db DBTX, filter string) (int64, error)
	GetAvailableFields(ctx context.Context, db DBTX, arg GetAvailableFieldsParams) ([]Field, error)
	UpdateField(ctx context.Context, db DBTX, arg UpdateFieldParams) (Field, error)
	DeleteField(ctx context.Context, db DBTX, id pgtype.UUID) error
}

var _ Querier = (*Queries)(nil)
