package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/repository Querier

type Querier interface {
	CreateFieldType(ctx context.Context, db DBTX, arg CreateFieldTypeParams) (FieldType, error)
	GetFieldTypeById(ctx context.Context, db DBTX, id pgtype.UUID) (FieldType, error)
	GetFieldTypes(ctx context.Context, db DBTX, arg GetFieldTypesParams) ([]FieldType, error)
	CountFieldTypes(ctx context.Context, db DBTX, filter string) (int64, error)
	UpdateFieldType(ctx context.Context, db DBTX, arg UpdateFieldTypeParams) (FieldType, error)
	DeleteFieldType(ctx context.Context, db DBTX, id pgtype.UUID) error
}

var _ Querier = (*Queries)(nil)
