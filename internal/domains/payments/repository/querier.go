package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/repository Querier

type Querier interface {
	InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) (Payment, error)
	GetPaymentById(ctx context.Context, db DBTX, id pgtype.UUID) (Payment, error)
	GetPayments(ctx context.Context, db DBTX, arg GetPaymentsParams) ([]Payment, error)
	CountPayments(ctx context.Context, db DBTX, filter string) (int64, error)
	ConfirmPayment(ctx context.Context, db DBTX, arg ConfirmPaymentParams) (Payment, error)
	DeletePayment(ctx context.Context, db DBTX, id pgtype.UUID) error
}

var _ Querier = (*Queries)(nil)
