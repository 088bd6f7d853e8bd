package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, booking_id, amount, payment_method, payment_proof_url, status,
	confirmed_at, confirmed_by, notes, created_at`

func scanPayment(row interface{ Scan(dest ...any) error }) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.PaymentMethod,
		&p.PaymentProofURL,
		&p.Status,
		&p.ConfirmedAt,
		&p.ConfirmedBy,
		&p.Notes,
		&p.CreatedAt,
	)

	return p, err
}

const insertPayment = `
INSERT INTO payments (booking_id, amount, payment_method, payment_proof_url, status, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + paymentColumns + `
`

type InsertPaymentParams struct {
	BookingID       pgtype.UUID
	Amount          pgtype.Numeric
	PaymentMethod   string
	PaymentProofURL pgtype.Text
	Status          string
	Notes           pgtype.Text
}

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, insertPayment,
		arg.BookingID,
		arg.Amount,
		arg.PaymentMethod,
		arg.PaymentProofURL,
		arg.Status,
		arg.Notes,
	))
}

const getPaymentById = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`

func (q *Queries) GetPaymentById(ctx context.Context, db DBTX, id pgtype.UUID) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentById, id))
}

const getPayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE ($1::text = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type GetPaymentsParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetPayments(ctx context.Context, db DBTX, arg GetPaymentsParams) ([]Payment, error) {
	rows, err := db.Query(ctx, getPayments, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, p)
	}

	return items, rows.Err()
}

const countPayments = `
SELECT COUNT(*)
FROM payments
WHERE ($1::text = '' OR status = $1)
`

func (q *Queries) CountPayments(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countPayments, filter).Scan(&count)

	return count, err
}

const confirmPayment = `
UPDATE payments
SET status = $2, confirmed_at = $3, confirmed_by = $4
WHERE id = $1
RETURNING ` + paymentColumns + `
`

type ConfirmPaymentParams struct {
	ID          pgtype.UUID
	Status      string
	ConfirmedAt pgtype.Timestamp
	ConfirmedBy pgtype.UUID
}

func (q *Queries) ConfirmPayment(ctx context.Context, db DBTX, arg ConfirmPaymentParams) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, confirmPayment, arg.ID, arg.Status, arg.ConfirmedAt, arg.ConfirmedBy))
}

const deletePayment = `
DELETE FROM payments
WHERE id = $1
`

func (q *Queries) DeletePayment(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deletePayment, id)

	return err
}
