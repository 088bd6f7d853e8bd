package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const fieldColumns = `id, field_type_id, name, description, price_per_hour, status, image_url, created_at, updated_at`

func scanField(row interface{ Scan(dest ...any) error }) (Field, error) {
	var f Field
	err := row.Scan(
		&f.ID,
		&f.FieldTypeID,
		&f.Name,
		&f.Description,
		&f.PricePerHour,
		&f.Status,
		&f.ImageURL,
		&f.CreatedAt,
		&f.UpdatedAt,
	)

	return f, err
}

const createField = `
INSERT INTO fields (field_type_id, name, description, price_per_hour, status, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateFieldParams struct {
	FieldTypeID  pgtype.UUID
	Name         string
	Description  pgtype.Text
	PricePerHour pgtype.Numeric
	Status       string
	ImageURL     pgtype.Text
}

func (q *Queries) CreateField(ctx context.Context, db DBTX, arg CreateFieldParams) (pgtype.UUID, error) {
	var id pgtype.UUID
	err := db.QueryRow(ctx, createField,
		arg.FieldTypeID,
		arg.Name,
		arg.Description,
		arg.PricePerHour,
		arg.Status,
		arg.ImageURL,
	).Scan(&id)

	return id, err
}

const getFieldById = `
SELECT ` + fieldColumns + `
FROM fields
WHERE id = $1
`

func (q *Queries) GetFieldById(ctx context.Context, db DBTX, id pgtype.UUID) (Field, error) {
	return scanField(db.QueryRow(ctx, getFieldById, id))
}

const getFieldByIdForUpdate = `
SELECT ` + fieldColumns + `
FROM fields
WHERE id = $1
FOR UPDATE
`

// GetFieldByIdForUpdate locks the field row for the rest of the transaction.
// Concurrent admissions for the same field serialize on this lock, so the
// conflict check and the insert behave as one atomic step.
func (q *Queries) GetFieldByIdForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (Field, error) {
	return scanField(db.QueryRow(ctx, getFieldByIdForUpdate, id))
}

const getFields = `
SELECT ` + fieldColumns + `
FROM fields
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%')
ORDER BY name
LIMIT $2 OFFSET $3
`

type GetFieldsParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetFields(ctx context.Context, db DBTX, arg GetFieldsParams) ([]Field, error) {
	rows, err := db.Query(ctx, getFields, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Field

	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, f)
	}

	return items, rows.Err()
}

const countFields = `
SELECT COUNT(*)
FROM fields
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%')
`

func (q *Queries) CountFields(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countFields, filter).Scan(&count)

	return count, err
}

const getAvailableFields = `
SELECT ` + fieldColumns + `
FROM fields f
WHERE f.status = $1
  AND NOT EXISTS (
	SELECT 1
	FROM bookings b
	WHERE b.field_id = f.id
	  AND b.booking_date = $2
	  AND b.status = ANY($3::text[])
	  AND b.start_time < $5
	  AND b.end_time > $4
  )
ORDER BY f.name
`

type GetAvailableFieldsParams struct {
	Status      string
	BookingDate pgtype.Date
	Statuses    []string
	StartTime   pgtype.Time
	EndTime     pgtype.Time
}

// GetAvailableFields returns available fields with no locking booking that
// overlaps the requested window on the given date.
func (q *Queries) GetAvailableFields(ctx context.Context, db DBTX, arg GetAvailableFieldsParams) ([]Field, error) {
	rows, err := db.Query(ctx, getAvailableFields,
		arg.Status,
		arg.BookingDate,
		arg.Statuses,
		arg.StartTime,
		arg.EndTime,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Field

	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, f)
	}

	return items, rows.Err()
}

const updateField = `
UPDATE fields
SET field_type_id = $2,
	name = $3,
	description = $4,
	price_per_hour = $5,
	status = $6,
	image_url = $7,
	updated_at = NOW()
WHERE id = $1
RETURNING ` + fieldColumns + `
`

type UpdateFieldParams struct {
	ID           pgtype.UUID
	FieldTypeID  pgtype.UUID
	Name         string
	Description  pgtype.Text
	PricePerHour pgtype.Numeric
	Status       string
	ImageURL     pgtype.Text
}

func (q *Queries) UpdateField(ctx context.Context, db DBTX, arg UpdateFieldParams) (Field, error) {
	return scanField(db.QueryRow(ctx, updateField,
		arg.ID,
		arg.FieldTypeID,
		arg.Name,
		arg.Description,
		arg.PricePerHour,
		arg.Status,
		arg.ImageURL,
	))
}

const deleteField = `
DELETE FROM fields
WHERE id = $1
`

func (q *Queries) DeleteField(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteField, id)

	return err
}
