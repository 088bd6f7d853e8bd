package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const fieldTypeColumns = `id, name, description, created_at`

func scanFieldType(row interface{ Scan(dest ...any) error }) (FieldType, error) {
	var t FieldType
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt)

	return t, err
}

const createFieldType = `
INSERT INTO field_types (name, description)
VALUES ($1, $2)
RETURNING ` + fieldTypeColumns + `
`

type CreateFieldTypeParams struct {
	Name        string
	Description pgtype.Text
}

func (q *Queries) CreateFieldType(ctx context.Context, db DBTX, arg CreateFieldTypeParams) (FieldType, error) {
	return scanFieldType(db.QueryRow(ctx, createFieldType, arg.Name, arg.Description))
}

const getFieldTypeById = `
SELECT ` + fieldTypeColumns + `
FROM field_types
WHERE id = $1
`

func (q *Queries) GetFieldTypeById(ctx context.Context, db DBTX, id pgtype.UUID) (FieldType, error) {
	return scanFieldType(db.QueryRow(ctx, getFieldTypeById, id))
}

const getFieldTypes = `
SELECT ` + fieldTypeColumns + `
FROM field_types
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%')
ORDER BY name
LIMIT $2 OFFSET $3
`

type GetFieldTypesParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetFieldTypes(ctx context.Context, db DBTX, arg GetFieldTypesParams) ([]FieldType, error) {
	rows, err := db.Query(ctx, getFieldTypes, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FieldType

	for rows.Next() {
		t, err := scanFieldType(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, t)
	}

	return items, rows.Err()
}

const countFieldTypes = `
SELECT COUNT(*)
FROM field_types
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%')
`

func (q *Queries) CountFieldTypes(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countFieldTypes, filter).Scan(&count)

	return count, err
}

const updateFieldType = `
UPDATE field_types
SET name = $2, description = $3
WHERE id = $1
RETURNING ` + fieldTypeColumns + `
`

type UpdateFieldTypeParams struct {
	ID          pgtype.UUID
	Name        string
	Description pgtype.Text
}

func (q *Queries) UpdateFieldType(ctx context.Context, db DBTX, arg UpdateFieldTypeParams) (FieldType, error) {
	return scanFieldType(db.QueryRow(ctx, updateFieldType, arg.ID, arg.Name, arg.Description))
}

const deleteFieldType = `
DELETE FROM field_types
WHERE id = $1
`

func (q *Queries) DeleteFieldType(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteFieldType, id)

	return err
}
