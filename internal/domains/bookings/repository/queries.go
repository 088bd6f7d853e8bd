package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, user_id, field_id, booking_date, start_time, end_time, duration_hours,
	total_price, discount_amount, final_price, status, notes, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FieldID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.DurationHours,
		&b.TotalPrice,
		&b.DiscountAmount,
		&b.FinalPrice,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	return b, err
}

const getConflictingBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE field_id = $1
  AND booking_date = $2
  AND status = ANY($3::text[])
  AND start_time < $5
  AND end_time > $4
ORDER BY start_time
`

type GetConflictingBookingsParams struct {
	FieldID     pgtype.UUID
	BookingDate pgtype.Date
	Statuses    []string
	StartTime   pgtype.Time
	EndTime     pgtype.Time
}

// GetConflictingBookings returns every booking in a locking status on the
// given field and date whose half-open interval overlaps the requested one.
func (q *Queries) GetConflictingBookings(ctx context.Context, db DBTX, arg GetConflictingBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, getConflictingBookings,
		arg.FieldID,
		arg.BookingDate,
		arg.Statuses,
		arg.StartTime,
		arg.EndTime,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, b)
	}

	return items, rows.Err()
}

const insertBooking = `
INSERT INTO bookings (
	user_id, field_id, booking_date, start_time, end_time, duration_hours,
	total_price, discount_amount, final_price, status, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + bookingColumns + `
`

type InsertBookingParams struct {
	UserID         pgtype.UUID
	FieldID        pgtype.UUID
	BookingDate    pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	DurationHours  int32
	TotalPrice     pgtype.Numeric
	DiscountAmount pgtype.Numeric
	FinalPrice     pgtype.Numeric
	Status         string
	Notes          pgtype.Text
	CreatedAt      pgtype.Timestamp
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (Booking, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.UserID,
		arg.FieldID,
		arg.BookingDate,
		arg.StartTime,
		arg.EndTime,
		arg.DurationHours,
		arg.TotalPrice,
		arg.DiscountAmount,
		arg.FinalPrice,
		arg.Status,
		arg.Notes,
		arg.CreatedAt,
	)

	return scanBooking(row)
}

const getBookingById = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingById(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingById, id))
}

const getBookingForUpdate = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

// GetBookingForUpdate locks the booking row for the rest of the transaction,
// so concurrent status changes wait behind the caller.
func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const deleteBooking = `
DELETE FROM bookings
WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteBooking, id)

	return err
}

const getBookingsByUserId = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = $1
  AND ($2::text = '' OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type GetBookingsByUserIdParams struct {
	UserID pgtype.UUID
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetBookingsByUserId(ctx context.Context, db DBTX, arg GetBookingsByUserIdParams) ([]Booking, error) {
	rows, err := db.Query(ctx, getBookingsByUserId, arg.UserID, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, b)
	}

	return items, rows.Err()
}

const countBookingsByUserId = `
SELECT COUNT(*)
FROM bookings
WHERE user_id = $1
  AND ($2::text = '' OR status = $2)
`

type CountBookingsByUserIdParams struct {
	UserID pgtype.UUID
	Filter string
}

func (q *Queries) CountBookingsByUserId(ctx context.Context, db DBTX, arg CountBookingsByUserIdParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countBookingsByUserId, arg.UserID, arg.Filter).Scan(&count)

	return count, err
}

const getAllBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE ($1::text = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type GetAllBookingsParams struct {
	Filter string
	Limit  int32
	Offset int32
}

func (q *Queries) GetAllBookings(ctx context.Context, db DBTX, arg GetAllBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, getAllBookings, arg.Filter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, b)
	}

	return items, rows.Err()
}

const countAllBookings = `
SELECT COUNT(*)
FROM bookings
WHERE ($1::text = '' OR status = $1)
`

func (q *Queries) CountAllBookings(ctx context.Context, db DBTX, filter string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countAllBookings, filter).Scan(&count)

	return count, err
}

const getBookedTimeSlots = `
SELECT start_time, end_time
FROM bookings
WHERE field_id = $1
  AND booking_date = $2
  AND status = ANY($3::text[])
ORDER BY start_time
`

type GetBookedTimeSlotsParams struct {
	FieldID     pgtype.UUID
	BookingDate pgtype.Date
	Statuses    []string
}

func (q *Queries) GetBookedTimeSlots(ctx context.Context, db DBTX, arg GetBookedTimeSlotsParams) ([]GetBookedTimeSlotsRow, error) {
	rows, err := db.Query(ctx, getBookedTimeSlots, arg.FieldID, arg.BookingDate, arg.Statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetBookedTimeSlotsRow

	for rows.Next() {
		var slot GetBookedTimeSlotsRow
		if err := rows.Scan(&slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}

		items = append(items, slot)
	}

	return items, rows.Err()
}

const updateBookingStatus = `
UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1
RETURNING ` + bookingColumns + `
`

type UpdateBookingStatusParams struct {
	ID        pgtype.UUID
	Status    string
	UpdatedAt pgtype.Timestamp
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt))
}

const completeFinishedBookings = `
UPDATE bookings
SET status = $3, updated_at = $2
WHERE status = $4
  AND (booking_date + end_time) <= $1
`

type CompleteFinishedBookingsParams struct {
	Now       pgtype.Timestamp
	UpdatedAt pgtype.Timestamp
	NewStatus string
	OldStatus string
}

// CompleteFinishedBookings moves approved bookings whose end time has passed
// to completed. Runs from the cron scheduler.
func (q *Queries) CompleteFinishedBookings(ctx context.Context, db DBTX, arg CompleteFinishedBookingsParams) (int64, error) {
	tag, err := db.Exec(ctx, completeFinishedBookings, arg.Now, arg.UpdatedAt, arg.NewStatus, arg.OldStatus)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
