package repository

import (
	"context"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func conflictRows(fieldID, userID string, date time.Time) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "user_id", "field_id", "booking_date", "start_time", "end_time", "duration_hours",
		"total_price", "discount_amount", "final_price", "status", "notes", "created_at", "updated_at",
	})

	rows.AddRow(
		helper.PgUUID("f8b7a3a2-1f44-4e9b-9a57-0d3f9a1c2b10"),
		helper.PgUUID(userID),
		helper.PgUUID(fieldID),
		helper.PgDate(date),
		helper.PgTimeFromMinutes(9*60),
		helper.PgTimeFromMinutes(11*60),
		int32(2),
		helper.PgInt64(100000),
		helper.PgInt64(0),
		helper.PgInt64(100000),
		constant.BookingStatusApproved,
		helper.PgString(""),
		helper.PgTimestamp(date),
		helper.PgTimestamp(date),
	)

	rows.AddRow(
		helper.PgUUID("0c1d2e3f-4a5b-4c6d-8e7f-a1b2c3d4e5f6"),
		helper.PgUUID(userID),
		helper.PgUUID(fieldID),
		helper.PgDate(date),
		helper.PgTimeFromMinutes(11*60),
		helper.PgTimeFromMinutes(12*60),
		int32(1),
		helper.PgInt64(50000),
		helper.PgInt64(0),
		helper.PgInt64(50000),
		constant.BookingStatusPending,
		helper.PgString(""),
		helper.PgTimestamp(date),
		helper.PgTimestamp(date),
	)

	return rows
}

// Rereading a conflict window without an intervening write returns the same
// bookings both times, and issues nothing but SELECTs.
func TestQueries_GetConflictingBookings_RepeatedReadIsStable(t *testing.T) {
	ctx := context.Background()

	mockPgx, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPgx.Close()

	fieldID := uuid.NewString()
	userID := uuid.NewString()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	arg := GetConflictingBookingsParams{
		FieldID:     helper.PgUUID(fieldID),
		BookingDate: helper.PgDate(date),
		Statuses:    constant.LockingBookingStatuses,
		StartTime:   helper.PgTimeFromMinutes(10 * 60),
		EndTime:     helper.PgTimeFromMinutes(12 * 60),
	}

	mockPgx.ExpectQuery(`(?s)SELECT (.+) FROM bookings`).
		WithArgs(arg.FieldID, arg.BookingDate, arg.Statuses, arg.StartTime, arg.EndTime).
		WillReturnRows(conflictRows(fieldID, userID, date))

	mockPgx.ExpectQuery(`(?s)SELECT (.+) FROM bookings`).
		WithArgs(arg.FieldID, arg.BookingDate, arg.Statuses, arg.StartTime, arg.EndTime).
		WillReturnRows(conflictRows(fieldID, userID, date))

	q := New()

	first, err := q.GetConflictingBookings(ctx, mockPgx, arg)
	assert.NoError(t, err)

	second, err := q.GetConflictingBookings(ctx, mockPgx, arg)
	assert.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)

	assert.NoError(t, mockPgx.ExpectationsWereMet())
}
