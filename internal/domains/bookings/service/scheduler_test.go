package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestSchedulerService_CompleteFinishedBookings(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)

	t.Run("success: moves approved bookings past their end time", func(t *testing.T) {
		mockPgx, _ := pgxmock.NewPool()

		scheduler := NewSchedulerService(mockPgx, cfg, clock.NewFixed(now))

		mockPgx.ExpectExec("UPDATE bookings").
			WithArgs(helper.PgTimestamp(now), helper.PgTimestamp(now), constant.BookingStatusCompleted, constant.BookingStatusApproved).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		moved, err := scheduler.CompleteFinishedBookings(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), moved)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})

	t.Run("error: database unavailable", func(t *testing.T) {
		mockPgx, _ := pgxmock.NewPool()

		scheduler := NewSchedulerService(mockPgx, cfg, clock.NewFixed(now))

		mockPgx.ExpectExec("UPDATE bookings").
			WithArgs(helper.PgTimestamp(now), helper.PgTimestamp(now), constant.BookingStatusCompleted, constant.BookingStatusApproved).
			WillReturnError(errors.New("connection refused"))

		moved, err := scheduler.CompleteFinishedBookings(ctx)

		assert.Error(t, err)
		assert.Equal(t, int64(0), moved)
	})
}
