package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/dto"
	bookingMock "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/mock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	fieldMock "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/mock"
	fieldRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
	userMock "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/mock"
	userRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	log "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger/mock"
	redis "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBookingService_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := bookingMock.NewMockQuerier(ctrl)
	mockFieldQuerier := fieldMock.NewMockQuerier(ctrl)
	mockUserQuerier := userMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockFieldQuerier, mockUserQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	userID := uuid.New()
	fieldID := uuid.New()

	fieldRow := fieldRepository.Field{
		ID:           helper.PgUUID(fieldID.String()),
		Name:         "Lapangan Futsal A",
		PricePerHour: helper.PgInt64(50000),
		Status:       constant.FieldStatusAvailable,
	}

	userRow := userRepository.GetUserWithMembershipRow{
		User: userRepository.User{
			ID: helper.PgUUID(userID.String()),
		},
	}

	memberRow := userRepository.GetUserWithMembershipRow{
		User: userRepository.User{
			ID: helper.PgUUID(userID.String()),
		},
		MembershipID:       helper.PgUUID(uuid.NewString()),
		MembershipStatus:   pgtype.Text{String: constant.MembershipStatusActive, Valid: true},
		DiscountPercentage: helper.PgPercent(1500),
		EndDate:            pgtype.Date{Time: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}

	validReq := dto.CreateBookingRequest{
		UserID:    userID,
		FieldID:   fieldID,
		Date:      "2026-03-14",
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	existingBooking := func(start, end string) repository.Booking {
		startMinutes, _ := helper.ParseClock(start)
		endMinutes, _ := helper.ParseClock(end)

		return repository.Booking{
			ID:        helper.PgUUID(uuid.NewString()),
			FieldID:   fieldRow.ID,
			StartTime: helper.PgTimeFromMinutes(startMinutes),
			EndTime:   helper.PgTimeFromMinutes(endMinutes),
			Status:    constant.BookingStatusApproved,
		}
	}

	t.Run("error: unparseable start time", func(t *testing.T) {
		req := validReq
		req.StartTime = "10am"

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: end time not after start time", func(t *testing.T) {
		req := validReq
		req.EndTime = "10:00"

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgInvalidDuration, err.Error())
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: duration check precedes field lookup", func(t *testing.T) {
		// No repository expectations: an inverted window on an unknown field
		// must fail on duration without touching storage.
		req := validReq
		req.FieldID = uuid.New()
		req.StartTime = "12:00"
		req.EndTime = "10:00"

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgInvalidDuration, err.Error())
	})

	t.Run("error: field not found", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRepository.Field{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgFieldNotFound, err.Error())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: schedule conflict", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{existingBooking("11:00", "13:00")}, nil).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgScheduleConflict, err.Error())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: conflict outranks unavailable field", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		maintenanceField := fieldRow
		maintenanceField.Status = constant.FieldStatusMaintenance

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(maintenanceField, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{existingBooking("10:00", "12:00")}, nil).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgScheduleConflict, err.Error())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: field not available", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		maintenanceField := fieldRow
		maintenanceField.Status = constant.FieldStatusMaintenance

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(maintenanceField, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgFieldUnavailable, err.Error())
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: user not found", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(userRepository.GetUserWithMembershipRow{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgUserNotFound, err.Error())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: insert loses the race", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(userRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Booking{}, &pgconn.PgError{Code: "23505"}).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgScheduleConflict, err.Error())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: insert fails", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(userRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Booking{}, errors.New("connection reset")).
			Times(1)

		_, err := service.CreateBooking(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgInternalError, err.Error())
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: full price without membership", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(userRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				assert.Equal(t, int32(2), arg.DurationHours)
				assert.Equal(t, int64(100000), helper.Int64FromPg(arg.TotalPrice))
				assert.Equal(t, int64(0), helper.Int64FromPg(arg.DiscountAmount))
				assert.Equal(t, int64(100000), helper.Int64FromPg(arg.FinalPrice))
				assert.Equal(t, constant.BookingStatusPending, arg.Status)

				return repository.Booking{
					ID:             helper.PgUUID(uuid.NewString()),
					UserID:         arg.UserID,
					FieldID:        arg.FieldID,
					BookingDate:    arg.BookingDate,
					StartTime:      arg.StartTime,
					EndTime:        arg.EndTime,
					DurationHours:  arg.DurationHours,
					TotalPrice:     arg.TotalPrice,
					DiscountAmount: arg.DiscountAmount,
					FinalPrice:     arg.FinalPrice,
					Status:         arg.Status,
					CreatedAt:      arg.CreatedAt,
				}, nil
			}).
			Times(1)

		res, err := service.CreateBooking(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-14", res.BookingDate)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "12:00", res.EndTime)
		assert.Equal(t, 2, res.DurationHours)
		assert.Equal(t, int64(100000), res.TotalPrice)
		assert.Equal(t, int64(100000), res.FinalPrice)
		assert.Equal(t, constant.BookingStatusPending, res.Status)
		assert.Equal(t, "Lapangan Futsal A", res.FieldName)
	})

	t.Run("success: active membership discount applied", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(memberRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				assert.Equal(t, int64(100000), helper.Int64FromPg(arg.TotalPrice))
				assert.Equal(t, int64(15000), helper.Int64FromPg(arg.DiscountAmount))
				assert.Equal(t, int64(85000), helper.Int64FromPg(arg.FinalPrice))

				return repository.Booking{
					ID:             helper.PgUUID(uuid.NewString()),
					TotalPrice:     arg.TotalPrice,
					DiscountAmount: arg.DiscountAmount,
					FinalPrice:     arg.FinalPrice,
					Status:         arg.Status,
				}, nil
			}).
			Times(1)

		res, err := service.CreateBooking(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, int64(15000), res.DiscountAmount)
		assert.Equal(t, int64(85000), res.FinalPrice)
	})

	t.Run("success: back to back slot is admitted", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		req := validReq
		req.StartTime = "12:00"
		req.EndTime = "14:00"

		mockFieldQuerier.EXPECT().
			GetFieldByIdForUpdate(gomock.Any(), gomock.Any(), fieldRow.ID).
			Return(fieldRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			GetConflictingBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{existingBooking("10:00", "12:00")}, nil).
			Times(1)

		mockUserQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID.String())).
			Return(userRow, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				return repository.Booking{
					ID:        helper.PgUUID(uuid.NewString()),
					StartTime: arg.StartTime,
					EndTime:   arg.EndTime,
					Status:    arg.Status,
				}, nil
			}).
			Times(1)

		res, err := service.CreateBooking(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "12:00", res.StartTime)
		assert.Equal(t, "14:00", res.EndTime)
	})
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := bookingMock.NewMockQuerier(ctrl)
	mockFieldQuerier := fieldMock.NewMockQuerier(ctrl)
	mockUserQuerier := userMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockFieldQuerier, mockUserQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	bookingID := uuid.NewString()

	t.Run("error: booking not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Booking{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.UpdateBookingStatus(ctx, dto.UpdateBookingStatusRequest{
			BookingID: bookingID,
			Status:    constant.BookingStatusApproved,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockQuerier.EXPECT().
			UpdateBookingStatus(gomock.Any(), gomock.Any(), repository.UpdateBookingStatusParams{
				ID:        helper.PgUUID(bookingID),
				Status:    constant.BookingStatusCancelled,
				UpdatedAt: helper.PgTimestamp(now),
			}).
			Return(repository.Booking{
				ID:     helper.PgUUID(bookingID),
				Status: constant.BookingStatusCancelled,
			}, nil).
			Times(1)

		res, err := service.UpdateBookingStatus(ctx, dto.UpdateBookingStatusRequest{
			BookingID: bookingID,
			Status:    constant.BookingStatusCancelled,
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCancelled, res.Status)
	})
}

func TestBookingService_GetBookedSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := bookingMock.NewMockQuerier(ctrl)
	mockFieldQuerier := fieldMock.NewMockQuerier(ctrl)
	mockUserQuerier := userMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("cache miss")

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	now := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockFieldQuerier, mockUserQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	fieldID := uuid.NewString()

	t.Run("error: invalid date", func(t *testing.T) {
		_, err := service.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{
			FieldID: fieldID,
			Date:    "14-03-2026",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: slots from database", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetBookedTimeSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.GetBookedTimeSlotsRow{
				{StartTime: helper.PgTimeFromMinutes(600), EndTime: helper.PgTimeFromMinutes(720)},
				{StartTime: helper.PgTimeFromMinutes(780), EndTime: helper.PgTimeFromMinutes(840)},
			}, nil).
			Times(1)

		res, err := service.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{
			FieldID: fieldID,
			Date:    "2026-03-14",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalItems)
		assert.Equal(t, "10:00", res.BookedSlots[0].StartTime)
		assert.Equal(t, "12:00", res.BookedSlots[0].EndTime)
	})
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := bookingMock.NewMockQuerier(ctrl)
	mockFieldQuerier := fieldMock.NewMockQuerier(ctrl)
	mockUserQuerier := userMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockFieldQuerier, mockUserQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	bookingID := uuid.NewString()

	t.Run("error: booking not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID)).
			Return(repository.Booking{}, pgx.ErrNoRows).
			Times(1)

		err := service.DeleteBooking(ctx, bookingID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: booking has payments", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID)).
			Return(repository.Booking{ID: helper.PgUUID(bookingID)}, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteBooking(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID)).
			Return(&pgconn.PgError{Code: "23503"}).
			Times(1)

		err := service.DeleteBooking(ctx, bookingID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: booking deleted", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID)).
			Return(repository.Booking{ID: helper.PgUUID(bookingID)}, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteBooking(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID)).
			Return(nil).
			Times(1)

		err := service.DeleteBooking(ctx, bookingID)

		assert.NoError(t, err)
	})
}
