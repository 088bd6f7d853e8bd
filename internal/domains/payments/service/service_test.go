package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	bookingMock "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/mock"
	bookingRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/mock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	log "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger/mock"
	redis "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockBookingQuerier := bookingMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockBookingQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	bookingID := uuid.New()

	pendingBooking := bookingRepository.Booking{
		ID:         helper.PgUUID(bookingID.String()),
		FinalPrice: helper.PgInt64(85000),
		Status:     constant.BookingStatusPending,
	}

	req := dto.PaymentCreateRequest{
		BookingID:     bookingID,
		PaymentMethod: constant.PaymentMethodTransfer,
	}

	t.Run("error: booking not found", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockBookingQuerier.EXPECT().
			GetBookingForUpdate(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID.String())).
			Return(bookingRepository.Booking{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})

	t.Run("error: booking cancelled under the row lock, nothing commits", func(t *testing.T) {
		cancelled := pendingBooking
		cancelled.Status = constant.BookingStatusCancelled

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockBookingQuerier.EXPECT().
			GetBookingForUpdate(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID.String())).
			Return(cancelled, nil).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})

	t.Run("error: duplicate payment for booking", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockBookingQuerier.EXPECT().
			GetBookingForUpdate(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID.String())).
			Return(pendingBooking, nil).
			Times(1)

		mockQuerier.EXPECT().
			InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Payment{}, &pgconn.PgError{Code: "23505"}).
			Times(1)

		ewallet := req
		ewallet.PaymentMethod = constant.PaymentMethodEWallet

		_, err := service.Create(ctx, ewallet)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: amount comes from the booking", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockBookingQuerier.EXPECT().
			GetBookingForUpdate(gomock.Any(), gomock.Any(), helper.PgUUID(bookingID.String())).
			Return(pendingBooking, nil).
			Times(1)

		cash := req
		cash.PaymentMethod = constant.PaymentMethodCash

		mockQuerier.EXPECT().
			InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentParams) (repository.Payment, error) {
				assert.Equal(t, int64(85000), helper.Int64FromPg(arg.Amount))
				assert.Equal(t, constant.PaymentStatusPending, arg.Status)
				assert.Equal(t, constant.PaymentMethodCash, arg.PaymentMethod)

				return repository.Payment{
					ID:            helper.PgUUID(uuid.NewString()),
					BookingID:     arg.BookingID,
					Amount:        arg.Amount,
					PaymentMethod: arg.PaymentMethod,
					Status:        arg.Status,
				}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, cash)

		assert.NoError(t, err)
		assert.Equal(t, int64(85000), res.Amount)
		assert.Equal(t, constant.PaymentStatusPending, res.Status)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}

func TestPaymentService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockBookingQuerier := bookingMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockBookingQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	paymentID := uuid.NewString()
	bookingID := helper.PgUUID(uuid.NewString())
	adminID := uuid.NewString()

	req := dto.PaymentConfirmRequest{
		PaymentID:   paymentID,
		ConfirmedBy: adminID,
	}

	t.Run("error: payment not found", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Payment{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Confirm(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: booking approval fails and nothing commits", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Payment{
				ID:        helper.PgUUID(paymentID),
				BookingID: bookingID,
				Status:    constant.PaymentStatusConfirmed,
			}, nil).
			Times(1)

		mockBookingQuerier.EXPECT().
			UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingRepository.Booking{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Confirm(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: confirming approves the booking in the same transaction", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			ConfirmPayment(gomock.Any(), gomock.Any(), repository.ConfirmPaymentParams{
				ID:          helper.PgUUID(paymentID),
				Status:      constant.PaymentStatusConfirmed,
				ConfirmedAt: helper.PgTimestamp(now),
				ConfirmedBy: helper.PgUUID(adminID),
			}).
			Return(repository.Payment{
				ID:          helper.PgUUID(paymentID),
				BookingID:   bookingID,
				Amount:      helper.PgInt64(85000),
				Status:      constant.PaymentStatusConfirmed,
				ConfirmedAt: helper.PgTimestamp(now),
				ConfirmedBy: helper.PgUUID(adminID),
			}, nil).
			Times(1)

		mockBookingQuerier.EXPECT().
			UpdateBookingStatus(gomock.Any(), gomock.Any(), bookingRepository.UpdateBookingStatusParams{
				ID:        bookingID,
				Status:    constant.BookingStatusApproved,
				UpdatedAt: helper.PgTimestamp(now),
			}).
			Return(bookingRepository.Booking{
				ID:     bookingID,
				Status: constant.BookingStatusApproved,
			}, nil).
			Times(1)

		res, err := service.Confirm(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, constant.PaymentStatusConfirmed, res.Status)
		assert.Equal(t, int64(85000), res.Amount)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockBookingQuerier := bookingMock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockBookingQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	paymentID := uuid.NewString()

	t.Run("error: payment not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetPaymentById(gomock.Any(), gomock.Any(), helper.PgUUID(paymentID)).
			Return(repository.Payment{}, pgx.ErrNoRows).
			Times(1)

		err := service.Delete(ctx, paymentID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: payment deleted", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetPaymentById(gomock.Any(), gomock.Any(), helper.PgUUID(paymentID)).
			Return(repository.Payment{ID: helper.PgUUID(paymentID)}, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeletePayment(gomock.Any(), gomock.Any(), helper.PgUUID(paymentID)).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, paymentID)

		assert.NoError(t, err)
	})
}
