package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/mock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
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

func TestFieldService_GetAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	// Fixed at 2026-03-14 09:00 UTC so past-date tests are deterministic.
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	validReq := dto.GetAvailableFieldsRequest{
		Date:      "2026-03-15",
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	t.Run("error: end time not after start time", func(t *testing.T) {
		req := validReq
		req.EndTime = "10:00"

		_, err := service.GetAvailable(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgInvalidDuration, err.Error())
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: past date rejected", func(t *testing.T) {
		req := validReq
		req.Date = "2026-03-13"

		_, err := service.GetAvailable(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: same day is not a past date", func(t *testing.T) {
		req := validReq
		req.Date = "2026-03-14"

		mockQuerier.EXPECT().
			GetAvailableFields(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Field{}, nil).
			Times(1)

		res, err := service.GetAvailable(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-14", res.Date)
		assert.Empty(t, res.Fields)
	})

	t.Run("success: lists free fields for the window", func(t *testing.T) {
		fieldRow := repository.Field{
			ID:           helper.PgUUID(uuid.NewString()),
			Name:         "Lapangan Basket B",
			PricePerHour: helper.PgInt64(75000),
			Status:       constant.FieldStatusAvailable,
		}

		mockQuerier.EXPECT().
			GetAvailableFields(gomock.Any(), gomock.Any(), repository.GetAvailableFieldsParams{
				Status:      constant.FieldStatusAvailable,
				BookingDate: mustPgDate(t, validReq.Date),
				Statuses:    constant.LockingBookingStatuses,
				StartTime:   helper.PgTimeFromMinutes(600),
				EndTime:     helper.PgTimeFromMinutes(720),
			}).
			Return([]repository.Field{fieldRow}, nil).
			Times(1)

		res, err := service.GetAvailable(ctx, validReq)

		assert.NoError(t, err)
		assert.Len(t, res.Fields, 1)
		assert.Equal(t, "Lapangan Basket B", res.Fields[0].Name)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "12:00", res.EndTime)
	})
}

func TestFieldService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	req := dto.FieldCreateRequest{
		FieldTypeID:  uuid.New(),
		Name:         "Lapangan Futsal A",
		PricePerHour: 50000,
	}

	t.Run("error: unknown field type", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateField(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgtype.UUID{}, &pgconn.PgError{Code: "23503"}).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: defaults status to available", func(t *testing.T) {
		newID := helper.PgUUID(uuid.NewString())

		mockQuerier.EXPECT().
			CreateField(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateFieldParams) (pgtype.UUID, error) {
				assert.Equal(t, constant.FieldStatusAvailable, arg.Status)

				return newID, nil
			}).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, newID.String(), res)
	})
}

func TestFieldService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, clock.NewFixed(now))

	fieldID := uuid.NewString()

	t.Run("error: field not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), helper.PgUUID(fieldID)).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		err := service.Delete(ctx, fieldID)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgFieldNotFound, err.Error())
	})

	t.Run("error: field still referenced", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), helper.PgUUID(fieldID)).
			Return(repository.Field{ID: helper.PgUUID(fieldID)}, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteField(gomock.Any(), gomock.Any(), helper.PgUUID(fieldID)).
			Return(&pgconn.PgError{Code: "23503"}).
			Times(1)

		err := service.Delete(ctx, fieldID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), helper.PgUUID(fieldID)).
			Return(repository.Field{ID: helper.PgUUID(fieldID)}, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteField(gomock.Any(), gomock.Any(), helper.PgUUID(fieldID)).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, fieldID)

		assert.NoError(t, err)
	})
}

func mustPgDate(t *testing.T, date string) pgtype.Date {
	t.Helper()

	d, err := helper.PgDateFromString(date)
	assert.NoError(t, err)

	return d
}
