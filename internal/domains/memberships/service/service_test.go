package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/mock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	log "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger/mock"
	redis "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMembershipService_Create(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	userID := uuid.New()

	req := dto.MembershipCreateRequest{
		UserID:             userID,
		MembershipType:     constant.MembershipTypePremium,
		StartDate:          "2026-03-01",
		EndDate:            "2026-06-01",
		DiscountPercentage: 1500,
	}

	t.Run("error: end date not after start date", func(t *testing.T) {
		bad := req
		bad.EndDate = bad.StartDate

		_, err := service.Create(ctx, bad)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "end date must be after start date", err.Error())
	})

	t.Run("error: malformed start date", func(t *testing.T) {
		bad := req
		bad.StartDate = "01-03-2026"

		_, err := service.Create(ctx, bad)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: user already has a membership", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateMembership(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Membership{}, &pgconn.PgError{Code: "23505"}).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: unknown user", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateMembership(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Membership{}, &pgconn.PgError{Code: "23503"}).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, constant.MsgUserNotFound, err.Error())
	})

	t.Run("success: membership starts active with discount in hundredths", func(t *testing.T) {
		vip := req
		vip.MembershipType = constant.MembershipTypeVIP

		mockQuerier.EXPECT().
			CreateMembership(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateMembershipParams) (repository.Membership, error) {
				assert.Equal(t, constant.MembershipStatusActive, arg.Status)
				assert.Equal(t, constant.MembershipTypeVIP, arg.MembershipType)
				assert.Equal(t, int64(1500), helper.PercentFromPg(arg.DiscountPercentage))

				return repository.Membership{
					ID:                 helper.PgUUID(uuid.NewString()),
					UserID:             arg.UserID,
					MembershipType:     arg.MembershipType,
					StartDate:          arg.StartDate,
					EndDate:            arg.EndDate,
					DiscountPercentage: arg.DiscountPercentage,
					Status:             arg.Status,
				}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, vip)

		assert.NoError(t, err)
		assert.Equal(t, constant.MembershipStatusActive, res.Status)
		assert.Equal(t, constant.MembershipTypeVIP, res.MembershipType)
		assert.Equal(t, int64(1500), res.DiscountPercentage)
		assert.Equal(t, "2026-06-01", res.EndDate)
	})
}
