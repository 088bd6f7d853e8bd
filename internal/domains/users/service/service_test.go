package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/mock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
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
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
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

	req := dto.UserCreateRequest{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "rahasia-banget",
		FullName: "Budi Santoso",
		Phone:    "+6281234567890",
	}

	t.Run("error: duplicate email or username", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, &pgconn.PgError{Code: "23505"}).
			Times(1)

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: password is hashed and role defaults to customer", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateUserParams) (repository.User, error) {
				assert.NotEqual(t, req.Password, arg.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(arg.PasswordHash), []byte(req.Password)))
				assert.Equal(t, constant.UserRoleCustomer, arg.Role)

				return repository.User{
					ID:        helper.PgUUID(uuid.NewString()),
					Username:  arg.Username,
					Email:     arg.Email,
					FullName:  arg.FullName,
					Phone:     arg.Phone,
					Role:      arg.Role,
					CreatedAt: helper.PgTimestamp(time.Now()),
				}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Username, res.Username)
		assert.Equal(t, constant.UserRoleCustomer, res.Role)
	})

	t.Run("success: explicit role is kept", func(t *testing.T) {
		adminReq := req
		adminReq.Role = constant.UserRoleAdmin

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateUserParams) (repository.User, error) {
				assert.Equal(t, constant.UserRoleAdmin, arg.Role)

				return repository.User{
					ID:   helper.PgUUID(uuid.NewString()),
					Role: arg.Role,
				}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, adminReq)

		assert.NoError(t, err)
		assert.Equal(t, constant.UserRoleAdmin, res.Role)
	})
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	userID := uuid.NewString()

	user := repository.User{
		ID:       helper.PgUUID(userID),
		Username: "budi",
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
		Role:     constant.UserRoleCustomer,
	}

	t.Run("error: user not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID)).
			Return(repository.GetUserWithMembershipRow{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Get(ctx, userID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, constant.MsgUserNotFound, err.Error())
	})

	t.Run("success: user without membership", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID)).
			Return(repository.GetUserWithMembershipRow{User: user}, nil).
			Times(1)

		res, err := service.Get(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, "budi", res.Username)
		assert.Nil(t, res.Membership)
	})

	t.Run("success: user with active membership", func(t *testing.T) {
		row := repository.GetUserWithMembershipRow{
			User:               user,
			MembershipID:       helper.PgUUID(uuid.NewString()),
			MembershipType:     helper.PgString(constant.MembershipTypeRegular),
			MembershipStatus:   helper.PgString(constant.MembershipStatusActive),
			DiscountPercentage: helper.PgPercent(1500),
			StartDate:          helper.PgDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:            helper.PgDate(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
		}

		mockQuerier.EXPECT().
			GetUserWithMembership(gomock.Any(), gomock.Any(), helper.PgUUID(userID)).
			Return(row, nil).
			Times(1)

		res, err := service.Get(ctx, userID)

		assert.NoError(t, err)
		assert.NotNil(t, res.Membership)
		assert.Equal(t, constant.MembershipStatusActive, res.Membership.Status)
		assert.Equal(t, int64(1500), res.Membership.DiscountPercentage)
	})
}
