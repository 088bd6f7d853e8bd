package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, req dto.UserCreateRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserDetailResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
}

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetUsersKey   = "users"
	cacheCountUsersKey = "users:count"
	cacheGetUserKey    = "user"

	identifier = "service - user - %s"
)

func (s *userService) Create(ctx context.Context, req dto.UserCreateRequest) (res dto.UserResponse, err error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(identifier, "create - failed to hash password: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	role := req.Role
	if role == "" {
		role = constant.UserRoleCustomer
	}

	user, err := s.repo.CreateUser(ctx, s.db, repository.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        helper.PgString(req.Phone),
		Address:      helper.PgString(req.Address),
		Role:         role,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return res, failure.Conflict("email or username already registered")
		}

		s.logger.Error(identifier, "create - failed to create user: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res = res.FromModel(user)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetUsersKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountUsersKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *userService) Get(ctx context.Context, id string) (res dto.UserDetailResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetUserKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	row, err := s.repo.GetUserWithMembership(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(constant.MsgUserNotFound)
			s.logger.Error(identifier, "get - user not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get user: %w", err)

		return res, err
	}

	res = res.FromModel(row)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *userService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetUsersResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetUsersKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetUsersResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count users: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	users, err := s.repo.GetUsers(ctx, s.db, repository.GetUsersParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get users: %w", err)

		return res, err
	}

	res.FromModel(users, totalItems, limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *userService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountUsersKey, "filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountUsers(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count users: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count - failed to set cache: %w", err)
		}
	}()

	return total, nil
}
