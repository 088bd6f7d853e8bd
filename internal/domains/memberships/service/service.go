package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type MembershipService interface {
	Create(ctx context.Context, req dto.MembershipCreateRequest) (dto.MembershipResponse, error)
	Get(ctx context.Context, id string) (dto.MembershipResponse, error)
	GetByUserID(ctx context.Context, userID string) (dto.MembershipResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetMembershipsResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	Update(ctx context.Context, id string, req dto.MembershipUpdateRequest) (dto.MembershipResponse, error)
	Delete(ctx context.Context, id string) error
}

type membershipService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) MembershipService {
	return &membershipService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetMembershipsKey   = "memberships"
	cacheCountMembershipsKey = "memberships:count"
	cacheGetMembershipKey    = "membership"

	identifier = "service - membership - %s"
)

func (s *membershipService) Create(ctx context.Context, req dto.MembershipCreateRequest) (res dto.MembershipResponse, err error) {
	startDate, err := helper.PgDateFromString(req.StartDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid start date format")
	}

	endDate, err := helper.PgDateFromString(req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid end date format")
	}

	if !endDate.Time.After(startDate.Time) {
		return res, failure.BadRequestFromString("end date must be after start date")
	}

	membership, err := s.repo.CreateMembership(ctx, s.db, repository.CreateMembershipParams{
		UserID:             helper.PgUUID(req.UserID.String()),
		MembershipType:     req.MembershipType,
		StartDate:          startDate,
		EndDate:            endDate,
		DiscountPercentage: helper.PgPercent(req.DiscountPercentage),
		Status:             constant.MembershipStatusActive,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return res, failure.Conflict("user already has a membership")
			case "23503":
				return res, failure.NotFound(constant.MsgUserNotFound)
			}
		}

		s.logger.Error(identifier, "create - failed to create membership: %w", err)

		return res, err
	}

	res = res.FromModel(membership)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetMembershipsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountMembershipsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *membershipService) Get(ctx context.Context, id string) (res dto.MembershipResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetMembershipKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	membership, err := s.repo.GetMembershipById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("membership not found")
			s.logger.Error(identifier, "get - membership not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get membership: %w", err)

		return res, err
	}

	res = res.FromModel(membership)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *membershipService) GetByUserID(ctx context.Context, userID string) (res dto.MembershipResponse, err error) {
	membership, err := s.repo.GetMembershipByUserId(ctx, s.db, helper.PgUUID(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("membership not found")
			s.logger.Error(identifier, "getByUserID - membership not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "getByUserID - failed to get membership: %w", err)

		return res, err
	}

	res = res.FromModel(membership)

	return res, nil
}

func (s *membershipService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetMembershipsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetMembershipsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetMembershipsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count memberships: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	memberships, err := s.repo.GetMemberships(ctx, s.db, repository.GetMembershipsParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get memberships: %w", err)

		return res, err
	}

	res.FromModel(memberships, totalItems, limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *membershipService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountMembershipsKey, "filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountMemberships(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count memberships: %w", err)

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

func (s *membershipService) Update(ctx context.Context, id string, req dto.MembershipUpdateRequest) (res dto.MembershipResponse, err error) {
	existing, err := s.repo.GetMembershipById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("membership not found")
		}

		s.logger.Error(identifier, "update - failed to get membership: %w", err)

		return res, err
	}

	var updated bool

	if req.MembershipType != "" {
		existing.MembershipType = req.MembershipType
		updated = true
	}

	if req.StartDate != "" {
		startDate, err := helper.PgDateFromString(req.StartDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid start date format")
		}

		existing.StartDate = startDate
		updated = true
	}

	if req.EndDate != "" {
		endDate, err := helper.PgDateFromString(req.EndDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid end date format")
		}

		existing.EndDate = endDate
		updated = true
	}

	if req.DiscountPercentage != 0 {
		existing.DiscountPercentage = helper.PgPercent(req.DiscountPercentage)
		updated = true
	}

	if req.Status != "" {
		existing.Status = req.Status
		updated = true
	}

	if !updated {
		return res, failure.BadRequestFromString("at least one field is required to update")
	}

	if !existing.EndDate.Time.After(existing.StartDate.Time) {
		return res, failure.BadRequestFromString("end date must be after start date")
	}

	membership, err := s.repo.UpdateMembership(ctx, s.db, repository.UpdateMembershipParams{
		ID:                 helper.PgUUID(id),
		MembershipType:     existing.MembershipType,
		StartDate:          existing.StartDate,
		EndDate:            existing.EndDate,
		DiscountPercentage: existing.DiscountPercentage,
		Status:             existing.Status,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update membership: %w", err)

		return res, err
	}

	res = res.FromModel(membership)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetMembershipKey, id)); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetMembershipsKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *membershipService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetMembershipById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("membership not found")
		}

		s.logger.Error(identifier, "delete - failed to get membership: %w", err)

		return err
	}

	if err = s.repo.DeleteMembership(ctx, s.db, helper.PgUUID(id)); err != nil {
		s.logger.Error(identifier, "delete - failed to delete membership: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetMembershipKey, id)); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetMembershipsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountMembershipsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}
