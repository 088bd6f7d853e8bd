package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/gdto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type FieldTypeService interface {
	Create(ctx context.Context, req dto.FieldTypeCreateRequest) (dto.FieldTypeResponse, error)
	Get(ctx context.Context, id string) (dto.FieldTypeResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetFieldTypesResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	Update(ctx context.Context, id string, req dto.FieldTypeUpdateRequest) (dto.FieldTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type fieldTypeService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) FieldTypeService {
	return &fieldTypeService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetFieldTypesKey   = "fieldtypes"
	cacheCountFieldTypesKey = "fieldtypes:count"
	cacheGetFieldTypeKey    = "fieldtype"

	identifier = "service - fieldtype - %s"
)

func (s *fieldTypeService) Create(ctx context.Context, req dto.FieldTypeCreateRequest) (res dto.FieldTypeResponse, err error) {
	fieldType, err := s.repo.CreateFieldType(ctx, s.db, repository.CreateFieldTypeParams{
		Name:        req.Name,
		Description: helper.PgString(req.Description),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return res, failure.Conflict("field type name already exists")
		}

		s.logger.Error(identifier, "create - failed to create field type: %w", err)

		return res, err
	}

	res = res.FromModel(fieldType)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldTypesKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldTypesKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldTypeService) Get(ctx context.Context, id string) (res dto.FieldTypeResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetFieldTypeKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	fieldType, err := s.repo.GetFieldTypeById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("field type not found")
			s.logger.Error(identifier, "get - field type not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get field type: %w", err)

		return res, err
	}

	res = res.FromModel(fieldType)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldTypeService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetFieldTypesResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetFieldTypesKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetFieldTypesResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count field types: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	fieldTypes, err := s.repo.GetFieldTypes(ctx, s.db, repository.GetFieldTypesParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get field types: %w", err)

		return res, err
	}

	res.FromModel(fieldTypes, totalItems, limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldTypeService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountFieldTypesKey, "filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountFieldTypes(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count field types: %w", err)

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

func (s *fieldTypeService) Update(ctx context.Context, id string, req dto.FieldTypeUpdateRequest) (res dto.FieldTypeResponse, err error) {
	existing, err := s.repo.GetFieldTypeById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("field type not found")
		}

		s.logger.Error(identifier, "update - failed to get field type: %w", err)

		return res, err
	}

	var updated bool

	if req.Name != "" {
		existing.Name = req.Name
		updated = true
	}

	if req.Description != "" {
		existing.Description = helper.PgString(req.Description)
		updated = true
	}

	if !updated {
		return res, failure.BadRequestFromString("at least one field is required to update")
	}

	fieldType, err := s.repo.UpdateFieldType(ctx, s.db, repository.UpdateFieldTypeParams{
		ID:          helper.PgUUID(id),
		Name:        existing.Name,
		Description: existing.Description,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update field type: %w", err)

		return res, err
	}

	res = res.FromModel(fieldType)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetFieldTypeKey, id)); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldTypesKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldTypeService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetFieldTypeById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("field type not found")
		}

		s.logger.Error(identifier, "delete - failed to get field type: %w", err)

		return err
	}

	err = s.repo.DeleteFieldType(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("field type used by fields")
		}

		s.logger.Error(identifier, "delete - failed to delete field type: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetFieldTypeKey, id)); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldTypesKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldTypesKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}
