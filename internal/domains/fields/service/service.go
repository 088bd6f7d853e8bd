package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
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

type FieldService interface {
	Create(ctx context.Context, req dto.FieldCreateRequest) (string, error)
	Get(ctx context.Context, id string) (dto.FieldResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetFieldsResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	GetAvailable(ctx context.Context, req dto.GetAvailableFieldsRequest) (dto.GetAvailableFieldsResponse, error)
	Update(ctx context.Context, id string, req dto.FieldUpdateRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

type fieldService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
	clock  clock.Clock
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface, clk clock.Clock) FieldService {
	return &fieldService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
		clock:  clk,
	}
}

const (
	cacheGetFieldsKey   = "fields"
	cacheCountFieldsKey = "fields:count"
	cacheGetFieldKey    = "field"

	identifier = "service - field - %s"
)

func (s *fieldService) Create(ctx context.Context, req dto.FieldCreateRequest) (res string, err error) {
	status := req.Status
	if status == "" {
		status = constant.FieldStatusAvailable
	}

	newField, err := s.repo.CreateField(ctx, s.db, repository.CreateFieldParams{
		FieldTypeID:  helper.PgUUID(req.FieldTypeID.String()),
		Name:         req.Name,
		Description:  helper.PgString(req.Description),
		PricePerHour: helper.PgInt64(req.PricePerHour),
		Status:       status,
		ImageURL:     helper.PgString(req.ImageURL),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.BadRequestFromString("field type not found")
		}

		s.logger.Error(identifier, "create - failed to create field: %w", err)

		return res, err
	}

	res = newField.String()

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldService) Get(ctx context.Context, id string) (res dto.FieldResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetFieldKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	field, err := s.repo.GetFieldById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(constant.MsgFieldNotFound)
			s.logger.Error(identifier, "get - field not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed get field: %w", err)

		return res, err
	}

	res = res.FromModel(field)

	go func() {
		err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "get - failed save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetFieldsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetFieldsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetFieldsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count fields: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	fields, err := s.repo.GetFields(ctx, s.db, repository.GetFieldsParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get fields: %w", err)

		return res, err
	}

	res.FromModel(fields, totalItems, limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountFieldsKey, "filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountFields(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count fields: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, total, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "count - failed to set cache: %w", err)
		}
	}()

	return total, nil
}

// GetAvailable lists available fields free for the whole requested window.
// Dates before today are rejected outright.
func (s *fieldService) GetAvailable(ctx context.Context, req dto.GetAvailableFieldsRequest) (res dto.GetAvailableFieldsResponse, err error) {
	startMinutes, err := helper.ParseClock(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString("invalid start time format")
	}

	endMinutes, err := helper.ParseClock(req.EndTime)
	if err != nil {
		return res, failure.BadRequestFromString("invalid end time format")
	}

	if endMinutes <= startMinutes {
		return res, failure.BadRequestFromString(constant.MsgInvalidDuration)
	}

	bookingDate, err := helper.PgDateFromString(req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date format")
	}

	today := helper.TruncateToDayUTC(s.clock.Now())
	if bookingDate.Time.Before(today) {
		return res, failure.BadRequestFromString("cannot check availability for past dates")
	}

	fields, err := s.repo.GetAvailableFields(ctx, s.db, repository.GetAvailableFieldsParams{
		Status:      constant.FieldStatusAvailable,
		BookingDate: bookingDate,
		Statuses:    constant.LockingBookingStatuses,
		StartTime:   helper.PgTimeFromMinutes(startMinutes),
		EndTime:     helper.PgTimeFromMinutes(endMinutes),
	})
	if err != nil {
		s.logger.Error(identifier, "getAvailable - failed to get available fields: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res.FromModel(fields, req.Date, req.StartTime, req.EndTime)

	return res, nil
}

func (s *fieldService) Update(ctx context.Context, id string, req dto.FieldUpdateRequest) (res string, err error) {
	existingField, err := s.repo.GetFieldById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(constant.MsgFieldNotFound)
		}

		s.logger.Error(identifier, "update - failed get field: %w", err)

		return res, err
	}

	val := reflect.ValueOf(req)
	typ := reflect.TypeOf(req)

	var updatedFields []string

	for i := range val.NumField() {
		field := val.Field(i)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(i).Tag.Get("json")
		updatedFields = append(updatedFields, fieldName)

		switch fieldName {
		case "field_type_id":
			existingField.FieldTypeID = helper.PgUUID(fmt.Sprint(field.Interface()))
		case "name":
			existingField.Name = field.Interface().(string)
		case "description":
			existingField.Description = helper.PgString(field.Interface().(string))
		case "price_per_hour":
			existingField.PricePerHour = helper.PgInt64(field.Int())
		case "status":
			existingField.Status = field.Interface().(string)
		case "image_url":
			existingField.ImageURL = helper.PgString(field.Interface().(string))
		}
	}

	if len(updatedFields) == 0 {
		s.logger.Error(identifier, "update - at least one field is required to update")

		err := failure.BadRequestFromString("at least one field is required to update")

		return res, err
	}

	newField, err := s.repo.UpdateField(ctx, s.db, repository.UpdateFieldParams{
		ID:           helper.PgUUID(id),
		FieldTypeID:  existingField.FieldTypeID,
		Name:         existingField.Name,
		Description:  existingField.Description,
		PricePerHour: existingField.PricePerHour,
		Status:       existingField.Status,
		ImageURL:     existingField.ImageURL,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update field: %w", err)

		return res, err
	}

	res = newField.ID.String()

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetFieldKey, id)); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *fieldService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetFieldById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(constant.MsgFieldNotFound)
		}

		s.logger.Error(identifier, "delete - failed to get field: %w", err)

		return err
	}

	err = s.repo.DeleteField(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("field used by other entities")
		}

		s.logger.Error(identifier, "delete - failed to delete field: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetFieldKey, id)); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}
