package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	fieldRepo "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
	userRepo "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
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

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (int, error)
	GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (dto.GetBookedSlotsResponse, error)
	UpdateBookingStatus(ctx context.Context, req dto.UpdateBookingStatusRequest) (dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	fieldRepo fieldRepo.Querier
	userRepo  userRepo.Querier
	cache     redis.IRedisCache
	cfg       *config.Config
	logger    logger.Interface
	clock     clock.Clock
}

func New(db postgres.PgxIface, r repository.Querier, f fieldRepo.Querier, u userRepo.Querier, c redis.IRedisCache, cfg *config.Config, l logger.Interface, clk clock.Clock) BookingService {
	return &bookingService{
		db:        db,
		repo:      r,
		fieldRepo: f,
		userRepo:  u,
		cache:     c,
		cfg:       cfg,
		logger:    l,
		clock:     clk,
	}
}

const (
	cacheGetBookingKey    = "booking"
	cacheCountBookingsKey = "bookings:count"
	cacheGetBookingsKey   = "bookings"

	identifier = "service - booking - %s"
)

// Postgres error codes that signal a lost insert race: unique_violation and
// exclusion_violation.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// CreateBooking decides whether the requested slot may be admitted and, if
// so, persists the booking with its computed price. The field row is locked
// for the duration of the transaction so the conflict check and the insert
// act as one atomic step against concurrent requests for the same field.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	startMinutes, err := helper.ParseClock(req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "create - invalid start time: "+err.Error())

		return res, failure.BadRequestFromString("invalid start time format")
	}

	endMinutes, err := helper.ParseClock(req.EndTime)
	if err != nil {
		s.logger.Error(identifier, "create - invalid end time: "+err.Error())

		return res, failure.BadRequestFromString("invalid end time format")
	}

	// Duration validation precedes every other check, including conflicts.
	if endMinutes <= startMinutes {
		return res, failure.BadRequestFromString(constant.MsgInvalidDuration)
	}

	bookingDate, err := helper.PgDateFromString(req.Date)
	if err != nil {
		s.logger.Error(identifier, "create - invalid date: "+err.Error())

		return res, failure.BadRequestFromString("invalid booking date format")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - error starting transaction: "+err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create - error rolling back transaction: "+err.Error())
		}
	}(tx, ctx)

	fieldID := helper.PgUUID(req.FieldID.String())

	field, err := s.fieldRepo.GetFieldByIdForUpdate(ctx, tx, fieldID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "create - field not found: "+req.FieldID.String())

			return res, failure.NotFound(constant.MsgFieldNotFound)
		}

		s.logger.Error(identifier, "create - error locking field %s: %s", req.FieldID.String(), err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	startTime := helper.PgTimeFromMinutes(startMinutes)
	endTime := helper.PgTimeFromMinutes(endMinutes)

	conflicts, err := s.repo.GetConflictingBookings(ctx, tx, repository.GetConflictingBookingsParams{
		FieldID:     fieldID,
		BookingDate: bookingDate,
		Statuses:    constant.LockingBookingStatuses,
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		s.logger.Error(identifier, "create - error checking conflicts for field %s on %s: %s", req.FieldID.String(), req.Date, err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	for _, existing := range conflicts {
		if helper.Overlaps(
			helper.MinutesFromPgTime(existing.StartTime),
			helper.MinutesFromPgTime(existing.EndTime),
			startMinutes,
			endMinutes,
		) {
			s.logger.Info(identifier, "create - conflict on field %s, %s %s-%s", req.FieldID.String(), req.Date, req.StartTime, req.EndTime)

			return res, failure.Conflict(constant.MsgScheduleConflict)
		}
	}

	if field.Status != constant.FieldStatusAvailable {
		return res, failure.UnprocessableEntity(constant.MsgFieldUnavailable)
	}

	userRow, err := s.userRepo.GetUserWithMembership(ctx, tx, helper.PgUUID(req.UserID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "create - user not found: "+req.UserID.String())

			return res, failure.NotFound(constant.MsgUserNotFound)
		}

		s.logger.Error(identifier, "create - error getting user %s: %s", req.UserID.String(), err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	now := s.clock.Now()

	quote, err := computePriceQuote(startMinutes, endMinutes, helper.Int64FromPg(field.PricePerHour), membershipFromRow(userRow), now)
	if err != nil {
		return res, err
	}

	booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
		UserID:         userRow.User.ID,
		FieldID:        field.ID,
		BookingDate:    bookingDate,
		StartTime:      startTime,
		EndTime:        endTime,
		DurationHours:  int32(quote.DurationHours),
		TotalPrice:     helper.PgInt64(quote.TotalPrice),
		DiscountAmount: helper.PgInt64(quote.DiscountAmount),
		FinalPrice:     helper.PgInt64(quote.FinalPrice),
		Status:         constant.BookingStatusPending,
		Notes:          helper.PgString(req.Notes),
		CreatedAt:      helper.PgTimestamp(now),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation) {
			s.logger.Info(identifier, "create - insert lost race on field %s, %s %s-%s", req.FieldID.String(), req.Date, req.StartTime, req.EndTime)

			return res, failure.Conflict(constant.MsgScheduleConflict)
		}

		s.logger.Error(identifier, "create - error inserting booking for field %s, user %s, %s %s-%s: %s",
			req.FieldID.String(), req.UserID.String(), req.Date, req.StartTime, req.EndTime, err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - error committing transaction: "+err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res = res.FromModel(booking)
	res.FieldName = field.Name

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - error clearing bookings cache: "+err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - error clearing bookings count cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	bookingID := helper.PgUUID(id)

	booking, err := s.repo.GetBookingById(ctx, s.db, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "booking not found with ID: "+id)

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "error getting booking by ID: "+err.Error())

		return res, err
	}

	res = res.FromModel(booking)

	field, err := s.fieldRepo.GetFieldById(ctx, s.db, booking.FieldID)
	if err == nil {
		res.FieldName = field.Name
	} else {
		s.logger.Error(identifier, "error getting field name for ID %s: %s", booking.FieldID.String(), err.Error())
	}

	return res, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["user"] = userID
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get user bookings - cache hit for user: %s", userID)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountBookingsByUserId(ctx, s.db, repository.CountBookingsByUserIdParams{
		UserID: helper.PgUUID(userID),
		Filter: req.Filter,
	})
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error counting user bookings: %s", err.Error())

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetBookingsByUserId(ctx, s.db, repository.GetBookingsByUserIdParams{
		UserID: helper.PgUUID(userID),
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error getting bookings by user ID: %s", err.Error())

		return res, err
	}

	res.FromModel(bookings, int(totalItems), limit)
	s.enrichFieldNames(ctx, &res, bookings)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get user bookings - failed to save user bookings to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, "all:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get all bookings - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.CountAllBookings(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error counting all bookings: %s", err.Error())

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetAllBookings(ctx, s.db, repository.GetAllBookingsParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error getting all bookings: %s", err.Error())

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)
	s.enrichFieldNames(ctx, &res, bookings)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get all bookings - failed to save all bookings to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, "all:filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count all bookings - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountAllBookings(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count all bookings - error counting all bookings: %s", err.Error())

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count all bookings - error saving all bookings count to cache: %s", err.Error())
		}
	}()

	return total, nil
}

func (s *bookingService) GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (res dto.GetBookedSlotsResponse, err error) {
	fieldID := helper.PgUUID(req.FieldID)

	bookingDate, err := helper.PgDateFromString(req.Date)
	if err != nil {
		s.logger.Error(identifier, "get booked slots - invalid date: "+err.Error())

		return res, failure.BadRequestFromString("invalid booking date format")
	}

	keyArgs := map[string]string{}
	keyArgs["field_id"] = fieldID.String()
	keyArgs["date"] = req.Date
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookedSlotsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get booked slots - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	slots, err := s.repo.GetBookedTimeSlots(ctx, s.db, repository.GetBookedTimeSlotsParams{
		FieldID:     fieldID,
		BookingDate: bookingDate,
		Statuses:    constant.LockingBookingStatuses,
	})
	if err != nil {
		s.logger.Error(identifier, "get booked slots - error getting booked time slots: %s", err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res.FromModel(slots, fieldID.String())

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get booked slots - error saving booked slots to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, req dto.UpdateBookingStatusRequest) (res dto.BookingResponse, err error) {
	booking, err := s.repo.UpdateBookingStatus(ctx, s.db, repository.UpdateBookingStatusParams{
		ID:        helper.PgUUID(req.BookingID),
		Status:    req.Status,
		UpdatedAt: helper.PgTimestamp(s.clock.Now()),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "update status - booking not found with ID: "+req.BookingID)

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "update status - error updating booking status: %s", err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res = res.FromModel(booking)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetBookingKey, req.BookingID)); err != nil {
			s.logger.Error(identifier, "update status - error deleting booking from cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "update status - error clearing bookings cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "update status - error clearing bookings count cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetBookingById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "delete - failed to get booking: %w", err)

		return err
	}

	err = s.repo.DeleteBooking(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("booking has payments")
		}

		s.logger.Error(identifier, "delete - failed to delete booking: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetBookingKey, id)); err != nil {
			s.logger.Error(identifier, "delete - error deleting booking from cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - error clearing bookings cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - error clearing bookings count cache: %s", err.Error())
		}
	}()

	return nil
}

func (s *bookingService) enrichFieldNames(ctx context.Context, res *dto.GetBookingsResponse, bookings []repository.Booking) {
	fieldIDs := make(map[string]struct{})

	for _, booking := range bookings {
		fieldIDs[booking.FieldID.String()] = struct{}{}
	}

	fieldNames := make(map[string]string)

	for fieldID := range fieldIDs {
		field, err := s.fieldRepo.GetFieldById(ctx, s.db, helper.PgUUID(fieldID))
		if err == nil {
			fieldNames[fieldID] = field.Name
		} else {
			s.logger.Error(identifier, "error getting field name for ID %s: %s", fieldID, err.Error())
		}
	}

	res.EnrichWithFieldNames(fieldNames)
}
