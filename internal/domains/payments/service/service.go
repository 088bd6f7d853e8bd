package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	bookingRepo "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/dto"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/repository"
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

type PaymentService interface {
	Create(ctx context.Context, req dto.PaymentCreateRequest) (dto.PaymentResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	Confirm(ctx context.Context, req dto.PaymentConfirmRequest) (dto.PaymentResponse, error)
	Delete(ctx context.Context, id string) error
}

type paymentService struct {
	db          postgres.PgxIface
	repo        repository.Querier
	bookingRepo bookingRepo.Querier
	cache       redis.IRedisCache
	cfg         *config.Config
	logger      logger.Interface
	clock       clock.Clock
}

func New(db postgres.PgxIface, r repository.Querier, b bookingRepo.Querier, c redis.IRedisCache, cfg *config.Config, l logger.Interface, clk clock.Clock) PaymentService {
	return &paymentService{
		db:          db,
		repo:        r,
		bookingRepo: b,
		cache:       c,
		cfg:         cfg,
		logger:      l,
		clock:       clk,
	}
}

const (
	cacheGetPaymentsKey   = "payments"
	cacheCountPaymentsKey = "payments:count"
	cacheGetPaymentKey    = "payment"

	identifier = "service - payment - %s"
)

// Create records a pending payment for a booking. The amount is always the
// booking's final price, never caller supplied. The booking row is locked for
// the transaction, so a concurrent status change cannot land between the
// status check and the insert.
func (s *paymentService) Create(ctx context.Context, req dto.PaymentCreateRequest) (res dto.PaymentResponse, err error) {
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

	booking, err := s.bookingRepo.GetBookingForUpdate(ctx, tx, helper.PgUUID(req.BookingID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "create - booking not found: "+req.BookingID.String())

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "create - failed to get booking: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	if booking.Status != constant.BookingStatusPending {
		return res, failure.UnprocessableEntity("booking is not awaiting payment")
	}

	payment, err := s.repo.InsertPayment(ctx, tx, repository.InsertPaymentParams{
		BookingID:       booking.ID,
		Amount:          booking.FinalPrice,
		PaymentMethod:   req.PaymentMethod,
		PaymentProofURL: helper.PgString(req.PaymentProofURL),
		Status:          constant.PaymentStatusPending,
		Notes:           helper.PgString(req.Notes),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return res, failure.Conflict("payment already exists for booking")
		}

		s.logger.Error(identifier, "create - failed to insert payment: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - error committing transaction: "+err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res = res.FromModel(payment)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetPaymentsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountPaymentsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *paymentService) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetPaymentKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	payment, err := s.repo.GetPaymentById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("payment not found")
			s.logger.Error(identifier, "get - payment not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get payment: %w", err)

		return res, err
	}

	res = res.FromModel(payment)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *paymentService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetPaymentsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetPaymentsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetPaymentsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count payments: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	payments, err := s.repo.GetPayments(ctx, s.db, repository.GetPaymentsParams{
		Filter: req.Filter,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get payments: %w", err)

		return res, err
	}

	res.FromModel(payments, totalItems, limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *paymentService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	cacheKey := helper.BuildCacheKey(cacheCountPaymentsKey, "filter="+req.Filter)

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountPayments(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count payments: %w", err)

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

// Confirm marks a payment confirmed and approves its booking in one
// transaction, so a confirmed payment never leaves the booking pending.
func (s *paymentService) Confirm(ctx context.Context, req dto.PaymentConfirmRequest) (res dto.PaymentResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "confirm - error starting transaction: "+err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "confirm - error rolling back transaction: "+err.Error())
		}
	}(tx, ctx)

	now := s.clock.Now()

	payment, err := s.repo.ConfirmPayment(ctx, tx, repository.ConfirmPaymentParams{
		ID:          helper.PgUUID(req.PaymentID),
		Status:      constant.PaymentStatusConfirmed,
		ConfirmedAt: helper.PgTimestamp(now),
		ConfirmedBy: helper.PgUUID(req.ConfirmedBy),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "confirm - payment not found: "+req.PaymentID)

			return res, failure.NotFound("payment not found")
		}

		s.logger.Error(identifier, "confirm - failed to confirm payment: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	_, err = s.bookingRepo.UpdateBookingStatus(ctx, tx, bookingRepo.UpdateBookingStatusParams{
		ID:        payment.BookingID,
		Status:    constant.BookingStatusApproved,
		UpdatedAt: helper.PgTimestamp(now),
	})
	if err != nil {
		s.logger.Error(identifier, "confirm - failed to approve booking: %w", err)

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "confirm - error committing transaction: "+err.Error())

		return res, failure.InternalErrorFromString(constant.MsgInternalError)
	}

	res = res.FromModel(payment)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetPaymentKey, req.PaymentID)); err != nil {
			s.logger.Error(identifier, "confirm - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetPaymentsKey, "*")); err != nil {
			s.logger.Error(identifier, "confirm - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey("bookings", "*")); err != nil {
			s.logger.Error(identifier, "confirm - failed to clear bookings cache: %w", err)
		}
	}()

	return res, nil
}

func (s *paymentService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetPaymentById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound("payment not found")
		}

		s.logger.Error(identifier, "delete - failed to get payment: %w", err)

		return err
	}

	err = s.repo.DeletePayment(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete payment: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetPaymentKey, id)); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetPaymentsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountPaymentsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}
