package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository Querier

type Querier interface {
	GetConflictingBookings(ctx context.Context, db DBTX, arg GetConflictingBookingsParams) ([]Booking, error)
	InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (Booking, error)
	GetBookingById(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error)
	GetBookingForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error)
	DeleteBooking(ctx context.Context, db DBTX, id pgtype.UUID) error
	GetBookingsByUserId(ctx context.Context, db DBTX, arg GetBookingsByUserIdParams) ([]Booking, error)
	CountBookingsByUserId(ctx context.Context, db DBTX, arg CountBookingsByUserIdParams) (int64, error)
	GetAllBookings(ctx context.Context, db DBTX, arg GetAllBookingsParams) ([]Booking, error)
	CountAllBookings(ctx context.Context, db DBTX, filter string) (int64, error)
	GetBookedTimeSlots(ctx context.Context, db DBTX, arg GetBookedTimeSlotsParams) ([]GetBookedTimeSlotsRow, error)
	UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (Booking, error)
	CompleteFinishedBookings(ctx context.Context, db DBTX, arg CompleteFinishedBookingsParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
