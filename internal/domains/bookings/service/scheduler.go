package service

import (
	"context"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
)

type SchedulerService struct {
	db    postgres.PgxIface
	repo  *repository.Queries
	cfg   *config.Config
	clock clock.Clock
}

func NewSchedulerService(db postgres.PgxIface, cfg *config.Config, clk clock.Clock) *SchedulerService {
	return &SchedulerService{
		db:    db,
		repo:  repository.New(),
		cfg:   cfg,
		clock: clk,
	}
}

// CompleteFinishedBookings marks approved bookings whose end time has passed
// as completed. Returns the number of bookings moved.
func (s *SchedulerService) CompleteFinishedBookings(ctx context.Context) (int64, error) {
	now := helper.PgTimestamp(s.clock.Now())

	return s.repo.CompleteFinishedBookings(ctx, s.db, repository.CompleteFinishedBookingsParams{
		Now:       now,
		UpdatedAt: now,
		NewStatus: constant.BookingStatusCompleted,
		OldStatus: constant.BookingStatusApproved,
	})
}
