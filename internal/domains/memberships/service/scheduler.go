package service

import (
	"context"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository"
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

// ExpireMemberships flips active memberships whose end date has passed to
// expired. A membership whose end date is today stays active until midnight.
func (s *SchedulerService) ExpireMemberships(ctx context.Context) (int64, error) {
	today := helper.TruncateToDayUTC(s.clock.Now())

	return s.repo.ExpireMemberships(ctx, s.db, repository.ExpireMembershipsParams{
		Now:           helper.PgDate(today),
		ExpiredStatus: constant.MembershipStatusExpired,
		ActiveStatus:  constant.MembershipStatusActive,
	})
}
