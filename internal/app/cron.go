package app

import (
	"context"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	bookingService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/service"
	membershipService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/service"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
	"github.com/robfig/cron/v3"
)

func Cron(db postgres.PgxIface, cfg *config.Config, l logger.Interface, clk clock.Clock) {
	bookingScheduler := bookingService.NewSchedulerService(db, cfg, clk)
	membershipScheduler := membershipService.NewSchedulerService(db, cfg, clk)

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsCompletion, func() {
		ctx := context.WithoutCancel(context.Background())

		completed, err := bookingScheduler.CompleteFinishedBookings(ctx)
		if err != nil {
			l.Error("Cron job - CompleteFinishedBookings failed: %v", err)

			return
		}

		if completed > 0 {
			l.Info("Cron job - CompleteFinishedBookings: %d bookings completed", completed)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	_, err = c.AddFunc(cfg.Schedule.MembershipExpiration, func() {
		ctx := context.WithoutCancel(context.Background())

		expired, err := membershipScheduler.ExpireMemberships(ctx)
		if err != nil {
			l.Error("Cron job - ExpireMemberships failed: %v", err)

			return
		}

		if expired > 0 {
			l.Info("Cron job - ExpireMemberships: %d memberships expired", expired)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	c.Start()
}
