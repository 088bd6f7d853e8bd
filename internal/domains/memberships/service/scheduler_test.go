package service

import (
	"context"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestSchedulerService_ExpireMemberships(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	// Mid-day instant: the comparison date must be the UTC day, not the
	// instant itself, so a membership ending today survives the sweep.
	now := time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("success: expires memberships ended before today", func(t *testing.T) {
		mockPgx, _ := pgxmock.NewPool()

		scheduler := NewSchedulerService(mockPgx, cfg, clock.NewFixed(now))

		mockPgx.ExpectExec("UPDATE memberships").
			WithArgs(helper.PgDate(today), constant.MembershipStatusExpired, constant.MembershipStatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		expired, err := scheduler.ExpireMemberships(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), expired)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}
