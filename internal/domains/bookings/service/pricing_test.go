package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestComputePriceQuote(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 30, 0, 0, time.UTC)

	activeMembership := membershipInfo{
		Exists:             true,
		Status:             constant.MembershipStatusActive,
		DiscountHundredths: 1500,
		EndDate:            time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("no membership pays full price", func(t *testing.T) {
		quote, err := computePriceQuote(600, 720, 50000, membershipInfo{}, now)

		assert.NoError(t, err)
		assert.Equal(t, 2, quote.DurationHours)
		assert.Equal(t, int64(100000), quote.TotalPrice)
		assert.Equal(t, int64(0), quote.DiscountAmount)
		assert.Equal(t, int64(100000), quote.FinalPrice)
	})

	t.Run("active membership discounts the total", func(t *testing.T) {
		quote, err := computePriceQuote(600, 720, 50000, activeMembership, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), quote.TotalPrice)
		assert.Equal(t, int64(15000), quote.DiscountAmount)
		assert.Equal(t, int64(85000), quote.FinalPrice)
	})

	t.Run("partial hour bills as a full hour", func(t *testing.T) {
		quote, err := computePriceQuote(600, 690, 50000, membershipInfo{}, now)

		assert.NoError(t, err)
		assert.Equal(t, 2, quote.DurationHours)
		assert.Equal(t, int64(100000), quote.TotalPrice)
	})

	t.Run("membership ending today still discounts", func(t *testing.T) {
		m := activeMembership
		m.EndDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		quote, err := computePriceQuote(600, 720, 50000, m, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(15000), quote.DiscountAmount)
	})

	t.Run("membership ended yesterday does not discount", func(t *testing.T) {
		m := activeMembership
		m.EndDate = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

		quote, err := computePriceQuote(600, 720, 50000, m, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), quote.DiscountAmount)
		assert.Equal(t, int64(100000), quote.FinalPrice)
	})

	t.Run("expired status does not discount regardless of end date", func(t *testing.T) {
		m := activeMembership
		m.Status = constant.MembershipStatusExpired

		quote, err := computePriceQuote(600, 720, 50000, m, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), quote.DiscountAmount)
	})

	t.Run("full discount clamps final price at zero", func(t *testing.T) {
		m := activeMembership
		m.DiscountHundredths = 10000

		quote, err := computePriceQuote(600, 720, 50000, m, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), quote.DiscountAmount)
		assert.Equal(t, int64(0), quote.FinalPrice)
	})

	t.Run("empty window is an invalid duration", func(t *testing.T) {
		_, err := computePriceQuote(600, 600, 50000, membershipInfo{}, now)

		assert.Error(t, err)
		assert.Equal(t, constant.MsgInvalidDuration, err.Error())
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestMembershipFromRow(t *testing.T) {
	t.Run("missing membership", func(t *testing.T) {
		m := membershipFromRow(repository.GetUserWithMembershipRow{})

		assert.False(t, m.Exists)
	})

	t.Run("joined membership columns map through", func(t *testing.T) {
		endDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		m := membershipFromRow(repository.GetUserWithMembershipRow{
			MembershipID:       helper.PgUUID(uuid.NewString()),
			MembershipStatus:   pgtype.Text{String: constant.MembershipStatusActive, Valid: true},
			DiscountPercentage: helper.PgPercent(1525),
			EndDate:            pgtype.Date{Time: endDate, Valid: true},
		})

		assert.True(t, m.Exists)
		assert.Equal(t, constant.MembershipStatusActive, m.Status)
		assert.Equal(t, int64(1525), m.DiscountHundredths)
		assert.Equal(t, endDate, m.EndDate)
	})
}
