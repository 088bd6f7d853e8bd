package service

import (
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
)

// membershipInfo is the slice of a user's membership the price calculation
// needs. DiscountHundredths keeps the stored two-decimal percentage exact
// (15.25% -> 1525).
type membershipInfo struct {
	Exists             bool
	Status             string
	DiscountHundredths int64
	EndDate            time.Time
}

func membershipFromRow(row repository.GetUserWithMembershipRow) membershipInfo {
	if !row.MembershipID.Valid {
		return membershipInfo{}
	}

	return membershipInfo{
		Exists:             true,
		Status:             row.MembershipStatus.String,
		DiscountHundredths: helper.PercentFromPg(row.DiscountPercentage),
		EndDate:            row.EndDate.Time,
	}
}

// priceQuote is the computed billing breakdown for an admitted booking.
type priceQuote struct {
	DurationHours  int
	TotalPrice     int64
	DiscountAmount int64
	FinalPrice     int64
}

// computePriceQuote derives duration and price for a requested window. The
// duration bills in whole hours, rounding partial hours up. A membership
// discount applies only while the membership is active and its end date has
// not passed. The comparison is at day granularity, so a membership still
// discounts bookings made on its last day.
func computePriceQuote(startMinutes, endMinutes int, pricePerHour int64, m membershipInfo, now time.Time) (priceQuote, error) {
	durationHours := helper.CalculateDurationHours(startMinutes, endMinutes)
	if durationHours <= 0 {
		return priceQuote{}, failure.BadRequestFromString(constant.MsgInvalidDuration)
	}

	totalPrice := helper.CalculateTotalPrice(pricePerHour, durationHours)

	var discountAmount int64
	today := helper.TruncateToDayUTC(now)
	if m.Exists && m.Status == constant.MembershipStatusActive && !m.EndDate.Before(today) {
		discountAmount = helper.CalculateDiscountAmount(totalPrice, m.DiscountHundredths)
	}

	finalPrice := totalPrice - discountAmount
	if finalPrice < 0 {
		finalPrice = 0
	}

	return priceQuote{
		DurationHours:  durationHours,
		TotalPrice:     totalPrice,
		DiscountAmount: discountAmount,
		FinalPrice:     finalPrice,
	}, nil
}
