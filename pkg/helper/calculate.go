package helper

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
)

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// Overlaps reports whether two half-open intervals [existingStart, existingEnd)
// and [newStart, newEnd) on the same field and date share at least one minute.
// Touching intervals (newStart == existingEnd or newEnd == existingStart) do
// not overlap, so back-to-back bookings are allowed.
func Overlaps(existingStart, existingEnd, newStart, newEnd int) bool {
	return newStart < existingEnd && newEnd > existingStart
}

// CalculateDurationHours returns the billable duration in whole hours for a
// time window given in minutes of day. Partial hours round up: 10:00-11:30
// bills as 2 hours. Windows that do not extend past their start return 0.
func CalculateDurationHours(startMinutes, endMinutes int) int {
	span := endMinutes - startMinutes
	if span <= 0 {
		return 0
	}

	return (span + constant.MinutesPerHour - 1) / constant.MinutesPerHour
}

// CalculateTotalPrice multiplies an hourly rate in minor currency units by a
// whole-hour duration. All money math stays in int64 to avoid float drift.
func CalculateTotalPrice(pricePerHour int64, durationHours int) int64 {
	if pricePerHour <= 0 || durationHours <= 0 {
		return 0
	}

	return pricePerHour * int64(durationHours)
}

// CalculateDiscountAmount applies a percentage kept in hundredths of a percent
// (see constant.PercentScale) to a total in minor currency units.
func CalculateDiscountAmount(totalPrice, percentHundredths int64) int64 {
	if totalPrice <= 0 || percentHundredths <= 0 {
		return 0
	}

	return totalPrice * percentHundredths / (100 * constant.PercentScale)
}
