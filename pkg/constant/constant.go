package constant

import (
	"time"
)

const (
	CacheParentKey = "field-reservation"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// LockingBookingStatuses are the statuses that hold a time slot against
// new admissions. Rejected and cancelled bookings free the slot.
var LockingBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusApproved,
	BookingStatusCompleted,
}

const (
	FieldStatusAvailable   = "available"
	FieldStatusMaintenance = "maintenance"
	FieldStatusUnavailable = "unavailable"
)

const (
	MembershipTypeRegular = "regular"
	MembershipTypePremium = "premium"
	MembershipTypeVIP     = "vip"

	MembershipStatusActive  = "active"
	MembershipStatusExpired = "expired"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodEWallet  = "ewallet"

	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

const (
	UserRoleCustomer = "customer"
	UserRoleAdmin    = "admin"
)

// Stable rejection messages for booking admission. The frontend keys off
// these to decide how to surface each rejection kind.
const (
	MsgInvalidDuration  = "end time must be greater than start time"
	MsgScheduleConflict = "field is already booked for the requested time"
	MsgFieldNotFound    = "field not found"
	MsgFieldUnavailable = "field is not available for booking"
	MsgUserNotFound     = "user not found"
	MsgInternalError    = "an error occurred while creating the booking"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	MinutesPerHour     = 60
	SecondsPerMinute   = 60
	MicrosecondsPerSec = 1000000

	// PercentScale is the fixed-point scale for discount percentages:
	// values are stored in hundredths of a percent (15.25% -> 1525).
	PercentScale = 100
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)
