package helper

import (
	"math/big"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
	"github.com/jackc/pgx/v5/pgtype"
)

const decimalBase = 10

func PgBool(b bool) pgtype.Bool {
	return pgtype.Bool{
		Bool:  b,
		Valid: true,
	}
}

// PgString converts a string to pgtype.Text
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  true,
	}
}

// PgInt64 converts an int64 to pgtype.Numeric
func PgInt64(i int64) pgtype.Numeric {
	bigInt := new(big.Int).SetInt64(i)

	return pgtype.Numeric{
		Int:   bigInt,
		Valid: true,
	}
}

// Int64FromPg converts a pgtype.Numeric to an int64
func Int64FromPg(n pgtype.Numeric) int64 {
	if !n.Valid || n.Int == nil {
		return 0
	}

	if n.Exp != 0 {
		result := new(big.Int).Set(n.Int)

		if n.Exp < 0 {
			divisor := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(int64(-n.Exp)), nil)
			result = result.Div(result, divisor)
		} else {
			multiplier := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(int64(n.Exp)), nil)
			result = result.Mul(result, multiplier)
		}

		return result.Int64()
	}

	return n.Int.Int64()
}

// PgPercent converts a percentage in hundredths of a percent (1525 -> 15.25%)
// to a two-decimal pgtype.Numeric.
func PgPercent(hundredths int64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   new(big.Int).SetInt64(hundredths),
		Exp:   -2,
		Valid: true,
	}
}

// PercentFromPg converts a numeric(5,2) percentage column back to hundredths
// of a percent, keeping the two stored decimal places exact.
func PercentFromPg(n pgtype.Numeric) int64 {
	if !n.Valid || n.Int == nil {
		return 0
	}

	result := new(big.Int).Set(n.Int)
	exp := int64(n.Exp) + 2

	if exp < 0 {
		divisor := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(-exp), nil)
		result = result.Div(result, divisor)
	} else if exp > 0 {
		multiplier := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(exp), nil)
		result = result.Mul(result, multiplier)
	}

	return result.Int64()
}

// PgUUID converts a string UUID to pgtype.UUID
func PgUUID(id string) pgtype.UUID {
	var uuid pgtype.UUID

	err := uuid.Scan(id)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}

	return uuid
}

// PgDate converts a time.Time to pgtype.Date.
func PgDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  t,
		Valid: true,
	}
}

// PgDateFromString converts a "2006-01-02" date string to pgtype.Date,
// normalized to UTC midnight.
func PgDateFromString(date string) (pgtype.Date, error) {
	normalized, err := NormalizeDateUTC(date)
	if err != nil {
		return pgtype.Date{Valid: false}, err
	}

	return PgDate(normalized), nil
}

// PgTimeFromMinutes converts minutes since midnight to pgtype.Time.
func PgTimeFromMinutes(minutes int) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(minutes) * constant.SecondsPerMinute * constant.MicrosecondsPerSec,
		Valid:        true,
	}
}

// MinutesFromPgTime converts a pgtype.Time back to minutes since midnight.
func MinutesFromPgTime(t pgtype.Time) int {
	if !t.Valid {
		return 0
	}

	return int(t.Microseconds / (constant.SecondsPerMinute * constant.MicrosecondsPerSec))
}

// PgTimeToString renders a pgtype.Time as "15:04".
func PgTimeToString(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}

	return ClockFromMinutes(MinutesFromPgTime(t))
}

func BoolFromPg(b pgtype.Bool) bool {
	if !b.Valid {
		return false
	}

	return b.Bool
}

// PgTimestamp converts a time.Time object to pgtype.Timestamp
func PgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:  t,
		Valid: true,
	}
}
