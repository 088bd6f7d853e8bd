package helper

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		want    int
		wantErr bool
	}{
		{name: "midnight", clock: "00:00", want: 0},
		{name: "morning", clock: "08:30", want: 510},
		{name: "last minute of day", clock: "23:59", want: 1439},
		{name: "missing leading zero", clock: "8:30", wantErr: true},
		{name: "out of range hour", clock: "24:00", wantErr: true},
		{name: "not a clock", clock: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", ClockFromMinutes(0))
	assert.Equal(t, "08:05", ClockFromMinutes(485))
	assert.Equal(t, "23:59", ClockFromMinutes(1439))
}

func TestNormalizeDateUTC(t *testing.T) {
	t.Run("pins to utc midnight", func(t *testing.T) {
		got, err := NormalizeDateUTC("2026-03-14")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := NormalizeDateUTC("14-03-2026")

		assert.Error(t, err)
	})
}

func TestTruncateToDayUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "drops time of day",
			in:   time.Date(2026, 3, 14, 18, 45, 12, 0, time.UTC),
			want: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "converts zone before truncating",
			in:   time.Date(2026, 3, 14, 2, 0, 0, 0, jakarta),
			want: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateToDayUTC(tt.in))
		})
	}
}

func TestPgTimeMinutesRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 510, 719, 1439} {
		assert.Equal(t, minutes, MinutesFromPgTime(PgTimeFromMinutes(minutes)))
	}
}

func TestPercentConversions(t *testing.T) {
	t.Run("hundredths survive the numeric round trip", func(t *testing.T) {
		for _, hundredths := range []int64{0, 1000, 1525, 10000} {
			assert.Equal(t, hundredths, PercentFromPg(PgPercent(hundredths)))
		}
	})

	t.Run("whole number percentage scales up", func(t *testing.T) {
		n := PgInt64(15)

		assert.Equal(t, int64(1500), PercentFromPg(n))
	})

	t.Run("invalid numeric reads as zero", func(t *testing.T) {
		assert.Equal(t, int64(0), PercentFromPg(pgtype.Numeric{}))
	})
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "field-reservation:cache:bookings", BuildCacheKey("bookings"))
	assert.Equal(t, "field-reservation:cache:bookings:*", BuildCacheKey("bookings", "*"))
}

func TestGenerateUniqueKey(t *testing.T) {
	key := GenerateUniqueKey(map[string]string{"page": "1", "limit": "10", "filter": ""})

	// Keys are sorted so the same arguments always produce the same key.
	assert.Equal(t, "filter=;limit=10;page=1;", key)
}
