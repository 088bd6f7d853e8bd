package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		existing  [2]int
		requested [2]int
		want      bool
	}{
		{
			name:      "identical windows overlap",
			existing:  [2]int{600, 720},
			requested: [2]int{600, 720},
			want:      true,
		},
		{
			name:      "partial overlap at the end",
			existing:  [2]int{600, 720},
			requested: [2]int{660, 780},
			want:      true,
		},
		{
			name:      "partial overlap at the start",
			existing:  [2]int{600, 720},
			requested: [2]int{540, 660},
			want:      true,
		},
		{
			name:      "requested contains existing",
			existing:  [2]int{600, 720},
			requested: [2]int{540, 780},
			want:      true,
		},
		{
			name:      "existing contains requested",
			existing:  [2]int{540, 780},
			requested: [2]int{600, 720},
			want:      true,
		},
		{
			name:      "one shared minute overlaps",
			existing:  [2]int{600, 720},
			requested: [2]int{719, 780},
			want:      true,
		},
		{
			name:      "back to back after existing does not overlap",
			existing:  [2]int{600, 720},
			requested: [2]int{720, 780},
			want:      false,
		},
		{
			name:      "back to back before existing does not overlap",
			existing:  [2]int{600, 720},
			requested: [2]int{540, 600},
			want:      false,
		},
		{
			name:      "disjoint windows do not overlap",
			existing:  [2]int{600, 720},
			requested: [2]int{780, 840},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existing[0], tt.existing[1], tt.requested[0], tt.requested[1])
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric in the two intervals.
			mirrored := Overlaps(tt.requested[0], tt.requested[1], tt.existing[0], tt.existing[1])
			assert.Equal(t, tt.want, mirrored)
		})
	}
}

func TestCalculateDurationHours(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  int
	}{
		{name: "exact single hour", start: 600, end: 660, want: 1},
		{name: "exact two hours", start: 600, end: 720, want: 2},
		{name: "ninety minutes rounds up", start: 600, end: 690, want: 2},
		{name: "one minute rounds up", start: 600, end: 601, want: 1},
		{name: "zero span", start: 600, end: 600, want: 0},
		{name: "negative span", start: 660, end: 600, want: 0},
		{name: "full day", start: 0, end: 1440, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDurationHours(tt.start, tt.end))
		})
	}
}

func TestCalculateTotalPrice(t *testing.T) {
	assert.Equal(t, int64(100000), CalculateTotalPrice(50000, 2))
	assert.Equal(t, int64(50000), CalculateTotalPrice(50000, 1))
	assert.Equal(t, int64(0), CalculateTotalPrice(50000, 0))
	assert.Equal(t, int64(0), CalculateTotalPrice(0, 3))
	assert.Equal(t, int64(0), CalculateTotalPrice(-100, 3))
}

func TestCalculateDiscountAmount(t *testing.T) {
	tests := []struct {
		name              string
		totalPrice        int64
		percentHundredths int64
		want              int64
	}{
		{name: "fifteen percent", totalPrice: 100000, percentHundredths: 1500, want: 15000},
		{name: "two decimal percentage stays exact", totalPrice: 100000, percentHundredths: 1525, want: 15250},
		{name: "truncates toward zero", totalPrice: 99999, percentHundredths: 1000, want: 9999},
		{name: "full discount", totalPrice: 80000, percentHundredths: 10000, want: 80000},
		{name: "zero percentage", totalPrice: 100000, percentHundredths: 0, want: 0},
		{name: "zero total", totalPrice: 0, percentHundredths: 1500, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDiscountAmount(tt.totalPrice, tt.percentHundredths))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(3, 0))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 1, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(5, 0))
}
