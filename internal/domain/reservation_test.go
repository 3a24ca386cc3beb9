package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, minute int) time.Time {
	return time.Date(2025, 1, 14, hour, minute, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	reservation := &Reservation{
		StartTime: ts(10, 0),
		EndTime:   ts(11, 0),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical interval",
			start: ts(10, 0),
			end:   ts(11, 0),
			want:  true,
		},
		{
			name:  "partial overlap at the end",
			start: ts(10, 30),
			end:   ts(11, 30),
			want:  true,
		},
		{
			name:  "partial overlap at the start",
			start: ts(9, 30),
			end:   ts(10, 30),
			want:  true,
		},
		{
			name:  "new interval inside existing",
			start: ts(10, 15),
			end:   ts(10, 45),
			want:  true,
		},
		{
			name:  "existing interval inside new",
			start: ts(9, 0),
			end:   ts(12, 0),
			want:  true,
		},
		{
			name:  "touching at the end does not overlap",
			start: ts(11, 0),
			end:   ts(12, 0),
			want:  false,
		},
		{
			name:  "touching at the start does not overlap",
			start: ts(9, 0),
			end:   ts(10, 0),
			want:  false,
		},
		{
			name:  "fully before",
			start: ts(8, 0),
			end:   ts(9, 0),
			want:  false,
		},
		{
			name:  "fully after",
			start: ts(12, 0),
			end:   ts(13, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Overlaps(tt.start, tt.end))
		})
	}
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name           string
		pricePerMinute float64
		gameType       GameType
		start          time.Time
		end            time.Time
		want           float64
	}{
		{
			name:           "single game one hour",
			pricePerMinute: 5.0,
			gameType:       GameTypeSingle,
			start:          ts(10, 0),
			end:            ts(11, 0),
			want:           300.0,
		},
		{
			name:           "double game one hour",
			pricePerMinute: 5.0,
			gameType:       GameTypeDouble,
			start:          ts(10, 0),
			end:            ts(11, 0),
			want:           450.0,
		},
		{
			name:           "fractional minutes truncated",
			pricePerMinute: 2.0,
			gameType:       GameTypeSingle,
			start:          ts(10, 0),
			end:            ts(10, 30).Add(45 * time.Second),
			want:           60.0,
		},
		{
			name:           "interval shorter than a minute is free",
			pricePerMinute: 10.0,
			gameType:       GameTypeDouble,
			start:          ts(10, 0),
			end:            ts(10, 0).Add(59 * time.Second),
			want:           0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.pricePerMinute, tt.gameType, tt.start, tt.end)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestGameType(t *testing.T) {
	assert.True(t, GameTypeSingle.Valid())
	assert.True(t, GameTypeDouble.Valid())
	assert.False(t, GameType("TRIPLE").Valid())
	assert.False(t, GameType("").Valid())

	assert.Equal(t, 1.0, GameTypeSingle.Multiplier())
	assert.Equal(t, 1.5, GameTypeDouble.Multiplier())
}

func TestReservation_DurationMinutes(t *testing.T) {
	reservation := &Reservation{
		StartTime: ts(10, 0),
		EndTime:   ts(11, 30).Add(20 * time.Second),
	}
	assert.Equal(t, int64(90), reservation.DurationMinutes())
}
