package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	base := func() *Request {
		return &Request{
			UserPhone: "+420123456789",
			UserName:  "Jan Novak",
			CourtID:   1,
			StartTime: time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 1, 14, 11, 0, 0, 0, time.UTC),
			GameType:  domain.GameTypeSingle,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *Request) {},
			wantErr: false,
		},
		{
			name:    "zero court id",
			mutate:  func(r *Request) { r.CourtID = 0 },
			wantErr: true,
		},
		{
			name:    "negative court id",
			mutate:  func(r *Request) { r.CourtID = -1 },
			wantErr: true,
		},
		{
			name:    "bad phone format",
			mutate:  func(r *Request) { r.UserPhone = "123456" },
			wantErr: true,
		},
		{
			name:    "name too short",
			mutate:  func(r *Request) { r.UserName = "Jo" },
			wantErr: true,
		},
		{
			name:    "zero start time",
			mutate:  func(r *Request) { r.StartTime = time.Time{} },
			wantErr: true,
		},
		{
			name:    "zero end time",
			mutate:  func(r *Request) { r.EndTime = time.Time{} },
			wantErr: true,
		},
		{
			name:    "end before start",
			mutate:  func(r *Request) { r.EndTime = r.StartTime.Add(-time.Hour) },
			wantErr: true,
		},
		{
			name:    "end equals start",
			mutate:  func(r *Request) { r.EndTime = r.StartTime },
			wantErr: true,
		},
		{
			name:    "unknown game type",
			mutate:  func(r *Request) { r.GameType = "TRIPLE" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []*domain.Reservation{
		{ID: 1, StartTime: time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 1, 14, 11, 0, 0, 0, time.UTC)},
		{ID: 2, StartTime: time.Date(2025, 1, 14, 14, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 1, 14, 15, 0, 0, 0, time.UTC)},
	}

	conflict := findConflict(existing,
		time.Date(2025, 1, 14, 14, 30, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC))
	assert.NotNil(t, conflict)
	assert.Equal(t, int64(2), conflict.ID)

	conflict = findConflict(existing,
		time.Date(2025, 1, 14, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC))
	assert.Nil(t, conflict)

	conflict = findConflict(nil,
		time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 11, 0, 0, 0, time.UTC))
	assert.Nil(t, conflict)
}
