package reservations

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	CourtID   int64   `json:"courtId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	GameType  string  `json:"gameType"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(reservation *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		CourtID:   reservation.CourtID,
		StartTime: reservation.StartTime.Format(time.RFC3339),
		EndTime:   reservation.EndTime.Format(time.RFC3339),
		GameType:  string(reservation.GameType),
		Price:     reservation.Price,
		CreatedAt: reservation.CreatedAt.Format(time.RFC3339),
		UpdatedAt: reservation.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(reservations []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, FromDomain(reservation))
	}
	return result
}
