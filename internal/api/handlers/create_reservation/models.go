package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-CourtReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserPhone string `json:"userPhone"` // "+420123456789"
	UserName  string `json:"userName"`
	CourtID   int64  `json:"courtId"`
	StartTime string `json:"startTime"` // RFC 3339, "2025-01-14T10:00:00Z"
	EndTime   string `json:"endTime"`   // RFC 3339
	GameType  string `json:"gameType"`  // "SINGLE" | "DOUBLE"
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserPhone: r.UserPhone,
		UserName:  r.UserName,
		CourtID:   r.CourtID,
		StartTime: startTime,
		EndTime:   endTime,
		GameType:  domain.GameType(r.GameType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		CourtID:   resp.CourtID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		GameType:  resp.GameType,
		Price:     resp.Price,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
