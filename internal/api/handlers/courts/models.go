package courts

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// CourtRequest HTTP request model
type CourtRequest struct {
	Name          string `json:"name"`
	SurfaceTypeID int64  `json:"surfaceTypeId"`
}

// CourtResponse HTTP response model
type CourtResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SurfaceTypeID int64  `json:"surfaceTypeId"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CourtRequest) ToDomain(id int64) *domain.Court {
	return &domain.Court{
		ID:            id,
		Name:          r.Name,
		SurfaceTypeID: r.SurfaceTypeID,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(court *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:            court.ID,
		Name:          court.Name,
		SurfaceTypeID: court.SurfaceTypeID,
		CreatedAt:     court.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     court.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(courts []*domain.Court) []*CourtResponse {
	result := make([]*CourtResponse, 0, len(courts))
	for _, court := range courts {
		result = append(result, FromDomain(court))
	}
	return result
}
