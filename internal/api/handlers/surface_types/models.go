package surface_types

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// SurfaceTypeRequest HTTP request model
type SurfaceTypeRequest struct {
	Name           string  `json:"name"`
	PricePerMinute float64 `json:"pricePerMinute"`
}

// SurfaceTypeResponse HTTP response model
type SurfaceTypeResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	PricePerMinute float64 `json:"pricePerMinute"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *SurfaceTypeRequest) ToDomain(id int64) *domain.SurfaceType {
	return &domain.SurfaceType{
		ID:             id,
		Name:           r.Name,
		PricePerMinute: r.PricePerMinute,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(surfaceType *domain.SurfaceType) *SurfaceTypeResponse {
	return &SurfaceTypeResponse{
		ID:             surfaceType.ID,
		Name:           surfaceType.Name,
		PricePerMinute: surfaceType.PricePerMinute,
		CreatedAt:      surfaceType.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      surfaceType.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(surfaceTypes []*domain.SurfaceType) []*SurfaceTypeResponse {
	result := make([]*SurfaceTypeResponse, 0, len(surfaceTypes))
	for _, surfaceType := range surfaceTypes {
		result = append(result, FromDomain(surfaceType))
	}
	return result
}
