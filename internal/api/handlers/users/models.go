package users

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// UserRequest HTTP request model
type UserRequest struct {
	PhoneNumber string `json:"phoneNumber"` // "+420123456789"
	Name        string `json:"name"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UserRequest) ToDomain(id int64) *domain.User {
	return &domain.User{
		ID:          id,
		PhoneNumber: r.PhoneNumber,
		Name:        r.Name,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomain(user))
	}
	return result
}
