package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserPhone string          // Номер телефона клиента (+XXXXXXXXXXXX)
	UserName  string          // Имя клиента, используется только при неявном создании
	CourtID   int64           // ID корта
	StartTime time.Time       // Начало интервала
	EndTime   time.Time       // Конец интервала, строго позже начала
	GameType  domain.GameType // SINGLE или DOUBLE
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	UserID    int64     // ID пользователя (возможно, только что созданного)
	CourtID   int64     // ID корта
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
	GameType  string    // Тип игры
	Price     float64   // Цена, зафиксированная на момент создания
	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
