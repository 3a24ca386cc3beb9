package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// Request модель запроса на обновление бронирования
type Request struct {
	ReservationID int64           // ID обновляемого бронирования
	UserPhone     string          // Номер телефона клиента (+XXXXXXXXXXXX)
	UserName      string          // Имя клиента, используется только при неявном создании
	CourtID       int64           // ID корта
	StartTime     time.Time       // Начало интервала
	EndTime       time.Time       // Конец интервала, строго позже начала
	GameType      domain.GameType // SINGLE или DOUBLE
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64     // ID бронирования
	UserID    int64     // ID пользователя
	CourtID   int64     // ID корта
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
	GameType  string    // Тип игры
	Price     float64   // Цена, пересчитанная по текущему тарифу
	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
