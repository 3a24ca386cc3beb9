package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-CourtReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC 3339"
	msgTimeConflict        = "интервал пересекается с существующим бронированием"
	msgCourtNotFound       = "корт не найден"
	msgSurfaceTypeNotFound = "тип покрытия корта не найден"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: court_id=%d, phone=%s", req.CourtID, req.UserPhone)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrSurfaceTypeNotFound):
			h.logger.Warn("POST /reservations - Surface type not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgSurfaceTypeNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: court_id=%d, phone=%s, error=%v",
				req.CourtID, req.UserPhone, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: court_id=%d, error=%v",
				req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, court_id=%d, price=%.2f",
		result.ID, result.CourtID, result.Price)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
