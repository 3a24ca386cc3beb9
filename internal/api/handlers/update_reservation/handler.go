package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-CourtReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC 3339"
	msgReservationNotFound  = "бронирование не найдено"
	msgTimeConflict         = "интервал пересекается с существующим бронированием"
	msgCourtNotFound        = "корт не найден"
	msgSurfaceTypeNotFound  = "тип покрытия корта не найден"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%d - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/%d - Failed to parse request times: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrTimeConflict):
			h.logger.Warn("PUT /reservations/%d - Time conflict: court_id=%d", reservationID, req.CourtID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, updateReservation.ErrCourtNotFound):
			h.logger.Warn("PUT /reservations/%d - Court not found: court_id=%d", reservationID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateReservation.ErrSurfaceTypeNotFound):
			h.logger.Warn("PUT /reservations/%d - Surface type not found: court_id=%d", reservationID, req.CourtID)
			handlers.RespondNotFound(w, msgSurfaceTypeNotFound)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/%d - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/%d - Failed to update reservation: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%d - Reservation updated successfully: court_id=%d, price=%.2f",
		result.ID, result.CourtID, result.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
