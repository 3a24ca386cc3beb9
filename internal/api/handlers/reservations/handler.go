package reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-CourtReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidCourtID       = "некорректный ID корта"
	msgReservationNotFound  = "бронирование не найдено"
	msgUserNotFound         = "пользователь не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/reservations/{reservationId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/%d - Failed to get reservation: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(reservation))
}

// List GET /api/v1/reservations
// Query-параметры: phoneNumber фильтрует по пользователю,
// upcoming=true оставляет только незакончившиеся бронирования
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phoneNumber")
	if phoneNumber == "" {
		reservations, err := h.service.GetAll(r.Context())
		if err != nil {
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromDomainList(reservations))
		return
	}

	upcoming := r.URL.Query().Get("upcoming") == "true"

	var result []*ReservationResponse
	if upcoming {
		list, listErr := h.service.GetUpcomingByUserPhone(r.Context(), phoneNumber)
		if listErr != nil {
			h.respondUserListError(w, phoneNumber, listErr)
			return
		}
		result = FromDomainList(list)
	} else {
		list, listErr := h.service.GetByUserPhone(r.Context(), phoneNumber)
		if listErr != nil {
			h.respondUserListError(w, phoneNumber, listErr)
			return
		}
		result = FromDomainList(list)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListByCourt GET /api/v1/courts/{courtId}/reservations
func (h *Handler) ListByCourt(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	reservations, err := h.service.GetByCourt(r.Context(), courtID)
	if err != nil {
		h.logger.Error("GET /courts/%d/reservations - Failed to list reservations: %v", courtID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(reservations))
}

// Delete DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("DELETE /reservations/%d - Failed to delete reservation: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// DeleteAll DELETE /api/v1/reservations
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.logger.Error("DELETE /reservations - Failed to delete reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondUserListError(w http.ResponseWriter, phoneNumber string, err error) {
	if errors.Is(err, reservationsService.ErrUserNotFound) {
		h.logger.Warn("GET /reservations?phoneNumber=%s - User not found", phoneNumber)
		handlers.RespondNotFound(w, msgUserNotFound)
		return
	}
	h.logger.Error("GET /reservations?phoneNumber=%s - Failed to list reservations: %v", phoneNumber, err)
	handlers.RespondInternalError(w)
}
