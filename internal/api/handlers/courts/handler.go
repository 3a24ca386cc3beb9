package courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	courtsService "github.com/m04kA/SMC-CourtReservationService/internal/service/courts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCourtID     = "некорректный ID корта"
	msgCourtNotFound      = "корт не найден"
	msgDuplicateName      = "корт с таким именем уже существует"
	msgUnknownSurfaceType = "указан несуществующий тип покрытия"
	msgInvalidInput       = "некорректные данные корта"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/courts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Save(r.Context(), req.ToDomain(0))
	if err != nil {
		h.respondSaveError(w, "POST /courts", err)
		return
	}

	h.logger.Info("POST /courts - Court created: id=%d name=%q", created.ID, created.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/courts/{courtId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Save(r.Context(), req.ToDomain(id))
	if err != nil {
		h.respondSaveError(w, "PUT /courts", err)
		return
	}

	h.logger.Info("PUT /courts/%d - Court updated: name=%q", id, updated.Name)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Get GET /api/v1/courts/{courtId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	court, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, courtsService.ErrCourtNotFound) {
			handlers.RespondNotFound(w, msgCourtNotFound)
			return
		}
		h.logger.Error("GET /courts/%d - Failed to get court: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(court))
}

// List GET /api/v1/courts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(courts))
}

// Delete DELETE /api/v1/courts/{courtId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, courtsService.ErrCourtNotFound) {
			handlers.RespondNotFound(w, msgCourtNotFound)
			return
		}
		h.logger.Error("DELETE /courts/%d - Failed to delete court: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// DeleteAll DELETE /api/v1/courts
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.logger.Error("DELETE /courts - Failed to delete courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondSaveError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, courtsService.ErrDuplicateName):
		h.logger.Warn("%s - Duplicate court name: %v", route, err)
		handlers.RespondConflict(w, msgDuplicateName)

	case errors.Is(err, courtsService.ErrUnknownSurfaceType):
		h.logger.Warn("%s - Unknown surface type: %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownSurfaceType)

	case errors.Is(err, courtsService.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found: %v", route, err)
		handlers.RespondNotFound(w, msgCourtNotFound)

	case errors.Is(err, courtsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed to save court: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
