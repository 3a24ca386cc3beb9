package surface_types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtReservationService/internal/service/surfacetypes"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidSurfaceTypeID = "некорректный ID типа покрытия"
	msgSurfaceTypeNotFound  = "тип покрытия не найден"
	msgDuplicateName        = "тип покрытия с таким именем уже существует"
	msgInvalidInput         = "некорректные данные типа покрытия"
)

type Handler struct {
	service SurfaceTypeService
	logger  Logger
}

func NewHandler(service SurfaceTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/surface-types
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SurfaceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /surface-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Save(r.Context(), req.ToDomain(0))
	if err != nil {
		h.respondSaveError(w, "POST /surface-types", err)
		return
	}

	h.logger.Info("POST /surface-types - Surface type created: id=%d name=%q", created.ID, created.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/surface-types/{surfaceTypeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req SurfaceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /surface-types/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Save(r.Context(), req.ToDomain(id))
	if err != nil {
		h.respondSaveError(w, "PUT /surface-types", err)
		return
	}

	h.logger.Info("PUT /surface-types/%d - Surface type updated: name=%q", id, updated.Name)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Get GET /api/v1/surface-types/{surfaceTypeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	surfaceType, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, surfacetypes.ErrSurfaceTypeNotFound) {
			handlers.RespondNotFound(w, msgSurfaceTypeNotFound)
			return
		}
		h.logger.Error("GET /surface-types/%d - Failed to get surface type: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(surfaceType))
}

// List GET /api/v1/surface-types
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	surfaceTypes, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /surface-types - Failed to list surface types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(surfaceTypes))
}

// Delete DELETE /api/v1/surface-types/{surfaceTypeId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, surfacetypes.ErrSurfaceTypeNotFound) {
			handlers.RespondNotFound(w, msgSurfaceTypeNotFound)
			return
		}
		h.logger.Error("DELETE /surface-types/%d - Failed to delete surface type: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// DeleteAll DELETE /api/v1/surface-types
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.logger.Error("DELETE /surface-types - Failed to delete surface types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["surfaceTypeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSurfaceTypeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondSaveError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, surfacetypes.ErrDuplicateName):
		h.logger.Warn("%s - Duplicate surface type name: %v", route, err)
		handlers.RespondConflict(w, msgDuplicateName)

	case errors.Is(err, surfacetypes.ErrSurfaceTypeNotFound):
		h.logger.Warn("%s - Surface type not found: %v", route, err)
		handlers.RespondNotFound(w, msgSurfaceTypeNotFound)

	case errors.Is(err, surfacetypes.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed to save surface type: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
