package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtReservationService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-CourtReservationService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgDuplicatePhone     = "пользователь с таким номером телефона уже существует"
	msgInvalidInput       = "некорректные данные пользователя"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Save(r.Context(), req.ToDomain(0))
	if err != nil {
		h.respondSaveError(w, "POST /users", err)
		return
	}

	h.logger.Info("POST /users - User created: id=%d phone=%s", created.ID, created.PhoneNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Save(r.Context(), req.ToDomain(id))
	if err != nil {
		h.respondSaveError(w, "PUT /users", err)
		return
	}

	h.logger.Info("PUT /users/%d - User updated: phone=%s", id, updated.PhoneNumber)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Get GET /api/v1/users/{userId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/%d - Failed to get user: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(user))
}

// List GET /api/v1/users
// При наличии query-параметра phoneNumber ищет одного пользователя по номеру
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if phoneNumber := r.URL.Query().Get("phoneNumber"); phoneNumber != "" {
		user, err := h.service.GetByPhoneNumber(r.Context(), phoneNumber)
		if err != nil {
			if errors.Is(err, usersService.ErrUserNotFound) {
				handlers.RespondNotFound(w, msgUserNotFound)
				return
			}
			h.logger.Error("GET /users?phoneNumber=%s - Failed to get user: %v", phoneNumber, err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromDomain(user))
		return
	}

	users, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(users))
}

// Delete DELETE /api/v1/users/{userId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("DELETE /users/%d - Failed to delete user: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// DeleteAll DELETE /api/v1/users
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.logger.Error("DELETE /users - Failed to delete users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondSaveError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, usersService.ErrDuplicatePhoneNumber):
		h.logger.Warn("%s - Duplicate phone number: %v", route, err)
		handlers.RespondConflict(w, msgDuplicatePhone)

	case errors.Is(err, usersService.ErrUserNotFound):
		h.logger.Warn("%s - User not found: %v", route, err)
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, usersService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed to save user: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
