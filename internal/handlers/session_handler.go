// Package handlers содержит HTTP-обработчики REST API сервера.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/yzx9/aim-server/internal/auth"
	"github.com/yzx9/aim-server/internal/middleware"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

// SessionHandler обрабатывает HTTP-запросы, связанные с аутентификацией:
// регистрацию пользователей и жизненный цикл сессии.
type SessionHandler struct {
	authService services.AuthService
}

// NewSessionHandler создает новый экземпляр SessionHandler.
func NewSessionHandler(as services.AuthService) *SessionHandler {
	return &SessionHandler{authService: as}
}

// Register обрабатывает POST запрос на регистрацию нового пользователя.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[SessionHandler:Register] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Password == "" {
		http.Error(w, "Имя пользователя и пароль не могут быть пустыми", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		log.Printf("[SessionHandler:Register] Ошибка регистрации '%s': %v", req.Name, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Create обрабатывает POST запрос на вход по паре id/пароль.
// В ответе - тройка access-токен, срок его действия и refresh-токен.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[SessionHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.UserID == 0 || req.Password == "" {
		http.Error(w, "Идентификатор пользователя и пароль не могут быть пустыми", http.StatusBadRequest)
		return
	}

	session, err := h.authService.LoginByPassword(r.Context(), req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Error(w, "Неверный идентификатор пользователя или пароль", http.StatusUnauthorized)
			return
		}
		log.Printf("[SessionHandler:Create] Внутренняя ошибка при входе пользователя %d: %v", req.UserID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(session))
}

// Get обрабатывает GET запрос на получение данных текущей сессии.
// Middleware кладет в контекст восстановленную сессию целиком.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		log.Printf("[SessionHandler:Get] Не удалось получить сессию из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	payload := session.AccessPayload
	writeJSON(w, http.StatusOK, models.IdentityResponse{
		SessionID: payload.SessionID,
		UserID:    payload.UserID,
		Username:  payload.Username,
		ExpireAt:  payload.ExpireAt,
	})
}

// Refresh обрабатывает PUT запрос на обновление сессии. Если в теле передан
// refresh-токен, по нему выпускается новая сессия. Иначе берется access-токен
// из заголовка Authorization и продлевается, когда его срок близок к концу.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[SessionHandler:Refresh] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.RefreshToken != "" {
		session, err := h.authService.RefreshAccessToken(r.Context(), req.RefreshToken)
		if err != nil {
			h.writeAuthError(w, "Refresh", err)
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse(session))
		return
	}

	accessToken, ok := middleware.BearerToken(r)
	if !ok {
		http.Error(w, "Требуется refresh-токен или заголовок Authorization", http.StatusUnauthorized)
		return
	}

	session, err := h.authService.LoginByAccessToken(accessToken)
	if err != nil {
		h.writeAuthError(w, "Refresh", err)
		return
	}
	if _, err = session.TryRefreshAccessToken(); err != nil {
		log.Printf("[SessionHandler:Refresh] Ошибка продления access-токена: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(session))
}

// Delete обрабатывает DELETE запрос на завершение сессии.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accessToken, ok := middleware.BearerToken(r)
	if !ok {
		http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.authService.Logout(accessToken); err != nil {
		h.writeAuthError(w, "Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) writeAuthError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, services.ErrInvalidToken) {
		http.Error(w, "Невалидный токен", http.StatusUnauthorized)
		return
	}
	log.Printf("[SessionHandler:%s] Внутренняя ошибка: %v", op, err)
	http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
}

func tokenResponse(session *auth.Session) models.TokenResponse {
	return models.TokenResponse{
		AccessToken:  session.AccessToken,
		ExpireAt:     session.AccessPayload.ExpireAt,
		RefreshToken: session.RefreshToken,
	}
}

// writeJSON кодирует ответ в JSON с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}
