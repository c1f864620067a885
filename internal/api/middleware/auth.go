package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	isManagerKey contextKey = "isManager"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleManager = "manager"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth middleware извлекает идентификацию пользователя из заголовков.
// Аутентификацию выполняет API gateway, сервису доверенно передаются
// X-User-ID и опционально X-User-Role.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isManagerKey, r.Header.Get(headerUserRole) == roleManager)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsManager возвращает true, если запрос пришел от менеджера кондоминиума
func IsManager(ctx context.Context) bool {
	isManager, ok := ctx.Value(isManagerKey).(bool)
	return ok && isManager
}
