package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя
// Аутентификацию выполняет внешний шлюз, сюда приходит уже проверенный ID
const UserIDHeader = "X-User-ID"

const msgUserRequired = "требуется аутентификация"

type userCtxKey struct{}

// AuthMiddleware требует валидный заголовок с ID пользователя
// Вешается только на защищённые маршруты управления тенантом
func AuthMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - missing or malformed user id header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUserRequired)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID пользователя запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userCtxKey{}).(int64)
	return userID, ok
}
