package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie cookie с идентификатором сессии клиента
const SessionCookie = "scheduler_session"

type sessionIDKey struct{}

// Session привязывает запрос к сессии клиента.
// Без валидного cookie клиент получает новую сессию
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				id = cookie.Value
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionIDKey{}, id)))
	})
}

// GetSessionID возвращает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
