package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
)

// AdminBasicAuth пропускает только запросы с учетными данными администратора
func AdminBasicAuth(checker CredentialChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				handlers.RespondUnauthorized(w)
				return
			}

			if !checker.CheckCredentials(username, password) {
				logger.Warn("%s %s - wrong admin credentials for user=%q", r.Method, r.URL.Path, username)
				handlers.RespondForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
