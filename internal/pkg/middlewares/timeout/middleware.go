package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает время обработки одного запроса.
func Middleware(requestTimeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// базовый контекст запроса приходит из BaseContext сервера
			ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
