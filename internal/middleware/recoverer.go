package middleware

import (
	"net/http"
	"runtime/debug"

	"leadtrack/internal/logs"
	"leadtrack/internal/models"
)

// Recoverer catches a panic in a handler, logs it with the stack
// and answers 500 with the standard JSON envelope. No internal detail
// reaches the client; the reqid in the log is enough to correlate.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqid := GetRequestID(r)
				logs.Logger.Errorf("panic: %v reqid=%s uri=%s method=%s\nstack:\n%s",
					rec, reqid, r.RequestURI, r.Method, string(debug.Stack()))
				models.WriteMessage(w, http.StatusInternalServerError, "Server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
