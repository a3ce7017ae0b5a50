package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"cadcam-storefront/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				m.log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				}).Errorf("Recovered from panic: %v", v)

				if !rec.wroteHeader {
					response.InternalServerError(rec, "", fmt.Errorf("panic: %v", v))
				}
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
