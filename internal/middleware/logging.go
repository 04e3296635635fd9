package middleware

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/100adim/project-cost-manager/internal/service"
)

// AccessLog writes one logrus entry per request
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		entry := logrus.WithFields(logrus.Fields{
			"request_id":  GetRequestID(r.Context()),
			"method":      r.Method,
			"url":         r.URL.RequestURI(),
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	})
}

// RequestLog stores every request in the request log before handling it.
// A failing write is logged and the request goes on.
func RequestLog(logs service.RequestLogs, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			err := logs.Record(ctx, r.Method, r.URL.RequestURI())
			cancel()
			if err != nil {
				logrus.Errorf("request log couldn't Record %s %s: %v", r.Method, r.URL.RequestURI(), err)
			}
			next.ServeHTTP(w, r)
		})
	}
}
