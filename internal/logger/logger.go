package logger

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// NewZapLog construye el logger del servicio a partir del nivel indicado
// (LOG_LEVEL, por defecto "info").
func NewZapLog() (*zap.Logger, error) {
	nivel := os.Getenv("LOG_LEVEL")
	if nivel == "" {
		nivel = "info"
	}
	lvl, err := zap.ParseAtomicLevel(nivel)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}

// RequestLogMdlw registra método, ruta, status, bytes y duración de cada
// petición HTTP. Compatible con router.Use de mux.
func RequestLogMdlw(zaplog *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wl := newResponseWriterLogger(w)

			inicio := time.Now()
			next.ServeHTTP(wl, r)
			duracion := time.Since(inicio)

			zaplog.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wl.statusCode),
				zap.Int("bytes", wl.length),
				zap.Duration("duration", duracion),
			)
		})
	}
}

type responseWriterLogger struct {
	http.ResponseWriter
	statusCode int
	length     int
}

func newResponseWriterLogger(w http.ResponseWriter) *responseWriterLogger {
	return &responseWriterLogger{w, http.StatusOK, 0}
}

func (wl *responseWriterLogger) WriteHeader(code int) {
	wl.statusCode = code
	wl.ResponseWriter.WriteHeader(code)
}

func (wl *responseWriterLogger) Write(b []byte) (n int, err error) {
	n, err = wl.ResponseWriter.Write(b)
	wl.length += n
	return
}
