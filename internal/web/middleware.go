package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

type respostaComStatus struct {
	http.ResponseWriter
	status int
}

func (w *respostaComStatus) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// rastrearRequest abre um span por request e loga método, rota, status e
// duração.
func (s *Servidor) rastrearRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()

		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := otel.Tracer("http").Start(ctx, "http.request")
		defer span.End()

		rota := r.URL.Path
		if atual := mux.CurrentRoute(r); atual != nil {
			if tpl, err := atual.GetPathTemplate(); err == nil {
				rota = tpl
			}
		}
		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", rota),
			attribute.String("http.user_agent", r.UserAgent()),
		)

		rw := &respostaComStatus{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(ctx))

		duracao := time.Since(inicio)
		span.SetAttributes(
			attribute.Int("http.status_code", rw.status),
			attribute.Int64("http.duration_ms", duracao.Milliseconds()),
		)
		if rw.status >= 400 {
			span.SetStatus(codes.Error, "HTTP request failed")
		} else {
			span.SetStatus(codes.Ok, "")
		}

		s.logger.Infow("request",
			"metodo", r.Method,
			"rota", rota,
			"status", rw.status,
			"duracao", duracao,
		)
	})
}
