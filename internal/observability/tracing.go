// Package observability liga o envio de spans do painel para um coletor OTLP.
package observability

import (
	"context"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const nomeServico = "painel-vendedores"

// Encerrar envia os spans pendentes e desliga o provider.
type Encerrar func()

// InitTracer só exporta quando TRACING_ENABLED=true. Sem tracing os spans
// abertos pelo painel caem no provider no-op global.
func InitTracer(cfg *config.Config, logger *zap.SugaredLogger) Encerrar {
	if !cfg.TracingEnabled {
		return func() {}
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		logger.Warnw("tracing desligado: exportador OTLP", "erro", err)
		return func() {}
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(semconv.ServiceNameKey.String(nomeServico))),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	logger.Infow("tracing ligado", "endpoint", cfg.TracingEndpoint)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warnw("falha ao encerrar tracing", "erro", err)
		}
	}
}
