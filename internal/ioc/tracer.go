package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitZipkinTracer 设置全局 TracerProvider，调用方负责 Shutdown
func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"serviceName"`
	}
	cfg := Config{
		Endpoint:    "http://localhost:9411/api/v2/spans",
		ServiceName: "osh-notification",
	}
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		panic(err)
	}

	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		panic(err)
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp
}
