package config

type Otel struct {
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"commerce-mock"`
	CollectorURL string  `env:"OTEL_COLLECTOR_URL"`
	Insecure     bool    `env:"OTEL_INSECURE" envDefault:"true"`
	TraceIDRatio float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
}

// Enabled reports whether traces should be exported. Without a
// collector URL the tracer provider is left as the global no-op.
func (o Otel) Enabled() bool {
	return o.CollectorURL != ""
}
