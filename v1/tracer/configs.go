package tracer

import "os"

// Config controls tracer setup.
type Config struct {
	// Endpoint is the OTLP/HTTP collector endpoint, host:port without
	// scheme, e.g. "localhost:4318". Leave empty to disable exporting;
	// spans are then dropped by the no-op provider.
	Endpoint string

	// ServiceName identifies this process in traces.
	ServiceName string

	// Insecure disables TLS towards the collector.
	Insecure bool
}

// NewConfig reads configuration from environment variables:
//
//	TRACER_OTLP_ENDPOINT  (optional, e.g. "localhost:4318")
//	TRACER_SERVICE_NAME   (optional)
//	TRACER_INSECURE       (optional, "true" to disable TLS)
func NewConfig() Config {
	return Config{
		Endpoint:    os.Getenv("TRACER_OTLP_ENDPOINT"),
		ServiceName: os.Getenv("TRACER_SERVICE_NAME"),
		Insecure:    os.Getenv("TRACER_INSECURE") == "true",
	}
}
