package metrics

import "os"

// Config controls the metrics registry and the optional scrape server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server, e.g.
	// ":9090". Leave empty to skip starting a server; the Handler can
	// then be mounted on an existing mux.
	Address string

	// ServiceName is attached to every metric as a constant "service"
	// label.
	ServiceName string

	// EnableDefaultCollectors registers the standard Go, process, and
	// build-info collectors.
	EnableDefaultCollectors bool
}

// NewConfig reads configuration from environment variables:
//
//	METRICS_ADDRESS       (optional, e.g. ":9090")
//	METRICS_SERVICE_NAME  (optional)
func NewConfig() Config {
	return Config{
		Address:                 os.Getenv("METRICS_ADDRESS"),
		ServiceName:             os.Getenv("METRICS_SERVICE_NAME"),
		EnableDefaultCollectors: true,
	}
}
