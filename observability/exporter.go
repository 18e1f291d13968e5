package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// DefaultEndpoint is the local OTLP/HTTP collector address.
const DefaultEndpoint = "localhost:4318"

// Exporter holds the settings shared by the trace and metric pipelines.
type Exporter struct {
	ServiceName    string `yaml:"service_name" mapstructure:"service_name"`
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	Environment    string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is an OTLP/HTTP host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure sends plain http to the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
}

func defaultExporter(serviceName string) Exporter {
	return Exporter{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       DefaultEndpoint,
		Insecure:       true,
	}
}

// fill sets empty identity fields from the running service.
func (e *Exporter) fill(name, version, environment string) {
	if e.ServiceName == "" {
		e.ServiceName = name
	}
	if e.ServiceVersion == "" {
		e.ServiceVersion = version
	}
	if e.Environment == "" {
		e.Environment = environment
	}
	if e.Endpoint == "" {
		e.Endpoint = DefaultEndpoint
	}
}

// resource describes the service. The attributes are schemaless so they
// merge with whatever schema resource.Default carries.
func (e Exporter) resource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(e.ServiceName),
			semconv.ServiceVersion(e.ServiceVersion),
			attribute.String("environment", e.Environment),
		),
	)
}
