package config

import (
	"time"

	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
	"github.com/parabolic/parabolic/pkg/telemetry"
)

// Config is the parabolic configuration file.
type Config struct {
	Input      InputConfig      `yaml:"input" json:"input"`
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" json:"telemetry"`
}

// InputConfig describes where the grid comes from and how it is parsed.
type InputConfig struct {
	// Path is the grid file. "-" reads standard input.
	Path string `yaml:"path" json:"path"`

	// Dimension is the grid side. 0 infers it from the first line.
	Dimension int `yaml:"dimension" json:"dimension" validate:"gte=0,lte=1024"`

	// Strict rejects ragged rows and wrong row counts instead of repairing them.
	Strict bool `yaml:"strict" json:"strict"`
}

// SimulationConfig controls the cycle engine.
type SimulationConfig struct {
	TargetCycles int    `yaml:"target_cycles" json:"target_cycles" validate:"gte=0"`
	MaxCycles    int    `yaml:"max_cycles" json:"max_cycles" validate:"gte=1"`
	Strategy     string `yaml:"strategy" json:"strategy" validate:"oneof=scan settle"`
}

// TelemetryConfig mirrors telemetry.Config in file form.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Tracing TracingConfig `yaml:"tracing" json:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level        string `yaml:"level" json:"level" validate:"oneof=trace debug info warn error fatal"`
	Format       string `yaml:"format" json:"format" validate:"oneof=console json"`
	Output       string `yaml:"output" json:"output" validate:"required"`
	EnableCaller bool   `yaml:"enable_caller" json:"enable_caller"`
	TimeFormat   string `yaml:"time_format" json:"time_format" validate:"oneof=rfc3339 unix"`
}

// TracingConfig configures the OpenTelemetry tracer.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	Exporter     string  `yaml:"exporter" json:"exporter" validate:"oneof=otlp stdout none"`
	Endpoint     string  `yaml:"endpoint" json:"endpoint" validate:"required_if=Exporter otlp"`
	SamplingRate float64 `yaml:"sampling_rate" json:"sampling_rate" validate:"gte=0,lte=1"`
	Insecure     bool    `yaml:"insecure" json:"insecure"`
}

// MetricsConfig configures the Prometheus endpoint. Only the watch command
// serves it.
type MetricsConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	ListenAddress string `yaml:"listen_address" json:"listen_address" validate:"required_if=Enabled true"`
	Path          string `yaml:"path" json:"path" validate:"startswith=/"`
	Namespace     string `yaml:"namespace" json:"namespace" validate:"required"`
}

// ValidationError represents a configuration problem with its location.
type ValidationError struct {
	// File is the file where the error occurred.
	File string `json:"file,omitempty"`

	// Line is the line number where the error occurred.
	Line int `json:"line,omitempty"`

	// Column is the column number where the error occurred.
	Column int `json:"column,omitempty"`

	// Path is the configuration path (e.g., "simulation.max_cycles").
	Path string `json:"path,omitempty"`

	// Message is the error message.
	Message string `json:"message"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	tel := telemetry.DefaultConfig()
	return &Config{
		Input: InputConfig{
			Dimension: 100,
		},
		Simulation: SimulationConfig{
			TargetCycles: engine.DefaultTargetCycles,
			MaxCycles:    engine.DefaultMaxCycles,
			Strategy:     string(platform.StrategyScan),
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:        tel.Logging.Level,
				Format:       tel.Logging.Format,
				Output:       tel.Logging.Output,
				EnableCaller: tel.Logging.EnableCaller,
				TimeFormat:   tel.Logging.TimeFormat,
			},
			Tracing: TracingConfig{
				Enabled:      tel.Tracing.Enabled,
				Exporter:     tel.Tracing.Exporter,
				Endpoint:     tel.Tracing.Endpoint,
				SamplingRate: tel.Tracing.SamplingRate,
				Insecure:     tel.Tracing.Insecure,
			},
			Metrics: MetricsConfig{
				Enabled:       tel.Metrics.Enabled,
				ListenAddress: tel.Metrics.ListenAddress,
				Path:          tel.Metrics.Path,
				Namespace:     tel.Metrics.Namespace,
			},
		},
	}
}

// SimulationOptions converts the simulation section to engine options.
func (c *Config) SimulationOptions() engine.Options {
	return engine.Options{
		TargetCycles: c.Simulation.TargetCycles,
		MaxCycles:    c.Simulation.MaxCycles,
		Strategy:     platform.Strategy(c.Simulation.Strategy),
	}
}

// ParseOptions converts the input section to grid parse options.
func (c *Config) ParseOptions() platform.ParseOptions {
	return platform.ParseOptions{
		Dimension: c.Input.Dimension,
		Strict:    c.Input.Strict,
	}
}

// TelemetryConfig converts the telemetry section, keeping telemetry
// defaults for settings the file cannot express.
func (c *Config) TelemetryConfig(version string) *telemetry.Config {
	tel := telemetry.DefaultConfig()
	if version != "" {
		tel.ServiceVersion = version
	}

	l := c.Telemetry.Logging
	tel.Logging = telemetry.LoggingConfig{
		Level:        l.Level,
		Format:       l.Format,
		Output:       l.Output,
		EnableCaller: l.EnableCaller,
		TimeFormat:   l.TimeFormat,
	}

	t := c.Telemetry.Tracing
	tel.Tracing.Enabled = t.Enabled
	tel.Tracing.Exporter = t.Exporter
	tel.Tracing.Endpoint = t.Endpoint
	tel.Tracing.SamplingRate = t.SamplingRate
	tel.Tracing.Insecure = t.Insecure
	if tel.Tracing.ExportTimeout == 0 {
		tel.Tracing.ExportTimeout = 30 * time.Second
	}

	m := c.Telemetry.Metrics
	tel.Metrics.Enabled = m.Enabled
	tel.Metrics.ListenAddress = m.ListenAddress
	tel.Metrics.Path = m.Path
	tel.Metrics.Namespace = m.Namespace

	return tel
}
