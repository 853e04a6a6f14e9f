package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the planner configuration loaded from planner_config.yaml.
// It is read once at startup; a load or validation error is fatal.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Server    ServerConfig    `yaml:"server" json:"server"`
	ZeroMQ    ZeroMQConfig    `yaml:"zeromq" json:"zeromq"`
	Topics    TopicsConfig    `yaml:"topics" json:"topics"`
	Frames    FramesConfig    `yaml:"frames" json:"frames"`
	Control   ControlConfig   `yaml:"control" json:"control"`
	Inference InferenceConfig `yaml:"inference" json:"inference"`
	Transform TransformConfig `yaml:"transform" json:"transform"`
	Data      DataConfig      `yaml:"data" json:"data"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level" json:"level"`
	LogPath string `yaml:"log_path,omitempty" json:"log_path,omitempty"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	HTTPPort int `yaml:"http_port" json:"http_port"`
}

// ZeroMQConfig holds the bus socket addresses
type ZeroMQConfig struct {
	// SubscribeAddress is the robot bridge's PUB endpoint the planner connects to.
	SubscribeAddress string `yaml:"subscribe_address" json:"subscribe_address"`
	// PublishBindAddress is where the planner binds its own PUB socket.
	PublishBindAddress string `yaml:"publish_bind_address" json:"publish_bind_address"`
	// RequestBindAddress is where the planner binds the action REP socket.
	RequestBindAddress string `yaml:"request_bind_address" json:"request_bind_address"`
}

// TopicsConfig names the bus topics the planner subscribes to and publishes on
type TopicsConfig struct {
	Scan      string `yaml:"scan" json:"scan"`
	Goal      string `yaml:"goal" json:"goal"`
	Transform string `yaml:"transform" json:"transform"`
	Command   string `yaml:"command" json:"command"`
	Feedback  string `yaml:"feedback" json:"feedback"`
	Result    string `yaml:"result" json:"result"`
	Tuning    string `yaml:"tuning" json:"tuning"`
}

// FramesConfig names the coordinate frames used for the target computation
type FramesConfig struct {
	Reference string `yaml:"reference" json:"reference"`
	Robot     string `yaml:"robot" json:"robot"`
}

// ControlConfig holds the control loop parameters
type ControlConfig struct {
	FrequencyHz float64 `yaml:"frequency_hz" json:"frequency_hz"`
	ScanStride  int     `yaml:"scan_stride" json:"scan_stride"`
	ScanLength  int     `yaml:"scan_length" json:"scan_length"`
}

// InferenceConfig holds the inference engine endpoint settings
type InferenceConfig struct {
	Endpoint         string `yaml:"endpoint" json:"endpoint"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms" json:"request_timeout_ms"`
}

// TransformConfig holds the transform buffer settings
type TransformConfig struct {
	MaxAgeMs int `yaml:"max_age_ms" json:"max_age_ms"`
}

// DataConfig holds data directory settings
type DataConfig struct {
	Directory      string `yaml:"directory" json:"directory"`
	TuningFilename string `yaml:"tuning_file" json:"tuning_file"`
}

// Period returns the control loop period derived from the configured frequency.
func (c ControlConfig) Period() time.Duration {
	return time.Duration(float64(time.Second) / c.FrequencyHz)
}

// RequestTimeout returns the inference request timeout as a duration.
func (c InferenceConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// MaxAge returns the transform staleness bound as a duration.
func (c TransformConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeMs) * time.Millisecond
}

// TuningPath returns the path of the runtime tuning file.
func (c DataConfig) TuningPath() string {
	return filepath.Join(c.Directory, c.TuningFilename)
}

// LoadConfig loads the planner configuration from configDir/planner_config.yaml,
// applies defaults and validates required fields.
func LoadConfig(configDir string) (*Config, error) {
	configPath := filepath.Join(configDir, "planner_config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading planner config file '%s': %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing planner config file '%s': %w", configPath, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the planner's stock parameters.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Control.FrequencyHz == 0 {
		c.Control.FrequencyHz = 25.0
	}
	if c.Control.ScanStride == 0 {
		c.Control.ScanStride = 2
	}
	if c.Control.ScanLength == 0 {
		c.Control.ScanLength = 540
	}
	if c.Inference.RequestTimeoutMs == 0 {
		c.Inference.RequestTimeoutMs = 200
	}
	if c.Transform.MaxAgeMs == 0 {
		c.Transform.MaxAgeMs = 500
	}
	if c.Frames.Reference == "" {
		c.Frames.Reference = "map"
	}
	if c.Frames.Robot == "" {
		c.Frames.Robot = "base_link"
	}
	if c.Topics.Scan == "" {
		c.Topics.Scan = "nav.sensor.scan"
	}
	if c.Topics.Goal == "" {
		c.Topics.Goal = "nav.goal.simple"
	}
	if c.Topics.Transform == "" {
		c.Topics.Transform = "nav.transform"
	}
	if c.Topics.Command == "" {
		c.Topics.Command = "nav.control.velocity"
	}
	if c.Topics.Feedback == "" {
		c.Topics.Feedback = "nav.goal.feedback"
	}
	if c.Topics.Result == "" {
		c.Topics.Result = "nav.goal.result"
	}
	if c.Topics.Tuning == "" {
		c.Topics.Tuning = "nav.config.tuning"
	}
	if c.Data.TuningFilename == "" {
		c.Data.TuningFilename = "tuning.yaml"
	}
}

// validate rejects configurations the planner must not start with.
func (c *Config) validate() error {
	if c.ZeroMQ.SubscribeAddress == "" {
		return fmt.Errorf("missing required field in planner config: zeromq.subscribe_address")
	}
	if c.ZeroMQ.PublishBindAddress == "" {
		return fmt.Errorf("missing required field in planner config: zeromq.publish_bind_address")
	}
	if c.ZeroMQ.RequestBindAddress == "" {
		return fmt.Errorf("missing required field in planner config: zeromq.request_bind_address")
	}
	if c.Inference.Endpoint == "" {
		return fmt.Errorf("missing required field in planner config: inference.endpoint")
	}
	if c.Data.Directory == "" {
		return fmt.Errorf("missing required field in planner config: data.directory")
	}
	if c.Control.FrequencyHz <= 0 {
		return fmt.Errorf("invalid field in planner config: control.frequency_hz must be positive")
	}
	if c.Control.ScanStride < 1 {
		return fmt.Errorf("invalid field in planner config: control.scan_stride must be at least 1")
	}
	if c.Control.ScanLength < 1 {
		return fmt.Errorf("invalid field in planner config: control.scan_length must be at least 1")
	}
	if c.Inference.RequestTimeoutMs < 0 {
		return fmt.Errorf("invalid field in planner config: inference.request_timeout_ms must not be negative")
	}
	if c.Transform.MaxAgeMs <= 0 {
		return fmt.Errorf("invalid field in planner config: transform.max_age_ms must be positive")
	}
	return nil
}
