package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePlannerConfig(t *testing.T, dir, content string) {
	t.Helper()
	configPath := filepath.Join(dir, "planner_config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
logging:
  level: "debug"
  log_path: "/var/log/planner"
server:
  http_port: 9090
zeromq:
  subscribe_address: "tcp://127.0.0.1:5555"
  publish_bind_address: "tcp://*:5556"
  request_bind_address: "tcp://*:5557"
topics:
  scan: "robot.sensor.scan"
  command: "robot.control.velocity"
frames:
  reference: "odom"
  robot: "base_footprint"
control:
  frequency_hz: 20.0
  scan_stride: 3
  scan_length: 360
inference:
  endpoint: "tcp://127.0.0.1:5600"
  request_timeout_ms: 150
transform:
  max_age_ms: 250
data:
  directory: "/data/planner"
  tuning_file: "my_tuning.yaml"
`
	writePlannerConfig(t, tempDir, configContent)

	cfg, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected logging level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.LogPath != "/var/log/planner" {
		t.Errorf("Expected log path '/var/log/planner', got '%s'", cfg.Logging.LogPath)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("Expected server http_port 9090, got %d", cfg.Server.HTTPPort)
	}
	if cfg.ZeroMQ.SubscribeAddress != "tcp://127.0.0.1:5555" {
		t.Errorf("Expected zeromq subscribe_address 'tcp://127.0.0.1:5555', got '%s'", cfg.ZeroMQ.SubscribeAddress)
	}
	if cfg.ZeroMQ.PublishBindAddress != "tcp://*:5556" {
		t.Errorf("Expected zeromq publish_bind_address 'tcp://*:5556', got '%s'", cfg.ZeroMQ.PublishBindAddress)
	}
	if cfg.ZeroMQ.RequestBindAddress != "tcp://*:5557" {
		t.Errorf("Expected zeromq request_bind_address 'tcp://*:5557', got '%s'", cfg.ZeroMQ.RequestBindAddress)
	}
	if cfg.Control.FrequencyHz != 20.0 {
		t.Errorf("Expected control frequency_hz 20.0, got %f", cfg.Control.FrequencyHz)
	}
	if cfg.Control.ScanStride != 3 {
		t.Errorf("Expected control scan_stride 3, got %d", cfg.Control.ScanStride)
	}
	if cfg.Control.ScanLength != 360 {
		t.Errorf("Expected control scan_length 360, got %d", cfg.Control.ScanLength)
	}
	if cfg.Inference.Endpoint != "tcp://127.0.0.1:5600" {
		t.Errorf("Expected inference endpoint 'tcp://127.0.0.1:5600', got '%s'", cfg.Inference.Endpoint)
	}
	if cfg.Inference.RequestTimeoutMs != 150 {
		t.Errorf("Expected inference request_timeout_ms 150, got %d", cfg.Inference.RequestTimeoutMs)
	}
	if cfg.Transform.MaxAgeMs != 250 {
		t.Errorf("Expected transform max_age_ms 250, got %d", cfg.Transform.MaxAgeMs)
	}
	if cfg.Frames.Reference != "odom" {
		t.Errorf("Expected reference frame 'odom', got '%s'", cfg.Frames.Reference)
	}
	if cfg.Frames.Robot != "base_footprint" {
		t.Errorf("Expected robot frame 'base_footprint', got '%s'", cfg.Frames.Robot)
	}
	if cfg.Topics.Scan != "robot.sensor.scan" {
		t.Errorf("Expected scan topic 'robot.sensor.scan', got '%s'", cfg.Topics.Scan)
	}
	if cfg.Data.Directory != "/data/planner" {
		t.Errorf("Expected data directory '/data/planner', got '%s'", cfg.Data.Directory)
	}
	if cfg.Data.TuningFilename != "my_tuning.yaml" {
		t.Errorf("Expected data tuning_file 'my_tuning.yaml', got '%s'", cfg.Data.TuningFilename)
	}
	if got := cfg.Data.TuningPath(); got != "/data/planner/my_tuning.yaml" {
		t.Errorf("Expected tuning path '/data/planner/my_tuning.yaml', got '%s'", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tempDir := t.TempDir()

	// Only the required fields; everything else must come from defaults.
	configContent := `
zeromq:
  subscribe_address: "tcp://127.0.0.1:5555"
  publish_bind_address: "tcp://*:5556"
  request_bind_address: "tcp://*:5557"
inference:
  endpoint: "tcp://127.0.0.1:5600"
data:
  directory: "/data/planner"
`
	writePlannerConfig(t, tempDir, configContent)

	cfg, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Control.FrequencyHz != 25.0 {
		t.Errorf("Expected default frequency_hz 25.0, got %f", cfg.Control.FrequencyHz)
	}
	if cfg.Control.ScanStride != 2 {
		t.Errorf("Expected default scan_stride 2, got %d", cfg.Control.ScanStride)
	}
	if cfg.Control.ScanLength != 540 {
		t.Errorf("Expected default scan_length 540, got %d", cfg.Control.ScanLength)
	}
	if cfg.Frames.Reference != "map" {
		t.Errorf("Expected default reference frame 'map', got '%s'", cfg.Frames.Reference)
	}
	if cfg.Frames.Robot != "base_link" {
		t.Errorf("Expected default robot frame 'base_link', got '%s'", cfg.Frames.Robot)
	}
	if cfg.Topics.Command != "nav.control.velocity" {
		t.Errorf("Expected default command topic 'nav.control.velocity', got '%s'", cfg.Topics.Command)
	}
	if cfg.Data.TuningFilename != "tuning.yaml" {
		t.Errorf("Expected default tuning_file 'tuning.yaml', got '%s'", cfg.Data.TuningFilename)
	}
	if got, want := cfg.Control.Period().Milliseconds(), int64(40); got != want {
		t.Errorf("Expected 40ms period at 25Hz, got %dms", got)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tempDir := t.TempDir()

	// Missing 'zeromq.subscribe_address'
	configContent := `
zeromq:
  publish_bind_address: "tcp://*:5556"
  request_bind_address: "tcp://*:5557"
inference:
  endpoint: "tcp://127.0.0.1:5600"
data:
  directory: "/data/planner"
`
	writePlannerConfig(t, tempDir, configContent)

	_, err := LoadConfig(tempDir)
	if err == nil {
		t.Fatalf("Expected error when loading config with missing required fields, but got nil")
	}

	expectedErrorSubstr := "missing required field in planner config: zeromq.subscribe_address"
	if !strings.Contains(err.Error(), expectedErrorSubstr) {
		t.Errorf("Expected error message to contain '%s', but got: %v", expectedErrorSubstr, err)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
zeromq:
  subscribe_address: "tcp://127.0.0.1:5555"
  publish_bind_address: "tcp://*:5556"
  request_bind_address: "tcp://*:5557"
control:
  frequency_hz: -5.0
inference:
  endpoint: "tcp://127.0.0.1:5600"
data:
  directory: "/data/planner"
`
	writePlannerConfig(t, tempDir, configContent)

	_, err := LoadConfig(tempDir)
	if err == nil {
		t.Fatalf("Expected error for negative control frequency, but got nil")
	}
	if !strings.Contains(err.Error(), "control.frequency_hz") {
		t.Errorf("Expected error message to name control.frequency_hz, got: %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Errorf("Default tuning should validate, got: %v", err)
	}

	bad := Tuning{PositionTolerance: 0, OrientationTolerance: 0.1}
	if err := bad.Validate(); err == nil {
		t.Errorf("Expected error for zero position_tolerance, got nil")
	}

	bad = Tuning{PositionTolerance: 0.1, OrientationTolerance: -1}
	if err := bad.Validate(); err == nil {
		t.Errorf("Expected error for negative orientation_tolerance, got nil")
	}
}
