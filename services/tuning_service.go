// Package services hosts the planner's runtime-adjustable settings,
// separate from the bootstrap configuration that is fixed at startup.
package services

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	customlog "github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// TuningPublisher notifies the bus when the tolerances change. This avoids
// a direct dependency on the concrete ZeroMQ outbound publisher.
type TuningPublisher interface {
	PublishTuningUpdate(t config.Tuning) error
}

// TuningService manages the goal-completion tolerances: YAML-persisted,
// updatable at runtime, read by the control loop every cycle.
type TuningService interface {
	Load() error
	Current() config.Tuning
	CurrentYAML() ([]byte, error)
	Update(yamlData []byte) error
	SetPublisher(p TuningPublisher)

	// Tolerances satisfies the control loop's tolerance source.
	Tolerances() (position, orientation float64)
}

type tuningService struct {
	path      string
	logger    customlog.Logger
	publisher TuningPublisher
	current   config.Tuning
	mu        sync.RWMutex
}

// NewTuningService creates the service and loads the tuning file at path.
// A missing file is not an error (stock tolerances apply until the first
// update); an unreadable or invalid file is, since starting with tolerances
// the operator did not intend is worse than not starting.
func NewTuningService(path string, logger customlog.Logger) (TuningService, error) {
	if path == "" {
		return nil, fmt.Errorf("tuning file path cannot be empty")
	}

	s := &tuningService{
		path:    path,
		logger:  logger,
		current: config.DefaultTuning(),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the tuning file from disk and replaces the current values.
// A missing file leaves the defaults in place.
func (s *tuningService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Infof("no tuning file at %s, using defaults (pos=%.3f orient=%.3f)",
			s.path, s.current.PositionTolerance, s.current.OrientationTolerance)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading tuning file '%s': %w", s.path, err)
	}

	var t config.Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("error parsing tuning file '%s': %w", s.path, err)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("tuning file '%s': %w", s.path, err)
	}

	s.current = t
	s.logger.Infof("loaded tuning from %s: pos=%.3f orient=%.3f",
		s.path, t.PositionTolerance, t.OrientationTolerance)
	return nil
}

// Current returns the tolerances in effect.
func (s *tuningService) Current() config.Tuning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Tolerances returns the position and orientation tolerances in effect.
func (s *tuningService) Tolerances() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.PositionTolerance, s.current.OrientationTolerance
}

// CurrentYAML renders the tolerances in effect as YAML, for the API.
func (s *tuningService) CurrentYAML() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := yaml.Marshal(s.current)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tuning: %w", err)
	}
	return data, nil
}

// Update validates, persists and applies new tolerances, then notifies the
// publisher. Invalid values leave the current tolerances untouched.
func (s *tuningService) Update(yamlData []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t config.Tuning
	if err := yaml.Unmarshal(yamlData, &t); err != nil {
		return fmt.Errorf("invalid tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	// Persist before applying, so a write failure never leaves the loop
	// running on tolerances that will not survive a restart.
	if err := os.WriteFile(s.path, yamlData, 0644); err != nil {
		return fmt.Errorf("error writing tuning file '%s': %w", s.path, err)
	}

	s.current = t
	s.logger.Infof("tuning updated: pos=%.3f orient=%.3f", t.PositionTolerance, t.OrientationTolerance)

	if s.publisher != nil {
		// Notify off the lock path; a slow bus must not stall the update.
		go func(p TuningPublisher, t config.Tuning) {
			if err := p.PublishTuningUpdate(t); err != nil {
				s.logger.Warnf("failed to publish tuning update: %v", err)
			}
		}(s.publisher, t)
	}
	return nil
}

// SetPublisher injects the bus publisher after construction.
func (s *tuningService) SetPublisher(p TuningPublisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publisher = p
}
