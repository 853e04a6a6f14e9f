package config

import "fmt"

// Tuning holds the goal-completion tolerances. Unlike Config it may be
// updated at runtime through the tuning service; the control loop reads the
// current values every tick.
type Tuning struct {
	PositionTolerance    float64 `yaml:"position_tolerance" json:"position_tolerance"`
	OrientationTolerance float64 `yaml:"orientation_tolerance" json:"orientation_tolerance"`
}

// DefaultTuning returns the stock tolerances.
func DefaultTuning() Tuning {
	return Tuning{
		PositionTolerance:    0.1,
		OrientationTolerance: 0.1,
	}
}

// Validate rejects tolerances the controller cannot act on.
func (t Tuning) Validate() error {
	if t.PositionTolerance <= 0 {
		return fmt.Errorf("invalid field in planner config: position_tolerance must be positive")
	}
	if t.OrientationTolerance <= 0 {
		return fmt.Errorf("invalid field in planner config: orientation_tolerance must be positive")
	}
	return nil
}
