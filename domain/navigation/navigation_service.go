// Package navigation keeps the latest observable navigation state for the
// operations API: current goal, last lifecycle event, last feedback pose
// and last published command. It is a read model only; nothing here feeds
// back into the control loop.
package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
)

// Feedback is the last pose snapshot seen for a goal.
type Feedback struct {
	GoalID uuid.UUID     `json:"goal_id"`
	Pose   geometry.Pose `json:"pose"`
	At     time.Time     `json:"at"`
}

// Command is the last velocity command published to the base.
type Command struct {
	Twist geometry.Twist `json:"twist"`
	At    time.Time      `json:"at"`
}

// Snapshot is the navigation state served by the status endpoint.
type Snapshot struct {
	State        string      `json:"state"`
	CurrentGoal  *goal.Goal  `json:"current_goal,omitempty"`
	LastEvent    *goal.Event `json:"last_event,omitempty"`
	LastFeedback *Feedback   `json:"last_feedback,omitempty"`
	LastCommand  *Command    `json:"last_command,omitempty"`
}

// NavigationService accumulates navigation observations from the lifecycle
// sinks and the command path. Safe for concurrent use.
type NavigationService struct {
	mu        sync.RWMutex
	lifecycle *goal.Lifecycle
	event     *goal.Event
	feedback  *Feedback
	command   *Command
}

// NewNavigationService creates a service reading goal state from lifecycle.
func NewNavigationService(lifecycle *goal.Lifecycle) *NavigationService {
	return &NavigationService{lifecycle: lifecycle}
}

// HandleGoalEvent records a lifecycle transition.
func (s *NavigationService) HandleGoalEvent(e goal.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event = &e
}

// HandleGoalFeedback records a pose snapshot for the active goal.
func (s *NavigationService) HandleGoalFeedback(goalID uuid.UUID, pose geometry.Pose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = &Feedback{GoalID: goalID, Pose: pose, At: time.Now()}
}

// PublishCommand records a velocity command. It never fails; the service
// sits behind the real bus publisher in a fan-out.
func (s *NavigationService) PublishCommand(cmd geometry.Twist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command = &Command{Twist: cmd, At: time.Now()}
	return nil
}

// Snapshot returns the current navigation read model.
//
// The lifecycle is queried before s.mu is taken: transitions invoke the
// sinks with the lifecycle lock held, so Snapshot must never hold s.mu
// while calling into the lifecycle.
func (s *NavigationService) Snapshot() Snapshot {
	state := s.lifecycle.State().String()
	current, haveCurrent := s.lifecycle.Current()

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		State:        state,
		LastEvent:    s.event,
		LastFeedback: s.feedback,
		LastCommand:  s.command,
	}
	if haveCurrent {
		snap.CurrentGoal = &current
	}
	return snap
}
