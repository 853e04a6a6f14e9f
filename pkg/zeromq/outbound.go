package zeromq

import (
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// GoalFeedback is the data payload published on the feedback topic while a
// goal is active.
type GoalFeedback struct {
	GoalID uuid.UUID     `json:"goal_id"`
	Pose   geometry.Pose `json:"pose"`
}

// Outbound publishes the planner's outgoing bus traffic: velocity commands
// on the command topic (flatbuffers), goal results and feedback on their
// topics (JSON envelopes), and tuning-change notifications. It satisfies
// the control loop's CommandPublisher, the lifecycle's sinks and the tuning
// service's publisher, so the composition root wires one value everywhere.
type Outbound struct {
	service *Service
	topics  config.TopicsConfig
	logger  log.Logger

	// The command builder is reused across cycles; the mutex covers the
	// rare case of concurrent publishers during shutdown.
	mu      sync.Mutex
	builder *flatbuffers.Builder
}

// NewOutbound creates the outbound publisher set for the service's topics.
func NewOutbound(service *Service, cfg *config.Config, logger log.Logger) *Outbound {
	return &Outbound{
		service: service,
		topics:  cfg.Topics,
		logger:  logger,
		builder: flatbuffers.NewBuilder(1024),
	}
}

// PublishCommand sends one velocity command on the command topic.
func (o *Outbound) PublishCommand(cmd geometry.Twist) error {
	o.mu.Lock()
	payload := EncodeTwist(o.builder, cmd)
	err := o.service.Publish(o.topics.Command, payload)
	o.mu.Unlock()
	return err
}

// HandleGoalEvent publishes a lifecycle transition on the result topic.
// Event sinks cannot return errors, so publish failures are only logged.
func (o *Outbound) HandleGoalEvent(e goal.Event) {
	if err := o.service.PublishJSON(o.topics.Result, MsgTypeGoalResult, e); err != nil {
		o.logger.Errorf("failed to publish goal result for %s: %v", e.GoalID, err)
	}
}

// HandleGoalFeedback publishes a pose snapshot for the active goal on the
// feedback topic.
func (o *Outbound) HandleGoalFeedback(goalID uuid.UUID, pose geometry.Pose) {
	feedback := GoalFeedback{GoalID: goalID, Pose: pose}
	if err := o.service.PublishJSON(o.topics.Feedback, MsgTypeGoalFeedback, feedback); err != nil {
		o.logger.Errorf("failed to publish goal feedback for %s: %v", goalID, err)
	}
}

// PublishTuningUpdate notifies subscribers that the goal tolerances changed.
func (o *Outbound) PublishTuningUpdate(t config.Tuning) error {
	return o.service.PublishJSON(o.topics.Tuning, MsgTypeTuningUpdate, t)
}
