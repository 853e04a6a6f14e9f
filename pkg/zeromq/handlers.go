package zeromq

import (
	"encoding/json"
	"fmt"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// GoalRequest is the data payload of a GOAL_REQUEST envelope. A zero
// orientation is treated as identity.
type GoalRequest struct {
	FrameID     string              `json:"frame_id"`
	Position    geometry.Vector3    `json:"position"`
	Orientation geometry.Quaternion `json:"orientation"`
}

// CancelRequest is the data payload of a CANCEL_REQUEST envelope. Reason is
// optional; the lifecycle substitutes its default when empty.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelResponse is the data payload of a CANCEL_RESPONSE envelope.
type CancelResponse struct {
	Preempted bool `json:"preempted"`
}

// StatusResponse is the data payload of a STATUS_RESPONSE envelope.
type StatusResponse struct {
	State string     `json:"state"`
	Goal  *goal.Goal `json:"goal,omitempty"`
}

// GoalHandler answers GOAL_REQUEST envelopes by activating the goal
// lifecycle. A request arriving while a goal is active replaces it (last
// goal wins); the response carries the accepted goal with its assigned id.
type GoalHandler struct {
	lifecycle *goal.Lifecycle
	logger    log.Logger
}

// NewGoalHandler creates the handler for goal submissions.
func NewGoalHandler(lifecycle *goal.Lifecycle, logger log.Logger) *GoalHandler {
	return &GoalHandler{lifecycle: lifecycle, logger: logger}
}

func (h *GoalHandler) HandleMessage(data []byte) ([]byte, error) {
	var msg struct {
		Type string      `json:"type"`
		Data GoalRequest `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse goal request: %w", err)
	}
	if msg.Type != MsgTypeGoalRequest {
		return nil, fmt.Errorf("unexpected message type: %s", msg.Type)
	}

	accepted := h.lifecycle.Accept(goal.Goal{
		FrameID: msg.Data.FrameID,
		Pose: geometry.Pose{
			Position:    msg.Data.Position,
			Orientation: msg.Data.Orientation,
		},
	})

	return json.Marshal(NewMessage(MsgTypeGoalResponse, accepted))
}

// CancelHandler answers CANCEL_REQUEST envelopes by preempting the active
// goal. Cancelling an idle planner is not an error; the response just
// reports that nothing was preempted.
type CancelHandler struct {
	lifecycle *goal.Lifecycle
	logger    log.Logger
}

// NewCancelHandler creates the handler for goal cancellations.
func NewCancelHandler(lifecycle *goal.Lifecycle, logger log.Logger) *CancelHandler {
	return &CancelHandler{lifecycle: lifecycle, logger: logger}
}

func (h *CancelHandler) HandleMessage(data []byte) ([]byte, error) {
	var msg struct {
		Type string        `json:"type"`
		Data CancelRequest `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse cancel request: %w", err)
	}
	if msg.Type != MsgTypeCancelRequest {
		return nil, fmt.Errorf("unexpected message type: %s", msg.Type)
	}

	preempted := h.lifecycle.Preempt(msg.Data.Reason)
	if !preempted {
		h.logger.Debugf("cancel request with no active goal")
	}

	return json.Marshal(NewMessage(MsgTypeCancelResponse, CancelResponse{Preempted: preempted}))
}

// StatusHandler answers STATUS_REQUEST envelopes with the lifecycle state
// and the current goal, when one is active.
type StatusHandler struct {
	lifecycle *goal.Lifecycle
}

// NewStatusHandler creates the handler for status queries.
func NewStatusHandler(lifecycle *goal.Lifecycle) *StatusHandler {
	return &StatusHandler{lifecycle: lifecycle}
}

func (h *StatusHandler) HandleMessage(data []byte) ([]byte, error) {
	resp := StatusResponse{State: h.lifecycle.State().String()}
	if current, ok := h.lifecycle.Current(); ok {
		resp.Goal = &current
	}
	return json.Marshal(NewMessage(MsgTypeStatusResponse, resp))
}

// RegisterActionHandlers wires the action endpoint: goal submission, cancel
// and status, all driving the one lifecycle.
func RegisterActionHandlers(service *Service, lifecycle *goal.Lifecycle, logger log.Logger) {
	service.RegisterHandler(MsgTypeGoalRequest, NewGoalHandler(lifecycle, logger))
	service.RegisterHandler(MsgTypeCancelRequest, NewCancelHandler(lifecycle, logger))
	service.RegisterHandler(MsgTypeStatusRequest, NewStatusHandler(lifecycle))
	logger.Infof("registered action handlers (goal, cancel, status)")
}
