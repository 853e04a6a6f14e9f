package zeromq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

func marshalEnvelope(t *testing.T, msgType string, data interface{}) []byte {
	t.Helper()
	payload, err := json.Marshal(NewMessage(msgType, data))
	require.NoError(t, err)
	return payload
}

func TestGoalHandlerActivatesLifecycle(t *testing.T) {
	lifecycle := goal.NewLifecycle(log.NewNopLogger())
	h := NewGoalHandler(lifecycle, log.NewNopLogger())

	resp, err := h.HandleMessage(marshalEnvelope(t, MsgTypeGoalRequest, GoalRequest{
		FrameID:  "map",
		Position: geometry.Vector3{X: 3, Y: 4},
	}))
	require.NoError(t, err)

	var envelope struct {
		Type string    `json:"type"`
		Data goal.Goal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp, &envelope))
	assert.Equal(t, MsgTypeGoalResponse, envelope.Type)
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, "map", envelope.Data.FrameID)

	require.True(t, lifecycle.Active())
	current, ok := lifecycle.Current()
	require.True(t, ok)
	assert.Equal(t, envelope.Data.ID, current.ID)
	// A zero orientation on the wire is normalized to identity.
	assert.Equal(t, geometry.IdentityQuaternion(), current.Pose.Orientation)
}

func TestGoalHandlerRejectsWrongType(t *testing.T) {
	h := NewGoalHandler(goal.NewLifecycle(log.NewNopLogger()), log.NewNopLogger())

	_, err := h.HandleMessage(marshalEnvelope(t, MsgTypeCancelRequest, nil))
	require.Error(t, err)
}

func TestCancelHandlerPreempts(t *testing.T) {
	lifecycle := goal.NewLifecycle(log.NewNopLogger())
	var events []goal.Event
	lifecycle.SetEventSink(eventRecorder(func(e goal.Event) { events = append(events, e) }))
	lifecycle.Accept(goal.Goal{Pose: geometry.Pose{Position: geometry.Vector3{X: 1}}})

	h := NewCancelHandler(lifecycle, log.NewNopLogger())
	resp, err := h.HandleMessage(marshalEnvelope(t, MsgTypeCancelRequest, CancelRequest{Reason: "operator stop"}))
	require.NoError(t, err)

	var envelope struct {
		Type string         `json:"type"`
		Data CancelResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp, &envelope))
	assert.Equal(t, MsgTypeCancelResponse, envelope.Type)
	assert.True(t, envelope.Data.Preempted)
	assert.False(t, lifecycle.Active())

	require.Len(t, events, 2) // Active, then Preempted
	assert.Equal(t, goal.Preempted, events[1].State)
	assert.Equal(t, "operator stop", events[1].Reason)
}

func TestCancelHandlerWithoutActiveGoal(t *testing.T) {
	h := NewCancelHandler(goal.NewLifecycle(log.NewNopLogger()), log.NewNopLogger())

	resp, err := h.HandleMessage(marshalEnvelope(t, MsgTypeCancelRequest, CancelRequest{}))
	require.NoError(t, err)

	var envelope struct {
		Data CancelResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp, &envelope))
	assert.False(t, envelope.Data.Preempted)
}

func TestStatusHandlerReportsState(t *testing.T) {
	lifecycle := goal.NewLifecycle(log.NewNopLogger())
	h := NewStatusHandler(lifecycle)

	resp, err := h.HandleMessage(marshalEnvelope(t, MsgTypeStatusRequest, nil))
	require.NoError(t, err)

	var envelope struct {
		Data StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp, &envelope))
	assert.Equal(t, "IDLE", envelope.Data.State)
	assert.Nil(t, envelope.Data.Goal)

	accepted := lifecycle.Accept(goal.Goal{Pose: geometry.Pose{Position: geometry.Vector3{X: 2}}})
	resp, err = h.HandleMessage(marshalEnvelope(t, MsgTypeStatusRequest, nil))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(resp, &envelope))
	assert.Equal(t, "ACTIVE", envelope.Data.State)
	require.NotNil(t, envelope.Data.Goal)
	assert.Equal(t, accepted.ID, envelope.Data.Goal.ID)
}

type eventRecorder func(e goal.Event)

func (f eventRecorder) HandleGoalEvent(e goal.Event) { f(e) }
