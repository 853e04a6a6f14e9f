// Package goal implements the action-style goal state machine: accept,
// preempt, succeed, plus feedback and result emission. It is decoupled from
// any transport; bus and HTTP adapters drive it through the same methods.
package goal

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// State is the lifecycle state of the planner's goal slot.
type State int

const (
	Idle State = iota
	Active
	Preempted
	Succeeded
)

// MarshalJSON renders the state name; the result channel and the status API
// carry states as strings, not enum ordinals.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Active:
		return "ACTIVE"
	case Preempted:
		return "PREEMPTED"
	case Succeeded:
		return "SUCCEEDED"
	default:
		return "UNKNOWN"
	}
}

// DefaultPreemptReason is recorded when a cancel request names no reason.
const DefaultPreemptReason = "External preemption"

// Goal is an accepted navigation goal. Goals are immutable once accepted;
// a new accept replaces the whole value.
type Goal struct {
	ID         uuid.UUID     `json:"id"`
	FrameID    string        `json:"frame_id"`
	Pose       geometry.Pose `json:"pose"`
	AcceptedAt time.Time     `json:"accepted_at"`
}

// Event is a lifecycle transition published to the result channel. Terminal
// events (Preempted, Succeeded) leave the machine resting in Idle.
type Event struct {
	GoalID uuid.UUID `json:"goal_id"`
	State  State     `json:"state"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

// EventSink receives lifecycle transitions. Sinks are invoked with the
// lifecycle lock held so event order matches transition order; they must not
// call back into the Lifecycle.
type EventSink interface {
	HandleGoalEvent(e Event)
}

// FeedbackSink receives pose snapshots for the active goal.
type FeedbackSink interface {
	HandleGoalFeedback(goalID uuid.UUID, pose geometry.Pose)
}

// Lifecycle tracks at most one active goal. All methods are safe for
// concurrent use; one mutex guards the state and the current goal so no
// reader ever sees a half-replaced goal.
type Lifecycle struct {
	mu       sync.Mutex
	state    State
	current  Goal
	haveGoal bool
	events   EventSink
	feedback FeedbackSink
	logger   log.Logger
}

// NewLifecycle creates an idle lifecycle.
func NewLifecycle(logger log.Logger) *Lifecycle {
	return &Lifecycle{state: Idle, logger: logger}
}

// SetEventSink installs the sink for transition events.
func (l *Lifecycle) SetEventSink(s EventSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = s
}

// SetFeedbackSink installs the sink for feedback snapshots.
func (l *Lifecycle) SetFeedbackSink(s FeedbackSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.feedback = s
}

// Accept activates g and returns it, filling in the id, timestamp and
// orientation when the caller left them zero.
//
// Last goal wins: accepting while a goal is active silently discards the
// previous goal. The displaced goal's caller receives no preempt event, so
// callers that need that notification must preempt before re-sending.
func (l *Lifecycle) Accept(g Goal) Goal {
	l.mu.Lock()
	defer l.mu.Unlock()

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.AcceptedAt.IsZero() {
		g.AcceptedAt = time.Now()
	}
	g.Pose.Orientation = g.Pose.Orientation.OrIdentity()

	if l.state == Active {
		l.logger.WithFields(map[string]interface{}{
			"goal_id":     l.current.ID,
			"replaced_by": g.ID,
		}).Warnf("active goal displaced without preemption")
	}

	l.current = g
	l.haveGoal = true
	l.state = Active
	l.emit(Event{GoalID: g.ID, State: Active, At: g.AcceptedAt})
	l.logger.WithField("goal_id", g.ID).Infof("goal accepted at (%.3f, %.3f)", g.Pose.Position.X, g.Pose.Position.Y)
	return g
}

// Preempt aborts the active goal, recording the reason for the result
// channel, and returns whether a goal was actually preempted. The machine
// rests in Idle afterwards.
func (l *Lifecycle) Preempt(reason string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Active {
		return false
	}
	if reason == "" {
		reason = DefaultPreemptReason
	}

	id := l.current.ID
	l.clear()
	l.emit(Event{GoalID: id, State: Preempted, Reason: reason, At: time.Now()})
	l.logger.WithField("goal_id", id).Infof("goal preempted: %s", reason)
	return true
}

// CheckReached succeeds the active goal when the relative target is within
// the tolerances (strict comparison on all three components). It reports
// whether the transition happened; once it does, the machine rests in Idle
// and further calls are no-ops.
func (l *Lifecycle) CheckReached(t geometry.RelativeTarget, posTol, orientTol float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Active {
		return false
	}
	if math.Abs(t.DX) >= posTol || math.Abs(t.DY) >= posTol || math.Abs(t.DYaw) >= orientTol {
		return false
	}

	id := l.current.ID
	l.clear()
	l.emit(Event{GoalID: id, State: Succeeded, At: time.Now()})
	l.logger.WithField("goal_id", id).Infof("goal reached")
	return true
}

// Active reports whether a goal is currently being pursued.
func (l *Lifecycle) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == Active
}

// Current returns the goal being pursued, if any.
func (l *Lifecycle) Current() (Goal, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.haveGoal
}

// State returns the resting state of the machine.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// PublishFeedback forwards a pose snapshot for the active goal to the
// feedback sink. Snapshots for an idle machine are dropped.
func (l *Lifecycle) PublishFeedback(p geometry.Pose) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Active || l.feedback == nil {
		return
	}
	l.feedback.HandleGoalFeedback(l.current.ID, p)
}

func (l *Lifecycle) clear() {
	l.current = Goal{}
	l.haveGoal = false
	l.state = Idle
}

func (l *Lifecycle) emit(e Event) {
	if l.events != nil {
		l.events.HandleGoalEvent(e)
	}
}
