package api

import (
	"encoding/json"
	"errors"
	"syscall"

	"github.com/gofiber/contrib/websocket"

	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	customlog "github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// goalAck is the reply sent for each goal accepted over the WebSocket.
type goalAck struct {
	GoalID string `json:"goal_id"`
	State  string `json:"state"`
}

// GoalWebSocketHandler reads JSON GoalRequest messages from the connection
// and feeds them into the goal lifecycle, acknowledging each accepted goal
// with its assigned id. Each message replaces the previous goal, so a UI
// can stream corrected goals without cancelling in between.
func GoalWebSocketHandler(conn *websocket.Conn, lifecycle *goal.Lifecycle, defaultFrame string, logger customlog.Logger) {
	logger.Infof("goal WebSocket connected: %s", conn.RemoteAddr())

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorf("goal WS read error: %v", err)
			} else if err != websocket.ErrCloseSent && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, syscall.ECONNRESET) {
				logger.Infof("goal WS connection closed: %v", err)
			} else {
				logger.Infof("goal WS connection closed normally")
			}
			break
		}

		if mt != websocket.TextMessage {
			logger.Infof("ignoring non-text goal WS message type: %d", mt)
			continue
		}

		var req GoalRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			logger.Warnf("failed to unmarshal goal from WS: %v. Message: %s", err, string(msg))
			continue
		}

		accepted := lifecycle.Accept(req.ToGoal(defaultFrame))
		logger.Infof("accepted goal %s via WS at (%.2f, %.2f)",
			accepted.ID, accepted.Pose.Position.X, accepted.Pose.Position.Y)

		ack, err := json.Marshal(goalAck{GoalID: accepted.ID.String(), State: goal.Active.String()})
		if err == nil {
			if err := conn.WriteMessage(websocket.TextMessage, ack); err != nil {
				logger.Warnf("failed to send goal WS ack: %v", err)
			}
		}
	}

	logger.Infof("goal WebSocket disconnected: %s", conn.RemoteAddr())
}
