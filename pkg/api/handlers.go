// Package api exposes the planner's operations surface over HTTP: goal
// submission and cancellation, the navigation status read model, and the
// runtime tuning endpoints. It drives the same goal lifecycle as the bus
// adapters; there is no second state machine behind these routes.
package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/IhabMohamed/deep-motion-planning/domain/navigation"
	"github.com/IhabMohamed/deep-motion-planning/pkg/control"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	customlog "github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/zeromq"
)

// StatusResponse is the body of GET /api/v1/status.
type StatusResponse struct {
	Navigation navigation.Snapshot    `json:"navigation"`
	Loop       control.Stats          `json:"loop"`
	Bus        zeromq.SubscriberStats `json:"bus"`
}

// GoalHandler holds the dependencies for the goal and status endpoints.
type GoalHandler struct {
	lifecycle    *goal.Lifecycle
	nav          *navigation.NavigationService
	loop         *control.Loop
	subscriber   *zeromq.Subscriber
	defaultFrame string
	logger       customlog.Logger
}

// RegisterGoalRoutes registers the goal and status endpoints.
func RegisterGoalRoutes(app *fiber.App, lifecycle *goal.Lifecycle, nav *navigation.NavigationService,
	loop *control.Loop, subscriber *zeromq.Subscriber, defaultFrame string, logger customlog.Logger) {

	h := &GoalHandler{
		lifecycle:    lifecycle,
		nav:          nav,
		loop:         loop,
		subscriber:   subscriber,
		defaultFrame: defaultFrame,
		logger:       logger,
	}

	apiGroup := app.Group("/api/v1")
	apiGroup.Get("/status", h.handleStatus)
	apiGroup.Post("/goals", h.handlePostGoal)
	apiGroup.Delete("/goals/current", h.handleCancelGoal)

	logger.Infof("registered goal and status API endpoints under /api/v1")
}

// handleStatus serves the combined navigation, loop and bus snapshot.
func (h *GoalHandler) handleStatus(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Navigation: h.nav.Snapshot(),
		Loop:       h.loop.Stats(),
		Bus:        h.subscriber.GetStats(),
	})
}

// handlePostGoal accepts a new navigation goal. Posting while a goal is
// active replaces it (last goal wins, same as the bus endpoints).
func (h *GoalHandler) handlePostGoal(c *fiber.Ctx) error {
	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnf("rejected malformed goal request: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid goal request body",
		})
	}

	accepted := h.lifecycle.Accept(req.ToGoal(h.defaultFrame))
	return c.Status(http.StatusCreated).JSON(accepted)
}

// handleCancelGoal preempts the active goal. The body is optional and may
// carry a reason for the result channel.
func (h *GoalHandler) handleCancelGoal(c *fiber.Ctx) error {
	var req CancelRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid cancel request body",
			})
		}
	}

	if !h.lifecycle.Preempt(req.Reason) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "no active goal to cancel",
		})
	}
	return c.JSON(fiber.Map{"preempted": true})
}
