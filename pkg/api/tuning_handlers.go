package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	customlog "github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/services"
)

// TuningHandler holds dependencies for the runtime tuning endpoints.
type TuningHandler struct {
	tuning services.TuningService
	logger customlog.Logger
}

// RegisterTuningRoutes registers the tuning endpoints with the Fiber app.
func RegisterTuningRoutes(app *fiber.App, tuning services.TuningService, logger customlog.Logger) {
	h := &TuningHandler{tuning: tuning, logger: logger}

	apiGroup := app.Group("/api/v1/config")
	apiGroup.Get("/tuning", h.handleGetTuning)
	apiGroup.Put("/tuning", h.handleUpdateTuning)

	logger.Infof("registered tuning API endpoints under /api/v1/config")
}

// handleGetTuning serves the tolerances in effect as YAML.
func (h *TuningHandler) handleGetTuning(c *fiber.Ctx) error {
	yamlData, err := h.tuning.CurrentYAML()
	if err != nil {
		h.logger.Errorf("failed to render tuning YAML: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to retrieve tuning: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "application/x-yaml")
	return c.Send(yamlData)
}

// handleUpdateTuning replaces the tolerances from a YAML body. The update
// takes effect on the control loop's next cycle.
func (h *TuningHandler) handleUpdateTuning(c *fiber.Ctx) error {
	if ct := c.Get(fiber.HeaderContentType); ct != "" && !strings.Contains(ct, "yaml") {
		// Tolerated, but worth flagging: clients are expected to send YAML.
		h.logger.Warnf("tuning update with Content-Type %s", ct)
	}

	body := c.Body()
	if len(body) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "request body cannot be empty",
		})
	}

	if err := h.tuning.Update(body); err != nil {
		h.logger.Warnf("rejected tuning update: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("tuning update failed: %v", err),
		})
	}

	return c.JSON(fiber.Map{"message": "tuning updated"})
}
