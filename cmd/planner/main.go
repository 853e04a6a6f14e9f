package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/IhabMohamed/deep-motion-planning/domain/navigation"
	"github.com/IhabMohamed/deep-motion-planning/pkg/api"
	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/control"
	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/inference"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
	"github.com/IhabMohamed/deep-motion-planning/pkg/target"
	"github.com/IhabMohamed/deep-motion-planning/pkg/transform"
	"github.com/IhabMohamed/deep-motion-planning/pkg/zeromq"
	"github.com/IhabMohamed/deep-motion-planning/services"
)

// eventFanout delivers lifecycle events to the bus and the status read
// model in registration order.
type eventFanout []goal.EventSink

func (f eventFanout) HandleGoalEvent(e goal.Event) {
	for _, sink := range f {
		sink.HandleGoalEvent(e)
	}
}

// feedbackFanout is the feedback-sink counterpart of eventFanout.
type feedbackFanout []goal.FeedbackSink

func (f feedbackFanout) HandleGoalFeedback(goalID uuid.UUID, pose geometry.Pose) {
	for _, sink := range f {
		sink.HandleGoalFeedback(goalID, pose)
	}
}

// commandFanout publishes a command to every target; the first failure is
// reported so the loop counts the cycle as unpublished.
type commandFanout []control.CommandPublisher

func (f commandFanout) PublishCommand(cmd geometry.Twist) error {
	var firstErr error
	for _, p := range f {
		if err := p.PublishCommand(cmd); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func main() {
	configDir := flag.String("config", "config", "directory containing planner_config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		stdlog.Fatalf("Failed to load planner config: %v", err)
	}

	logger, err := log.NewLogrusLogger(cfg.Logging.Level, cfg.Logging.LogPath)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	tuning, err := services.NewTuningService(cfg.Data.TuningPath(), logger)
	if err != nil {
		logger.Fatalf("failed to load tuning: %v", err)
	}

	bus, err := zeromq.NewService(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to create bus service: %v", err)
	}
	outbound := zeromq.NewOutbound(bus, cfg, logger)
	tuning.SetPublisher(outbound)

	// Shared state between the bus goroutines and the control loop.
	scans := &scan.Latest{}
	transforms := transform.NewBuffer(cfg.Transform.MaxAge())
	lifecycle := goal.NewLifecycle(logger)
	nav := navigation.NewNavigationService(lifecycle)

	lifecycle.SetEventSink(eventFanout{outbound, nav})
	lifecycle.SetFeedbackSink(feedbackFanout{outbound, nav})

	subscriber := bus.Subscriber()
	subscriber.SetScanStore(scans)
	subscriber.SetTransformStore(transforms)
	subscriber.SetGoalAcceptor(lifecycle)

	zeromq.RegisterActionHandlers(bus, lifecycle, logger)

	targets := target.NewComputer(transforms, cfg.Frames.Reference, cfg.Frames.Robot, logger)
	targets.SetPoseObserver(lifecycle.PublishFeedback)

	provider := inference.NewRemoteProvider(cfg.Inference.Endpoint, cfg.Inference.RequestTimeout(), logger)

	loop := control.NewLoop(
		control.Config{
			Period:     cfg.Control.Period(),
			ScanStride: cfg.Control.ScanStride,
			ScanLength: cfg.Control.ScanLength,
		},
		control.Deps{
			Scans:      scans,
			Goals:      lifecycle,
			Targets:    targets,
			Provider:   provider,
			Commands:   commandFanout{outbound, nav},
			Tolerances: tuning,
			Logger:     logger,
		},
	)

	if err := bus.Start(); err != nil {
		logger.Fatalf("failed to start bus service: %v", err)
	}

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(loopCtx) }()

	app := fiber.New(fiber.Config{
		AppName:      "Deep Motion Planner",
		ErrorHandler: errorHandler,
	})
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "online",
			"service": "deep-motion-planner",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api.RegisterGoalRoutes(app, lifecycle, nav, loop, subscriber, cfg.Frames.Reference, logger)
	api.RegisterTuningRoutes(app, tuning, logger)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/goals", websocket.New(func(conn *websocket.Conn) {
		api.GoalWebSocketHandler(conn, lifecycle, cfg.Frames.Reference, logger)
	}))

	go func() {
		addr := ":" + strconv.Itoa(cfg.Server.HTTPPort)
		logger.Infof("HTTP server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Infof("received %s, shutting down", sig)
		// Stop the loop first: Run returning means the inference engine has
		// been released. Goal state is deliberately left as-is; shutdown is
		// not a preemption.
		stopLoop()
		select {
		case <-loopDone:
		case <-time.After(5 * time.Second):
			logger.Errorf("control loop did not stop in time")
		}
	case err := <-loopDone:
		// The loop only returns early if the engine could not be opened.
		logger.Errorf("control loop exited: %v", err)
		stopLoop()
	}

	bus.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("HTTP server forced to shutdown: %v", err)
	}

	logger.Infof("planner exited")
}

// errorHandler renders every unhandled route error as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
