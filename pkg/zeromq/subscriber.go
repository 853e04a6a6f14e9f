package zeromq

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pebbe/zmq4"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
)

// ScanStore receives each decoded sensor frame. *scan.Latest satisfies it.
type ScanStore interface {
	Store(f *scan.Frame)
}

// TransformStore receives each transform sample. *transform.Buffer
// satisfies it.
type TransformStore interface {
	Update(parent, child string, pose geometry.Pose, stamp time.Time)
}

// GoalAcceptor receives goal poses posted directly on the goal topic.
// *goal.Lifecycle satisfies it.
type GoalAcceptor interface {
	Accept(g goal.Goal) goal.Goal
}

// SubscriberStats counts data-plane traffic per topic.
type SubscriberStats struct {
	ScansReceived      int64 `json:"scans_received"`
	GoalsReceived      int64 `json:"goals_received"`
	TransformsReceived int64 `json:"transforms_received"`
	Malformed          int64 `json:"malformed"`
	mu                 sync.Mutex
}

// Subscriber ingests the data plane: scans, transforms and directly posted
// goals. Each message is decoded and handed to its sink on the receive
// goroutine; sinks must be cheap and safe to call from there.
type Subscriber struct {
	socket  *zmq4.Socket
	topics  config.TopicsConfig
	poller  *zmq4.Poller
	logger  log.Logger
	running atomic.Bool
	wg      *sync.WaitGroup
	stats   SubscriberStats

	scans      ScanStore
	transforms TransformStore
	goals      GoalAcceptor
}

func newSubscriber(ctx *zmq4.Context, cfg *config.Config, logger log.Logger, wg *sync.WaitGroup) (*Subscriber, error) {
	socket, err := ctx.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, fmt.Errorf("failed to create SUB socket: %w", err)
	}

	if err := socket.SetLinger(0); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to set linger option: %w", err)
	}
	if err := socket.Connect(cfg.ZeroMQ.SubscribeAddress); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.ZeroMQ.SubscribeAddress, err)
	}

	for _, topic := range []string{cfg.Topics.Scan, cfg.Topics.Transform, cfg.Topics.Goal} {
		if err := socket.SetSubscribe(topic); err != nil {
			socket.Close()
			return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}

	poller := zmq4.NewPoller()
	poller.Add(socket, zmq4.POLLIN)

	logger.Infof("data-plane subscriber connected to %s (topics: %s, %s, %s)",
		cfg.ZeroMQ.SubscribeAddress, cfg.Topics.Scan, cfg.Topics.Transform, cfg.Topics.Goal)

	return &Subscriber{
		socket: socket,
		topics: cfg.Topics,
		poller: poller,
		logger: logger,
		wg:     wg,
	}, nil
}

// SetScanStore installs the sink for sensor frames.
func (s *Subscriber) SetScanStore(store ScanStore) { s.scans = store }

// SetTransformStore installs the sink for transform samples.
func (s *Subscriber) SetTransformStore(store TransformStore) { s.transforms = store }

// SetGoalAcceptor installs the sink for directly posted goals.
func (s *Subscriber) SetGoalAcceptor(acceptor GoalAcceptor) { s.goals = acceptor }

// Start begins the receive loop in its own goroutine.
func (s *Subscriber) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		for s.running.Load() {
			sockets, err := s.poller.Poll(500 * time.Millisecond)
			if err != nil {
				if s.running.Load() {
					s.logger.Errorf("error polling data-plane socket: %v", err)
				}
				continue
			}
			if len(sockets) == 0 {
				continue
			}

			parts, err := s.socket.RecvMessageBytes(0)
			if err != nil {
				if s.running.Load() {
					s.logger.Errorf("error receiving data-plane message: %v", err)
				}
				continue
			}
			s.handle(parts)
		}
	}()
}

// Stop asks the receive loop to exit; the owning service waits on the shared
// WaitGroup before Close.
func (s *Subscriber) Stop() {
	s.running.Store(false)
}

func (s *Subscriber) Close() {
	if s.socket != nil {
		s.socket.Close()
		s.socket = nil
	}
}

func (s *Subscriber) handle(parts [][]byte) {
	if len(parts) != 2 {
		s.stats.mu.Lock()
		s.stats.Malformed++
		s.stats.mu.Unlock()
		s.logger.Warnf("data-plane message with %d frames, want topic+payload", len(parts))
		return
	}

	topic, payload := string(parts[0]), parts[1]

	// Payloads arrive straight off the wire and the generated flatbuffer
	// accessors index into them without validation, so a truncated buffer
	// panics. The receive loop must survive that.
	defer func() {
		if r := recover(); r != nil {
			s.stats.mu.Lock()
			s.stats.Malformed++
			s.stats.mu.Unlock()
			s.logger.Warnf("dropping malformed payload on topic %s: %v", topic, r)
		}
	}()

	switch topic {
	case s.topics.Scan:
		s.handleScan(payload)
	case s.topics.Transform:
		s.handleTransform(payload)
	case s.topics.Goal:
		s.handleGoal(payload)
	default:
		s.stats.mu.Lock()
		s.stats.Malformed++
		s.stats.mu.Unlock()
		s.logger.Warnf("data-plane message on unexpected topic %s", topic)
	}
}

func (s *Subscriber) handleScan(payload []byte) {
	frame := DecodeLaserScan(payload)

	s.stats.mu.Lock()
	s.stats.ScansReceived++
	first := s.stats.ScansReceived == 1
	s.stats.mu.Unlock()

	if first {
		s.logger.Infof("first scan received: frame=%s samples=%d", frame.FrameID, len(frame.Ranges))
	}
	if s.scans != nil {
		s.scans.Store(frame)
	}
}

func (s *Subscriber) handleTransform(payload []byte) {
	parent, child, pose, stamp := DecodeTransformStamped(payload)

	s.stats.mu.Lock()
	s.stats.TransformsReceived++
	s.stats.mu.Unlock()

	if s.transforms != nil {
		s.transforms.Update(parent, child, pose, stamp)
	}
}

func (s *Subscriber) handleGoal(payload []byte) {
	frameID, pose, _ := DecodePoseStamped(payload)

	s.stats.mu.Lock()
	s.stats.GoalsReceived++
	s.stats.mu.Unlock()

	if s.goals != nil {
		s.goals.Accept(goal.Goal{FrameID: frameID, Pose: pose})
	}
}

// GetStats returns a copy of the subscriber counters.
func (s *Subscriber) GetStats() SubscriberStats {
	s.stats.mu.Lock()
	defer s.stats.mu.Unlock()

	return SubscriberStats{
		ScansReceived:      s.stats.ScansReceived,
		GoalsReceived:      s.stats.GoalsReceived,
		TransformsReceived: s.stats.TransformsReceived,
		Malformed:          s.stats.Malformed,
	}
}
