// Package zeromq carries the planner's bus traffic: a REP socket for the
// action-style control plane (goal submit/cancel/status), a PUB socket for
// commands, feedback and results, and a SUB socket ingesting the sensor data
// plane. Control-plane messages are JSON envelopes; data-plane payloads are
// flatbuffers.
package zeromq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pebbe/zmq4"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// Common errors
var (
	ErrServiceClosed      = errors.New("zeromq service is closed")
	ErrUnknownMessageType = errors.New("unknown message type")
)

// Control-plane message types
const (
	MsgTypeGoalRequest    = "GOAL_REQUEST"
	MsgTypeGoalResponse   = "GOAL_RESPONSE"
	MsgTypeCancelRequest  = "CANCEL_REQUEST"
	MsgTypeCancelResponse = "CANCEL_RESPONSE"
	MsgTypeStatusRequest  = "STATUS_REQUEST"
	MsgTypeStatusResponse = "STATUS_RESPONSE"
	MsgTypeGoalResult     = "GOAL_RESULT"
	MsgTypeGoalFeedback   = "GOAL_FEEDBACK"
	MsgTypeTuningUpdate   = "TUNING_UPDATE"
	MsgTypeError          = "ERROR"
)

// Message is the JSON envelope used on the control plane and for
// informational publications.
type Message struct {
	Type      string      `json:"type"`
	Timestamp float64     `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// NewMessage wraps data in an envelope stamped with the current time.
func NewMessage(msgType string, data interface{}) Message {
	return Message{
		Type:      msgType,
		Timestamp: float64(time.Now().Unix()),
		Data:      data,
	}
}

// ErrorResponse is the data payload of an ERROR envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MessageHandler processes one control-plane request and returns the raw
// response bytes.
type MessageHandler interface {
	HandleMessage(data []byte) ([]byte, error)
}

// HandlerFunc adapts a function to the MessageHandler interface.
type HandlerFunc func(data []byte) ([]byte, error)

func (f HandlerFunc) HandleMessage(data []byte) ([]byte, error) {
	return f(data)
}

// responder owns the REP socket and answers control-plane requests.
type responder struct {
	socket     *zmq4.Socket
	dispatcher *dispatcher
	poller     *zmq4.Poller
	logger     log.Logger
	running    atomic.Bool
	wg         *sync.WaitGroup
}

func newResponder(ctx *zmq4.Context, address string, d *dispatcher, logger log.Logger, wg *sync.WaitGroup) (*responder, error) {
	socket, err := ctx.NewSocket(zmq4.REP)
	if err != nil {
		return nil, fmt.Errorf("failed to create REP socket: %w", err)
	}

	if err := socket.Bind(address); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to bind to %s: %w", address, err)
	}
	if err := socket.SetLinger(0); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to set linger option: %w", err)
	}

	// Bounded socket operations so shutdown never hangs on a peer.
	const socketTimeout = 1 * time.Second
	if err := socket.SetRcvtimeo(socketTimeout); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to set receive timeout: %w", err)
	}
	if err := socket.SetSndtimeo(socketTimeout); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to set send timeout: %w", err)
	}

	poller := zmq4.NewPoller()
	poller.Add(socket, zmq4.POLLIN)

	logger.Infof("control-plane responder listening on %s", address)

	return &responder{
		socket:     socket,
		dispatcher: d,
		poller:     poller,
		logger:     logger,
		wg:         wg,
	}, nil
}

// Start begins the request loop in its own goroutine.
func (r *responder) Start() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		for r.running.Load() {
			sockets, err := r.poller.Poll(500 * time.Millisecond)
			if err != nil {
				if r.running.Load() {
					r.logger.Errorf("error polling request socket: %v", err)
				}
				continue
			}
			if len(sockets) == 0 {
				continue
			}

			request, err := r.socket.RecvBytes(0)
			if err != nil {
				if r.running.Load() {
					r.logger.Errorf("error receiving request: %v", err)
				}
				continue
			}

			response, err := r.dispatcher.Dispatch(request)
			if err != nil {
				r.logger.Errorf("error dispatching request: %v", err)
				response, _ = json.Marshal(NewMessage(MsgTypeError, ErrorResponse{
					Message: err.Error(),
					Code:    500,
				}))
			}

			if _, err := r.socket.SendBytes(response, 0); err != nil && r.running.Load() {
				r.logger.Errorf("error sending response: %v", err)
			}
		}
	}()
}

// Stop asks the request loop to exit; the caller waits on the shared
// WaitGroup before Close.
func (r *responder) Stop() {
	r.running.Store(false)
}

func (r *responder) Close() {
	if r.socket != nil {
		r.socket.Close()
		r.socket = nil
	}
}

// publisher owns the PUB socket. Sends are serialized with a mutex because
// the control loop and the lifecycle sinks publish concurrently.
type publisher struct {
	socket  *zmq4.Socket
	logger  log.Logger
	running bool
	mu      sync.Mutex
}

func newPublisher(ctx *zmq4.Context, address string, logger log.Logger) (*publisher, error) {
	socket, err := ctx.NewSocket(zmq4.PUB)
	if err != nil {
		return nil, fmt.Errorf("failed to create PUB socket: %w", err)
	}

	if err := socket.Bind(address); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to bind to %s: %w", address, err)
	}
	if err := socket.SetLinger(0); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to set linger option: %w", err)
	}

	logger.Infof("publisher bound to %s", address)

	return &publisher{
		socket:  socket,
		logger:  logger,
		running: true,
	}, nil
}

// Publish sends the topic frame followed by the payload frame.
func (p *publisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return ErrServiceClosed
	}

	if _, err := p.socket.Send(topic, zmq4.SNDMORE); err != nil {
		return fmt.Errorf("failed to send topic: %w", err)
	}
	if _, err := p.socket.SendBytes(payload, 0); err != nil {
		return fmt.Errorf("failed to send payload: %w", err)
	}
	return nil
}

func (p *publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.running = false
	if p.socket != nil {
		p.socket.Close()
		p.socket = nil
	}
}

// dispatcher routes control-plane envelopes to their registered handlers.
type dispatcher struct {
	handlers map[string]MessageHandler
	logger   log.Logger
	mu       sync.RWMutex
}

func newDispatcher(logger log.Logger) *dispatcher {
	return &dispatcher{
		handlers: make(map[string]MessageHandler),
		logger:   logger,
	}
}

func (d *dispatcher) Register(messageType string, handler MessageHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[messageType] = handler
	d.logger.Debugf("registered handler for message type %s", messageType)
}

// Dispatch parses the envelope and routes it by type.
func (d *dispatcher) Dispatch(data []byte) ([]byte, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid request envelope: %w", err)
	}

	d.mu.RLock()
	handler, exists := d.handlers[msg.Type]
	d.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, msg.Type)
	}
	return handler.HandleMessage(data)
}

// Service coordinates the planner's ZeroMQ sockets.
type Service struct {
	config     *config.Config
	ctx        *zmq4.Context
	responder  *responder
	publisher  *publisher
	subscriber *Subscriber
	dispatcher *dispatcher
	logger     log.Logger
	running    atomic.Bool
	wg         sync.WaitGroup
}

// NewService creates the sockets but does not start any goroutine; call
// Start once the handlers are registered.
func NewService(cfg *config.Config, logger log.Logger) (*Service, error) {
	ctx, err := zmq4.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create ZMQ context: %w", err)
	}

	s := &Service{
		config:     cfg,
		ctx:        ctx,
		dispatcher: newDispatcher(logger),
		logger:     logger,
	}

	s.responder, err = newResponder(ctx, cfg.ZeroMQ.RequestBindAddress, s.dispatcher, logger, &s.wg)
	if err != nil {
		ctx.Term()
		return nil, err
	}

	s.publisher, err = newPublisher(ctx, cfg.ZeroMQ.PublishBindAddress, logger)
	if err != nil {
		s.responder.Close()
		ctx.Term()
		return nil, err
	}

	s.subscriber, err = newSubscriber(ctx, cfg, logger, &s.wg)
	if err != nil {
		s.responder.Close()
		s.publisher.Close()
		ctx.Term()
		return nil, err
	}

	return s, nil
}

// RegisterHandler adds a control-plane handler for a message type.
func (s *Service) RegisterHandler(messageType string, handler MessageHandler) {
	s.dispatcher.Register(messageType, handler)
}

// RegisterHandlerFunc adds a control-plane handler function for a message type.
func (s *Service) RegisterHandlerFunc(messageType string, handler func([]byte) ([]byte, error)) {
	s.dispatcher.Register(messageType, HandlerFunc(handler))
}

// Subscriber exposes the data-plane ingester so callers can attach sinks
// before Start.
func (s *Service) Subscriber() *Subscriber {
	return s.subscriber
}

// Start launches the responder and subscriber loops.
func (s *Service) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Infof("starting zeromq service")
	s.responder.Start()
	s.subscriber.Start()
	return nil
}

// Stop shuts the loops down, waits for them, then releases the sockets and
// terminates the context.
func (s *Service) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	s.logger.Infof("stopping zeromq service")
	s.responder.Stop()
	s.subscriber.Stop()
	s.wg.Wait()

	s.responder.Close()
	s.subscriber.Close()
	s.publisher.Close()

	if s.ctx != nil {
		s.ctx.Term()
		s.ctx = nil
	}
	s.logger.Infof("zeromq service stopped")
}

// Publish sends a raw payload on a topic.
func (s *Service) Publish(topic string, payload []byte) error {
	if !s.running.Load() {
		return ErrServiceClosed
	}
	return s.publisher.Publish(topic, payload)
}

// PublishJSON wraps data in an envelope and publishes it on a topic.
func (s *Service) PublishJSON(topic, messageType string, data interface{}) error {
	payload, err := json.Marshal(NewMessage(messageType, data))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return s.Publish(topic, payload)
}
