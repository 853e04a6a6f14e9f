package inference

import (
	"fmt"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pebbe/zmq4"

	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// RemoteProvider opens engines backed by the model service's ZeroMQ reply
// socket.
type RemoteProvider struct {
	endpoint string
	timeout  time.Duration
	logger   log.Logger
}

// NewRemoteProvider creates a provider for the model service at endpoint.
// timeout bounds both the send and the receive of every request.
func NewRemoteProvider(endpoint string, timeout time.Duration, logger log.Logger) *RemoteProvider {
	return &RemoteProvider{
		endpoint: endpoint,
		timeout:  timeout,
		logger:   logger,
	}
}

// Open connects a fresh engine to the model service. The connection is lazy
// on the ZeroMQ side, so Open succeeds even while the service is still down;
// the first Infer call reports the failure instead.
func (p *RemoteProvider) Open() (Engine, error) {
	ctx, err := zmq4.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create ZMQ context: %w", err)
	}

	e := &remoteEngine{
		ctx:      ctx,
		endpoint: p.endpoint,
		timeout:  p.timeout,
		builder:  flatbuffers.NewBuilder(8 * 1024),
		logger:   p.logger,
	}
	if err := e.connect(); err != nil {
		ctx.Term()
		return nil, err
	}

	p.logger.Infof("inference engine connected to %s (timeout %s)", p.endpoint, p.timeout)
	return e, nil
}

// remoteEngine speaks strict request/reply with the model service. A REQ
// socket that missed its reply is stuck in the receive state, so any failed
// exchange tears the socket down and rebuilds it before the next request.
type remoteEngine struct {
	ctx      *zmq4.Context
	endpoint string
	timeout  time.Duration
	socket   *zmq4.Socket
	builder  *flatbuffers.Builder
	logger   log.Logger
}

func (e *remoteEngine) connect() error {
	socket, err := e.ctx.NewSocket(zmq4.REQ)
	if err != nil {
		return fmt.Errorf("failed to create REQ socket: %w", err)
	}
	if err := socket.SetLinger(0); err != nil {
		socket.Close()
		return fmt.Errorf("failed to set linger option: %w", err)
	}
	if err := socket.SetRcvtimeo(e.timeout); err != nil {
		socket.Close()
		return fmt.Errorf("failed to set receive timeout: %w", err)
	}
	if err := socket.SetSndtimeo(e.timeout); err != nil {
		socket.Close()
		return fmt.Errorf("failed to set send timeout: %w", err)
	}
	if err := socket.Connect(e.endpoint); err != nil {
		socket.Close()
		return fmt.Errorf("failed to connect to %s: %w", e.endpoint, err)
	}
	e.socket = socket
	return nil
}

// Infer sends the input vector to the model service and waits for the
// velocity reply, at most timeout for each direction.
func (e *remoteEngine) Infer(input []float64) (float64, float64, error) {
	if e.socket == nil {
		if err := e.connect(); err != nil {
			return 0, 0, err
		}
	}

	if _, err := e.socket.SendBytes(EncodeRequest(e.builder, input), 0); err != nil {
		e.rebuild()
		return 0, 0, fmt.Errorf("inference request not sent: %w", err)
	}

	reply, err := e.socket.RecvBytes(0)
	if err != nil {
		e.rebuild()
		return 0, 0, fmt.Errorf("inference reply not received: %w", err)
	}

	return DecodeResponse(reply)
}

func (e *remoteEngine) rebuild() {
	e.socket.Close()
	e.socket = nil
	if err := e.connect(); err != nil {
		// Leave the socket nil; the next Infer retries the connect.
		e.logger.Errorf("failed to rebuild inference socket: %v", err)
	}
}

// Close releases the socket and terminates the engine's ZMQ context.
func (e *remoteEngine) Close() error {
	if e.socket != nil {
		e.socket.Close()
		e.socket = nil
	}
	if e.ctx != nil {
		e.ctx.Term()
		e.ctx = nil
	}
	e.logger.Infof("inference engine closed")
	return nil
}
