package zeromq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

// testBusConfig uses inproc endpoints so the sockets never leave the process.
func testBusConfig(name string) *config.Config {
	cfg := &config.Config{}
	cfg.ZeroMQ.SubscribeAddress = "inproc://" + name + "-sub"
	cfg.ZeroMQ.PublishBindAddress = "inproc://" + name + "-pub"
	cfg.ZeroMQ.RequestBindAddress = "inproc://" + name + "-req"
	cfg.Topics.Scan = "nav.sensor.scan"
	cfg.Topics.Transform = "nav.sensor.transform"
	cfg.Topics.Goal = "nav.goal.pose"
	return cfg
}

func TestPublishConcurrentWithStop(t *testing.T) {
	s, err := NewService(testBusConfig("stop-race"), log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Start())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if err := s.Publish("nav.cmd_vel", []byte("x")); err != nil {
				return
			}
		}
	}()

	time.Sleep(10 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish loop kept running after stop")
	}
	assert.ErrorIs(t, s.Publish("nav.cmd_vel", nil), ErrServiceClosed)
}

func TestStopIsIdempotent(t *testing.T) {
	s, err := NewService(testBusConfig("double-stop"), log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Start())

	s.Stop()
	s.Stop()
	assert.ErrorIs(t, s.Publish("nav.result", nil), ErrServiceClosed)
}
