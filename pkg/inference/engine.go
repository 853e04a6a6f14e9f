// Package inference abstracts the policy evaluation backend behind a small
// engine interface and provides the ZeroMQ request/reply implementation that
// talks to the model service.
package inference

// Engine evaluates the policy for one control cycle. Implementations are not
// required to be safe for concurrent use; the control loop owns its engine
// and calls it from a single goroutine.
type Engine interface {
	// Infer maps the policy input vector to a (linear, angular) velocity
	// pair. A non-nil error means no command could be produced this cycle.
	Infer(input []float64) (linear, angular float64, err error)

	// Close releases the engine's resources. It is called exactly once,
	// when the control loop that opened the engine returns.
	Close() error
}

// Provider opens engines. The control loop opens one engine per run so that
// the engine's lifetime is bounded by the loop's.
type Provider interface {
	Open() (Engine, error)
}

// EngineFunc adapts a plain function to the Engine interface. Close is a
// no-op. Used by tests and local stand-in policies.
type EngineFunc func(input []float64) (linear, angular float64, err error)

func (f EngineFunc) Infer(input []float64) (float64, float64, error) {
	return f(input)
}

func (f EngineFunc) Close() error { return nil }

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() (Engine, error)

func (f ProviderFunc) Open() (Engine, error) { return f() }

// Static returns a provider that always hands out the given engine.
func Static(e Engine) Provider {
	return ProviderFunc(func() (Engine, error) { return e, nil })
}
