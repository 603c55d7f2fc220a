package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend pre-installs a backend on the renderer, skipping backend creation
// from the window's screen. Mainly useful for driving the renderer against a
// simulation screen in tests.
//
// Parameters:
//   - backend: the backend to install
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}
