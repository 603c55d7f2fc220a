package renderer

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeTerminal selects the terminal cell-grid rendering backend.
	BackendTypeTerminal RendererBackendType = iota
)

// RendererBackend defines the output surface contract the Renderer draws through.
// Backends own the raw plotting primitives; the Renderer owns projection and
// rasterization, so a backend never sees world-space coordinates.
type RendererBackend interface {
	terminalRendererBackend
}
