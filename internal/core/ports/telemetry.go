package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work as vertices in a progress stream.
type Telemetry interface {
	// Record starts a new vertex and attaches it to the returned context.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's regular output stream.
	Stdout() io.Writer

	// Stderr returns a writer for the vertex's error output stream.
	Stderr() io.Writer

	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)

	// Cached marks the vertex as a cache hit.
	Cached()
}

type vertexCtxKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext retrieves the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexCtxKey{}).(Vertex)
	return v, ok
}
