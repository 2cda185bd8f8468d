package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for the vertex's regular output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer for the vertex's error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex as finished, successfully when err is nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
