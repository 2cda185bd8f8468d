// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pynix/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

var _ ports.Telemetry = (*Recorder)(nil)

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
