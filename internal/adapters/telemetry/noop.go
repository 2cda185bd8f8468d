// Package telemetry provides Telemetry implementations. The no-op variant
// here is used when no progress stream is wanted (and in tests); the
// progrock subpackage renders live progress.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/pynix/internal/core/ports"
)

// NoOp is a Telemetry implementation that records nothing.
type NoOp struct{}

// NewNoOp creates a new no-op Telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

var _ ports.Telemetry = (*NoOp)(nil)

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noopVertex struct{}

func (*noopVertex) Stdout() io.Writer { return io.Discard }
func (*noopVertex) Stderr() io.Writer { return io.Discard }
func (*noopVertex) Complete(error)    {}
func (*noopVertex) Cached()           {}
