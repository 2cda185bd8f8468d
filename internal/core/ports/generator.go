package ports

import "go.trai.ch/pynix/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks

// ExpressionGenerator renders a resolved package set into a single
// environment-construction expression. The transform is pure: identical
// inputs must yield byte-identical output, and a failure yields no partial
// text.
type ExpressionGenerator interface {
	Generate(set *domain.PkgSet, opts domain.GenerateOptions) (string, error)
}
