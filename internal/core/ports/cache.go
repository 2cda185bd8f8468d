package ports

import "go.trai.ch/pynix/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// ExpressionCache stores generated expressions keyed by a fingerprint of the
// generation inputs. Generation is deterministic, so a key hit may reuse the
// cached text verbatim.
type ExpressionCache interface {
	// Key computes the deterministic fingerprint of one generation run.
	Key(set *domain.PkgSet, opts domain.GenerateOptions) string

	// Get returns the cached expression for key, if any.
	Get(key string) (string, bool)

	// Put stores the expression under key.
	Put(key, expression string) error
}
