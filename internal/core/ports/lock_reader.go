package ports

import "go.trai.ch/pynix/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=lock_reader.go -destination=mocks/mock_lock_reader.go -package=mocks

// LockReader loads the external resolver's output into a validated package
// set. The resolution algorithm itself is not part of this repo.
type LockReader interface {
	Read(path string) (*domain.PkgSet, error)
}
