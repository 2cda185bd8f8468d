package ports

//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks

// ArtifactWriter persists a generated expression. Writes must be atomic: a
// failed write may not leave a truncated artifact behind.
type ArtifactWriter interface {
	Write(path, expression string) error
}
