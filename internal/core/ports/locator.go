package ports

import "go.trai.ch/forge/internal/core/domain"

// SourceLocator discovers translation units.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type SourceLocator interface {
	// Locate walks every root and returns the sources found, sorted by path.
	// A root that does not exist is an error.
	Locate(roots []string) ([]domain.SourceUnit, error)
}
