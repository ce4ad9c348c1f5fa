package ports

import "go.trai.ch/forge/internal/core/domain"

// DependencyAnalyzer computes the headers a source transitively includes.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type DependencyAnalyzer interface {
	Closure(source string) (domain.HeaderSet, error)
}

// AnalyzerFactory creates one analyzer per build. Analyzers created by
// separate calls share no cached file system state.
type AnalyzerFactory interface {
	NewAnalyzer(includeDirs []string) DependencyAnalyzer
}
