package deps

import "go.trai.ch/forge/internal/core/ports"

var _ ports.AnalyzerFactory = (*Factory)(nil)

// Factory hands out one Crawler per build, each with a fresh MTimeCache.
// A Crawler is safe for concurrent use by the workers of that build.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewAnalyzer returns a crawler over includeDirs.
func (Factory) NewAnalyzer(includeDirs []string) ports.DependencyAnalyzer {
	return NewCrawler(includeDirs, NewMTimeCache())
}
