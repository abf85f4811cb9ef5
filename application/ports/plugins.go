package ports

import (
	"graphlens/domain/core/aggregates"
)

// Plugin is the common surface of every pluggable component
type Plugin interface {
	// Name returns the human-readable plugin name
	Name() string

	// Identifier returns the stable identifier used for registration
	Identifier() string
}

// Loader turns raw document text into a graph. Implementations fail
// with a parse error when the content cannot be read in its native
// syntax.
type Loader interface {
	Plugin

	Load(content string) (*aggregates.Graph, error)
}

// Visualizer renders a graph into markup
type Visualizer interface {
	Plugin

	Visualize(graph *aggregates.Graph) (string, error)
}
