package socialgraph

import (
	"go.uber.org/zap"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/loader"
)

// Config exposes a stable wrapper for loading a graph in package mode.
type Config struct {
	// DataFile is the path of the block-structured input file.
	DataFile string
	// Logger receives ingestion diagnostics. Nil discards them.
	Logger *zap.Logger
}

func (c *Config) toLoaderOptions() loader.Options {
	return loader.Options{Logger: c.Logger}
}
