// Package buildinfo carries version metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version   = "dev"
	Revision  = "unknown"
	BuildDate = "unknown"
)
