package socialgraph

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/database"
)

// FormatHit renders a search hit as "<name>, ID:<id>".
func FormatHit(e database.Entity) string {
	return e.Name() + ", ID:" + strconv.Itoa(e.ID())
}

// JoinNames renders a network as comma-separated names, no spaces. An empty
// network renders as the empty string.
func JoinNames[T database.Entity](es []T) string {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Name()
	}
	return strings.Join(names, ",")
}
