package search

import (
	"strings"

	"github.com/usestring/kaspa-vanity/pkg/artifact"
	"github.com/usestring/kaspa-vanity/pkg/types"
)

// Match reports whether address satisfies req. The prefix is anchored after the
// "q" that follows the scheme; both ends are compared literally.
func Match(address string, req types.SearchRequest) bool {
	rest := artifact.StripScheme(address)
	return strings.HasPrefix(rest, "q"+req.Prefix) && strings.HasSuffix(rest, req.Suffix)
}
