package types

// SearchRequest contains the vanity constraints for one run.
type SearchRequest struct {
	Prefix  string // Characters required right after "kaspa:q"
	Suffix  string // Characters required at the end of the address
	Verbose bool   // Report every generated address
}

// Constrained reports whether the request carries a prefix or a suffix.
func (r SearchRequest) Constrained() bool {
	return r.Prefix != "" || r.Suffix != ""
}

// Attempt is a single generator invocation and what was read back from it.
type Attempt struct {
	Index        int    // 1-based
	ArtifactPath string // Overwritten by every invocation
	Address      string // Empty when the artifact held no address
}

// SearchResult summarizes a finished search.
type SearchResult struct {
	Address        string  `json:"address"`
	Attempts       int     `json:"attempts"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	SavedPath      string  `json:"saved_path"`
	Malformed      int     `json:"malformed,omitempty"` // Attempts whose artifact had no address
}
