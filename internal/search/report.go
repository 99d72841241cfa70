package search

import (
	"fmt"
	"io"

	"github.com/usestring/kaspa-vanity/pkg/types"
)

// Reporter receives the user-facing events of a search.
type Reporter interface {
	Start(req types.SearchRequest)
	Address(address string)
	Progress(attempts int, minutes float64)
	Success(res *types.SearchResult)
	Interrupted(artifactPath string)
}

// ConsoleReporter writes search events as plain text lines.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Start announces the pattern being searched for.
func (c *ConsoleReporter) Start(req types.SearchRequest) {
	fmt.Fprintf(c.w, "Searching for addresses with prefix '%s' and suffix '%s'...\n", req.Prefix, req.Suffix)
}

// Address prints one generated address.
func (c *ConsoleReporter) Address(address string) {
	fmt.Fprintf(c.w, "Generated address: %s\n", address)
}

// Progress rewrites the current terminal line.
func (c *ConsoleReporter) Progress(attempts int, minutes float64) {
	fmt.Fprintf(c.w, "Tested %d addresses in %.2f minutes.\r", attempts, minutes)
}

// Success prints the matched address and where it was saved.
func (c *ConsoleReporter) Success(res *types.SearchResult) {
	fmt.Fprintf(c.w, "\nSuccess! Address found: %s after %d attempts in %.2f minutes.\n",
		res.Address, res.Attempts, ElapsedMinutes(res.ElapsedSeconds))
	fmt.Fprintf(c.w, "Result saved to %s\n", res.SavedPath)
}

// Interrupted confirms the artifact was removed after an interruption.
func (c *ConsoleReporter) Interrupted(artifactPath string) {
	fmt.Fprintln(c.w, "\nProcess interrupted by user. Cleaning up...")
	fmt.Fprintf(c.w, "Temporary file '%s' deleted.\n", artifactPath)
}

// ElapsedMinutes converts seconds to minutes after truncating to whole seconds.
// Reports made by earlier releases used the same truncation.
func ElapsedMinutes(seconds float64) float64 {
	return float64(int(seconds)) / 60
}
