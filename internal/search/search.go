// Package search drives the generator until it produces a vanity address.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/usestring/kaspa-vanity/internal/generator"
	"github.com/usestring/kaspa-vanity/pkg/artifact"
	"github.com/usestring/kaspa-vanity/pkg/types"
)

// ProgressEvery is the attempt interval between progress reports.
const ProgressEvery = 10

// ErrInterrupted is returned by Run after an interrupted search was cleaned up.
var ErrInterrupted = errors.New("search interrupted")

// State is the position of a Searcher in its run.
type State int

const (
	Idle State = iota
	Running
	Matched
	UnconstrainedStop
	Interrupted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Matched:
		return "matched"
	case UnconstrainedStop:
		return "unconstrained_stop"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Searcher repeatedly invokes a generator and matches what it produced.
// A Searcher runs one search at a time and is not safe for concurrent use.
type Searcher struct {
	// Dir holds the transient artifact and the saved result.
	Dir string
	// Alphabet constrains prefixes and suffixes.
	Alphabet Alphabet

	invoker  generator.Invoker
	reporter Reporter
	now      func() time.Time
	tempName func() string
	state    State
}

// New creates a Searcher that writes artifacts to the working directory.
func New(inv generator.Invoker, rep Reporter) *Searcher {
	return &Searcher{
		Dir:      ".",
		Alphabet: Bech32,
		invoker:  inv,
		reporter: rep,
		now:      time.Now,
		tempName: func() string { return artifact.TempName(nil) },
	}
}

// State returns the current state of the search.
func (s *Searcher) State() State { return s.state }

// Run searches until an address matches req, or stops after one attempt when
// req carries no constraint. Interruption through ctx is honored between
// generator invocations; the artifact is then removed and ErrInterrupted
// returned.
func (s *Searcher) Run(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error) {
	if err := ValidateRequest(s.Alphabet, req); err != nil {
		return nil, err
	}

	start := s.now()
	attempt := types.Attempt{ArtifactPath: filepath.Join(s.Dir, s.tempName())}
	malformed := 0

	s.state = Running
	s.reporter.Start(req)
	slog.Debug("search started", "prefix", req.Prefix, "suffix", req.Suffix, "artifact", attempt.ArtifactPath)

	for {
		if ctx.Err() != nil {
			return nil, s.cleanup(attempt)
		}
		genErr := s.invoker.Generate(ctx, attempt.ArtifactPath)
		if ctx.Err() != nil {
			return nil, s.cleanup(attempt)
		}

		address, readErr := artifact.ReadAddress(attempt.ArtifactPath)
		attempt.Index++
		attempt.Address = address
		if address == "" {
			malformed++
			slog.Debug("artifact held no address",
				"attempt", attempt.Index, "generator_error", genErr, "read_error", readErr)
		}

		if req.Verbose {
			s.reporter.Address(address)
		}

		if Match(address, req) {
			s.state = Matched
			break
		}
		if attempt.Index%ProgressEvery == 0 {
			s.reporter.Progress(attempt.Index, ElapsedMinutes(s.now().Sub(start).Seconds()))
		}
		if !req.Constrained() {
			s.state = UnconstrainedStop
			break
		}
	}

	return s.finalize(req, attempt, start, malformed)
}

// finalize moves the last artifact to its result name.
func (s *Searcher) finalize(req types.SearchRequest, attempt types.Attempt, start time.Time, malformed int) (*types.SearchResult, error) {
	dest := filepath.Join(s.Dir, artifact.ResultName(req.Prefix, req.Suffix, attempt.Address))
	if err := os.Rename(attempt.ArtifactPath, dest); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}

	res := &types.SearchResult{
		Address:        attempt.Address,
		Attempts:       attempt.Index,
		ElapsedSeconds: s.now().Sub(start).Seconds(),
		SavedPath:      dest,
		Malformed:      malformed,
	}
	slog.Info("search finished", "state", s.state, "address", res.Address,
		"attempts", res.Attempts, "malformed", res.Malformed, "saved", res.SavedPath)
	s.reporter.Success(res)
	return res, nil
}

// cleanup removes the in-progress artifact after an interruption.
func (s *Searcher) cleanup(attempt types.Attempt) error {
	s.state = Interrupted
	if err := os.Remove(attempt.ArtifactPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("remove artifact", "path", attempt.ArtifactPath, "error", err)
	}
	slog.Info("search interrupted", "attempts", attempt.Index)
	s.reporter.Interrupted(attempt.ArtifactPath)
	return ErrInterrupted
}
