package validate

import (
	"context"
	"log/slog"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// DefaultMaxDepth bounds recursive reference reification. A reference
// cycle (A -> B -> A) would otherwise recurse without bound.
const DefaultMaxDepth = 8

// Fetcher retrieves the object a reference URI points at. fetch.Client
// satisfies it; tests substitute their own.
type Fetcher interface {
	Object(ctx context.Context, uri string) (vocab.Document, error)
}

// Config carries the call-scoped validation settings. It is threaded
// explicitly through every validation rather than held in mutable
// process state, so concurrent validations with different
// configurations are safe.
type Config struct {
	// ReifyRefs enables fetching and recursive validation of bare-URI
	// and link references. Off by default: recursion and network cost
	// are otherwise uncontrolled.
	ReifyRefs bool

	// RejectSeverity is the threshold the duck-typing predicates use.
	// Defaults to fault.SeverityMust.
	RejectSeverity fault.Severity

	// MaxDepth bounds recursive reference resolution when ReifyRefs is
	// enabled. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Narrative resolves fault codes to localized text. A nil lookup
	// falls back to the raw code token.
	Narrative fault.Lookup

	// Fetcher performs reference fetches. Ignored unless ReifyRefs is
	// set; a nil fetcher disables reification regardless.
	Fetcher Fetcher

	// Logger for engine diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the engine defaults: no reification, rejection
// at must severity.
func DefaultConfig() Config {
	return Config{
		RejectSeverity: fault.SeverityMust,
		MaxDepth:       DefaultMaxDepth,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if !c.RejectSeverity.Valid() {
		c.RejectSeverity = fault.SeverityMust
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
