// Package fault defines the fault model shared by every validator:
// severity tiers, immutable fault records, narrative resolution and
// severity filtering. A nil or empty fault slice is the canonical
// "valid" result; validators never signal success any other way.
package fault

import (
	"log/slog"

	"github.com/google/uuid"
)

// Context is the URI identifying the fault vocabulary. Every fault
// record carries it as its JSON-LD @context.
const Context = "https://ns.c360studio.com/apcheck/fault"

// TypeFault is the constant type of every fault record.
const TypeFault = "Fault"

// Lookup resolves a fault code to localized narrative text. A false
// return means no narrative is registered for the code.
type Lookup func(Code) (string, bool)

// Fault is a single rule violation. Records are immutable once created;
// they have no lifecycle beyond being collected and rendered.
type Fault struct {
	Context   string   `json:"@context"`
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Severity  Severity `json:"severity"`
	Code      Code     `json:"fault"`
	Narrative string   `json:"narrative"`
}

// New creates a fault record with a freshly minted id. The narrative is
// resolved through lookup; a nil lookup or an unregistered code falls
// back to the code token itself with a logged warning. New never fails.
func New(severity Severity, code Code, lookup Lookup) Fault {
	narrative := string(code)
	if lookup != nil {
		if text, ok := lookup(code); ok {
			narrative = text
		} else {
			slog.Warn("no narrative registered for fault code", "fault", code)
		}
	} else {
		slog.Warn("no narrative lookup supplied", "fault", code)
	}

	return Fault{
		Context:   Context,
		ID:        "urn:uuid:" + uuid.New().String(),
		Type:      TypeFault,
		Severity:  severity,
		Code:      code,
		Narrative: narrative,
	}
}

// FilterBySeverity returns the faults rejected by threshold: every
// fault whose severity is at or above it, preserving order. Filtering
// is monotone: a lower threshold admits a superset of a higher one.
func FilterBySeverity(faults []Fault, threshold Severity) []Fault {
	var kept []Fault
	for _, f := range faults {
		if f.Severity >= threshold {
			kept = append(kept, f)
		}
	}
	return kept
}

// Union concatenates fault lists, dropping nil and empty entries.
// No entry is ever lost or deduplicated; "no faults" is always the
// empty slice, never a sentinel.
func Union(lists ...[]Fault) []Fault {
	var all []Fault
	for _, list := range lists {
		if len(list) == 0 {
			continue
		}
		all = append(all, list...)
	}
	return all
}

// Prepend returns a list with f ahead of nested. Used by the reference
// resolver so nested failures bubble up behind the caller's own fault.
func Prepend(f Fault, nested []Fault) []Fault {
	return append([]Fault{f}, nested...)
}
