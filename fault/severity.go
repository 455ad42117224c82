package fault

import (
	"encoding/json"
	"fmt"
)

// Severity ranks how strongly a fault counts against a document.
// The order is total: Info < Minor < Should < Must < Critical.
type Severity int

const (
	// SeverityInfo marks purely informational observations. The zero
	// Severity is deliberately not a valid tier so an unset threshold
	// is distinguishable from an info threshold.
	SeverityInfo Severity = iota + 1

	// SeverityMinor marks tolerated deviations worth noting.
	SeverityMinor

	// SeverityShould marks violations of SHOULD-level vocabulary rules.
	SeverityShould

	// SeverityMust marks violations of MUST-level vocabulary rules.
	SeverityMust

	// SeverityCritical marks faults that prevent further processing.
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityInfo:     "info",
	SeverityMinor:    "minor",
	SeverityShould:   "should",
	SeverityMust:     "must",
	SeverityCritical: "critical",
}

// String returns the lowercase severity name.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Valid reports whether s is one of the defined severity tiers.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// ParseSeverity converts a severity name to its Severity value.
func ParseSeverity(name string) (Severity, error) {
	for s, n := range severityNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown severity: %q", name)
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid severity %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its lowercase name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
