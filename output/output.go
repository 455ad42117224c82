// Package output renders validation reports for human and machine
// consumers: an aligned text table, JSON, newline-delimited JSON and a
// standalone HTML page.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/c360studio/apcheck/fault"
)

// Report is the validation outcome for one document.
type Report struct {
	// Source identifies the document: a file path, a URI, or "-" for
	// standard input.
	Source string `json:"source"`

	// Valid is true when Faults is empty.
	Valid bool `json:"valid"`

	// Faults lists every fault found, in emission order.
	Faults []fault.Fault `json:"faults"`
}

// NewReport builds a Report from a fault list.
func NewReport(source string, faults []fault.Fault) Report {
	return Report{Source: source, Valid: len(faults) == 0, Faults: faults}
}

// Renderer writes a sequence of reports to an output stream.
type Renderer interface {
	Render(w io.Writer, reports []Report) error
}

// New returns the renderer for a format name: "table", "json",
// "ndjson" or "html".
func New(format string) (Renderer, error) {
	switch format {
	case "table":
		return tableRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	case "ndjson":
		return ndjsonRenderer{}, nil
	case "html":
		return htmlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

type tableRenderer struct{}

func (tableRenderer) Render(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tSEVERITY\tFAULT\tNARRATIVE")
	for _, report := range reports {
		if report.Valid {
			fmt.Fprintf(tw, "%s\t-\tok\t\n", report.Source)
			continue
		}
		for _, f := range report.Faults {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", report.Source, f.Severity, f.Code, f.Narrative)
		}
	}
	return tw.Flush()
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

type ndjsonRenderer struct{}

// ndjsonRenderer emits one report per line, for piping into stream
// processors.
func (ndjsonRenderer) Render(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	for _, report := range reports {
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	return nil
}
