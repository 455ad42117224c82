// Package validate implements the validation engine: the object
// validator, the reference resolver, the specialized actor, activity,
// link and collection validators, and the duck-typing predicates.
//
// Every validator returns a possibly-empty slice of fault records; the
// empty slice is the one and only representation of "valid". Validation
// is synchronous, holds no mutable state beyond the fetcher's memo
// cache, and is safe to run concurrently.
package validate

import (
	"log/slog"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// Validator evaluates documents against the ActivityStreams
// vocabulary. Construct one with New; the zero value is not usable.
type Validator struct {
	cfg Config
	log *slog.Logger
}

// New creates a Validator with cfg, filling unset fields with the
// engine defaults.
func New(cfg Config) *Validator {
	cfg = cfg.withDefaults()
	return &Validator{cfg: cfg, log: cfg.Logger}
}

// Config returns the configuration the validator was built with.
func (v *Validator) Config() Config {
	return v.cfg
}

// newFault mints a fault record, resolving its narrative through the
// configured lookup.
func (v *Validator) newFault(severity fault.Severity, code fault.Code) fault.Fault {
	faultsTotal.WithLabelValues(severity.String(), string(code)).Inc()
	return fault.New(severity, code, v.cfg.Narrative)
}

func (v *Validator) faultFor(spec vocab.FaultSpec) fault.Fault {
	return v.newFault(spec.Severity, spec.Code)
}

// ObjectFaults validates the baseline object shape of doc plus every
// recognized property. Non-map input short-circuits to a single
// critical not-an-object fault; no further checks run on it.
func (v *Validator) ObjectFaults(doc any) []fault.Fault {
	return v.ObjectFaultsAs(doc)
}

// ObjectFaultsAs is ObjectFaults plus a type-membership check: unless
// the document's type tokens intersect expectedTypes, a critical
// unexpected-type fault is added. An empty expectedTypes imposes no
// membership requirement.
func (v *Validator) ObjectFaultsAs(doc any, expectedTypes ...string) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}

	var faults []fault.Fault
	if !d.DeclaresContext() {
		faults = append(faults, v.newFault(fault.SeverityShould, fault.CodeNoContext))
	}
	if !d.Has("type") {
		faults = append(faults, v.newFault(fault.SeverityMinor, fault.CodeNoType))
	}
	if !d.Has("id") {
		// Transient objects are permitted by the protocol; the absence
		// is noted, not rejected.
		faults = append(faults, v.newFault(fault.SeverityMinor, fault.CodeNoIDTransient))
	}

	if len(expectedTypes) > 0 && !d.HasType(expectedTypes...) {
		faults = append(faults, v.newFault(fault.SeverityCritical, fault.CodeUnexpectedType))
	}

	return fault.Union(faults, vocab.CheckAllProperties(d, v.cfg.Narrative))
}

// PersistentObjectFaults extends ObjectFaults with the persistent-object
// identifier rules: the document must carry a non-null id that is a
// dereferencable URI, and should use the https scheme.
func (v *Validator) PersistentObjectFaults(doc any) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}
	return fault.Union(v.ObjectFaults(doc), v.persistentIDFaults(d))
}

// persistentIDFaults checks the id of a document that is meant to be
// durably identified. An absent id, a null id and a non-https id each
// produce a distinct fault; a present-but-malformed id is already
// faulted as id-not-uri by the property rule table, so it is not
// duplicated here.
func (v *Validator) persistentIDFaults(d vocab.Document) []fault.Fault {
	if !d.Has("id") {
		return []fault.Fault{v.newFault(fault.SeverityMust, fault.CodeNoIDPersistent)}
	}
	id := d.Get("id")
	if id == nil {
		return []fault.Fault{v.newFault(fault.SeverityMust, fault.CodeNullIDPersistent)}
	}
	if !vocab.IsURI(id) {
		return nil
	}
	if !vocab.IsHTTPSURI(id) {
		return []fault.Fault{v.newFault(fault.SeverityShould, fault.CodeIDNotHTTPS)}
	}
	return nil
}
