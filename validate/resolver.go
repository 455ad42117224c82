package validate

import (
	"context"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// ObjectReference validates a reference value in any of its three wire
// forms: a bare URI string, a Link document carrying an href, or an
// inline document. expected constrains the type of the referenced
// object; invalid is the fault emitted when the reference itself is
// unusable or the referenced object fails validation.
//
// Bare URIs and link hrefs are accepted on syntax alone unless
// reification is enabled, in which case the target is fetched through
// the configured Fetcher and validated recursively. A fetch failure
// produces exactly the invalid fault; faults found in a fetched or
// inline document are returned behind it.
func (v *Validator) ObjectReference(ctx context.Context, value any, expected []string, invalid vocab.FaultSpec) []fault.Fault {
	return v.objectReference(ctx, value, expected, invalid, 0)
}

func (v *Validator) objectReference(ctx context.Context, value any, expected []string, invalid vocab.FaultSpec, depth int) []fault.Fault {
	if uri, ok := value.(string); ok {
		if !vocab.IsURI(uri) {
			return []fault.Fault{v.faultFor(invalid)}
		}
		return v.reify(ctx, uri, expected, invalid, depth)
	}

	doc, ok := vocab.AsDocument(value)
	if !ok {
		return []fault.Fault{v.faultFor(invalid)}
	}
	if doc.HasType(vocab.LinkTypes...) {
		// A link reference stands in for its target; only the href
		// matters here. Validating the link itself is LinkFaults' job.
		href, ok := doc.Get("href").(string)
		if !ok || !vocab.IsURI(href) {
			return []fault.Fault{v.faultFor(invalid)}
		}
		return v.reify(ctx, href, expected, invalid, depth)
	}
	if nested := v.documentFaults(ctx, doc, expected, depth); len(nested) > 0 {
		return fault.Prepend(v.faultFor(invalid), nested)
	}
	return nil
}

// reify fetches uri and validates the result, when reification is
// enabled and the depth budget allows. Otherwise the well-formed URI is
// accepted as is.
func (v *Validator) reify(ctx context.Context, uri string, expected []string, invalid vocab.FaultSpec, depth int) []fault.Fault {
	if !v.cfg.ReifyRefs || v.cfg.Fetcher == nil {
		return nil
	}
	if depth >= v.cfg.MaxDepth {
		v.log.Debug("reference depth limit reached", "uri", uri, "depth", depth)
		return nil
	}

	doc, err := v.cfg.Fetcher.Object(ctx, uri)
	if err != nil {
		v.log.Debug("reference fetch failed", "uri", uri, "error", err)
		return []fault.Fault{v.faultFor(invalid)}
	}
	if nested := v.documentFaults(ctx, doc, expected, depth+1); len(nested) > 0 {
		return fault.Prepend(v.faultFor(invalid), nested)
	}
	return nil
}

// documentFaults validates a resolved reference target. Activity
// targets additionally have their own references resolved, so a chain
// of activities is followed to the configured depth.
func (v *Validator) documentFaults(ctx context.Context, d vocab.Document, expected []string, depth int) []fault.Fault {
	faults := v.ObjectFaultsAs(d, expected...)
	for _, typ := range d.Types() {
		if rules, ok := vocab.ActivityRules(typ); ok {
			faults = fault.Union(faults, v.activityReferenceFaults(ctx, d, rules, depth))
		}
	}
	return faults
}

// activityReferenceFaults resolves each of an activity's required
// references (actor, object, target as the verb demands) at the given
// depth. Syntactically malformed values are left to the property rule
// table, which has already faulted them; only resolvable values are
// followed.
func (v *Validator) activityReferenceFaults(ctx context.Context, d vocab.Document, rules []vocab.ActivityRule, depth int) []fault.Fault {
	var faults []fault.Fault
	for _, rule := range rules {
		if !d.Has(rule.Property) {
			faults = append(faults, v.faultFor(rule.Missing))
			continue
		}
		value := d.Get(rule.Property)
		if !vocab.IsObjectOrRef(value) {
			continue
		}
		faults = fault.Union(faults, v.resolveReference(ctx, value, rule.Expected, rule.Invalid, depth))
	}
	return faults
}

// resolveReference is objectReference extended to accept a sequence of
// references, resolving each element.
func (v *Validator) resolveReference(ctx context.Context, value any, expected []string, invalid vocab.FaultSpec, depth int) []fault.Fault {
	seq, ok := value.([]any)
	if !ok {
		return v.objectReference(ctx, value, expected, invalid, depth)
	}
	var faults []fault.Fault
	for _, element := range seq {
		faults = fault.Union(faults, v.objectReference(ctx, element, expected, invalid, depth))
	}
	return faults
}

// CollObjectReference validates a value holding one or more references:
// a single document or a sequence whose elements are each validated
// with ObjectReference. Any other value is a contract violation by the
// caller and returns an *ArgumentError.
func (v *Validator) CollObjectReference(ctx context.Context, value any, expected []string, invalid vocab.FaultSpec) ([]fault.Fault, error) {
	if seq, ok := value.([]any); ok {
		var faults []fault.Fault
		for _, element := range seq {
			faults = fault.Union(faults, v.ObjectReference(ctx, element, expected, invalid))
		}
		return faults, nil
	}
	if doc, ok := vocab.AsDocument(value); ok {
		return v.ObjectReference(ctx, doc, expected, invalid), nil
	}
	return nil, &ArgumentError{Op: "CollObjectReference", Arg: "value", Value: value}
}
