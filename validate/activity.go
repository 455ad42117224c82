package validate

import (
	"context"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

// ActivityFaults validates doc as an activity. Each recognized verb in
// the document's type carries a requirement set (actor, object, target
// as the verb demands) whose values are resolved as references; a
// document with no recognized verb at all is faulted invalid-verb.
// Activities should also carry a human-readable summary.
func (v *Validator) ActivityFaults(ctx context.Context, doc any) []fault.Fault {
	d, ok := vocab.AsDocument(doc)
	if !ok {
		return []fault.Fault{v.newFault(fault.SeverityCritical, fault.CodeNotAnObject)}
	}

	faults := v.ObjectFaults(doc)
	if !d.Has("summary") {
		faults = append(faults, v.newFault(fault.SeverityShould, fault.CodeNoSummary))
	}

	recognized := false
	for _, typ := range d.Types() {
		rules, ok := vocab.ActivityRules(typ)
		if !ok {
			continue
		}
		recognized = true
		faults = fault.Union(faults, v.activityReferenceFaults(ctx, d, rules, 0))
	}
	if !recognized {
		faults = append(faults, v.newFault(fault.SeverityMust, fault.CodeInvalidVerb))
	}

	return faults
}
